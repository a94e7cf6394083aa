package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	"github.com/salonsync/salon_management_app/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	var paymentMethod *string
	if d.PaymentMethod != "" {
		pm := d.PaymentMethod
		paymentMethod = &pm
	}
	return models.Transaction{
		TransactionID:  d.TransactionID,
		Type:           string(d.Type),
		Description:    d.Description,
		Amount:         d.Amount,
		Category:       string(d.Category),
		PaymentMethod:  paymentMethod,
		Status:         string(d.Status),
		DueDate:        d.DueDate,
		Date:           d.Date,
		UserID:         d.UserID,
		ProfessionalID: d.ProfessionalID,
		DeletedAt:      d.DeletedAt,
		DeletedBy:      d.DeletedBy,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	paymentMethod := ""
	if m.PaymentMethod != nil {
		paymentMethod = *m.PaymentMethod
	}
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		Type:           domain.TransactionType(m.Type),
		Description:    m.Description,
		Amount:         m.Amount,
		Category:       domain.TransactionCategory(m.Category),
		PaymentMethod:  paymentMethod,
		Status:         domain.TransactionStatus(m.Status),
		DueDate:        m.DueDate,
		Date:           m.Date,
		UserID:         m.UserID,
		ProfessionalID: m.ProfessionalID,
		DeletedAt:      m.DeletedAt,
		DeletedBy:      m.DeletedBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// insertTransactionTx writes one ledger row inside an existing database
// transaction. Shared with the sale and vault repositories so their mirrored
// entries commit atomically with the primary record.
func insertTransactionTx(ctx context.Context, tx pgx.Tx, transaction domain.Transaction) error {
	m := toModelTransaction(transaction)
	query := `
		INSERT INTO transactions (transaction_id, type, description, amount, category, payment_method, status, due_date, date, user_id, professional_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Description,
		m.Amount,
		m.Category,
		m.PaymentMethod,
		m.Status,
		m.DueDate,
		m.Date,
		m.UserID,
		m.ProfessionalID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := insertTransactionTx(ctx, tx, transaction); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

const transactionSelectColumns = `
	t.transaction_id, t.type, t.description, t.amount, t.category, t.payment_method, t.status, t.due_date, t.date, t.user_id, t.professional_id, t.deleted_at, t.deleted_by, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
	COALESCE(u.name, '') AS user_name,
	COALESCE(p.name, '') AS professional_name
`

func scanTransactionRow(row pgx.Row) (domain.Transaction, error) {
	var m models.Transaction
	var userName, professionalName string
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.Description,
		&m.Amount,
		&m.Category,
		&m.PaymentMethod,
		&m.Status,
		&m.DueDate,
		&m.Date,
		&m.UserID,
		&m.ProfessionalID,
		&m.DeletedAt,
		&m.DeletedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&userName,
		&professionalName,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	d := toDomainTransaction(m)
	d.UserName = userName
	d.ProfessionalName = professionalName
	return d, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionSelectColumns + `
		FROM transactions t
		LEFT JOIN users u ON u.user_id = t.user_id
		LEFT JOIN professionals p ON p.professional_id = t.professional_id
		WHERE t.transaction_id = $1 AND t.deleted_at IS NULL;
	`
	d, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return &d, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionSelectColumns + `
		FROM transactions t
		LEFT JOIN users u ON u.user_id = t.user_id
		LEFT JOIN professionals p ON p.professional_id = t.professional_id
	`
	if !includeDeleted {
		query += ` WHERE t.deleted_at IS NULL`
	}
	query += ` ORDER BY t.date DESC, t.created_at DESC;`

	return r.queryTransactions(ctx, query)
}

func (r *PgxTransactionRepository) FindTransactionsSince(ctx context.Context, since time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionSelectColumns + `
		FROM transactions t
		LEFT JOIN users u ON u.user_id = t.user_id
		LEFT JOIN professionals p ON p.professional_id = t.professional_id
		WHERE t.deleted_at IS NULL AND t.date >= $1
		ORDER BY t.date DESC, t.created_at DESC;
	`
	return r.queryTransactions(ctx, query, since)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		d, err := scanTransactionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	m := toModelTransaction(transaction)
	query := `
		UPDATE transactions
		SET type = $2, description = $3, amount = $4, category = $5, payment_method = $6, status = $7, due_date = $8, date = $9, professional_id = $10, last_updated_at = $11, last_updated_by = $12
		WHERE transaction_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Description,
		m.Amount,
		m.Category,
		m.PaymentMethod,
		m.Status,
		m.DueDate,
		m.Date,
		m.ProfessionalID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkTransactionDeleted tombstones the row. The row itself survives for
// audit; every aggregate query filters on deleted_at IS NULL.
func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE transactions
		SET deleted_at = $2, deleted_by = $3, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark transaction deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
