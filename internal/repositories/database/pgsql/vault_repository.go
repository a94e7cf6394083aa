package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	"github.com/salonsync/salon_management_app/internal/models"
)

type PgxVaultRepository struct {
	BaseRepository
}

func newPgxVaultRepository(db *pgxpool.Pool) portsrepo.VaultRepositoryFacade {
	return &PgxVaultRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.VaultRepositoryFacade = (*PgxVaultRepository)(nil)

func toDomainVaultTransaction(m models.VaultTransaction) domain.VaultTransaction {
	return domain.VaultTransaction{
		VaultTransactionID: m.VaultTransactionID,
		Type:               domain.VaultTransactionType(m.Type),
		Amount:             m.Amount,
		Category:           m.Category,
		Description:        m.Description,
		Date:               m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveVaultTransaction writes the vault movement and its mirrored drawer
// ledger entry in one database transaction: the vault never moves money
// without the drawer seeing the counterpart.
func (r *PgxVaultRepository) SaveVaultTransaction(ctx context.Context, vaultTxn domain.VaultTransaction, mirror domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		INSERT INTO vault_transactions (vault_transaction_id, type, amount, category, description, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		vaultTxn.VaultTransactionID,
		string(vaultTxn.Type),
		vaultTxn.Amount,
		vaultTxn.Category,
		vaultTxn.Description,
		vaultTxn.Date,
		vaultTxn.CreatedAt,
		vaultTxn.CreatedBy,
		vaultTxn.LastUpdatedAt,
		vaultTxn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vault transaction: %w", err)
	}

	if err := insertTransactionTx(ctx, tx, mirror); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxVaultRepository) FindVaultTransactions(ctx context.Context) ([]domain.VaultTransaction, error) {
	query := `
		SELECT vault_transaction_id, type, amount, category, description, date, created_at, created_by, last_updated_at, last_updated_by
		FROM vault_transactions
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vault transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.VaultTransaction{}
	for rows.Next() {
		var m models.VaultTransaction
		if err := rows.Scan(
			&m.VaultTransactionID,
			&m.Type,
			&m.Amount,
			&m.Category,
			&m.Description,
			&m.Date,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vault transaction row: %w", err)
		}
		transactions = append(transactions, toDomainVaultTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vault transaction rows: %w", err)
	}
	return transactions, nil
}
