package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	"github.com/salonsync/salon_management_app/internal/models"
	"github.com/shopspring/decimal"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

func toModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:           d.SaleID,
		ProfessionalID:   d.ProfessionalID,
		Type:             string(d.Type),
		ItemID:           d.ItemID,
		SalePrice:        d.SalePrice,
		CommissionAmount: d.CommissionAmount,
		ClientName:       d.ClientName,
		ClientOrigin:     d.ClientOrigin,
		PaymentMethod:    d.PaymentMethod,
		TipAmount:        d.TipAmount,
		Date:             d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// SaveSale writes the sale row, decrements product stock for product sales,
// and inserts the mirrored cash ledger entry, all in one database
// transaction. The sale insert comes first so a cash entry can never exist
// without its sale.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, cashEntry *domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := insertSaleTx(ctx, tx, sale); err != nil {
		return err
	}

	if sale.Type == domain.SaleTypeProduct {
		// Conditional decrement: floors at zero instead of failing the sale.
		_, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - 1, last_updated_at = $2, last_updated_by = $3 WHERE product_id = $1 AND stock > 0;`,
			sale.ItemID, sale.LastUpdatedAt, sale.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to decrement product stock: %w", err)
		}
	}

	if cashEntry != nil {
		if err := insertTransactionTx(ctx, tx, *cashEntry); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func insertSaleTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	m := toModelSale(sale)
	query := `
		INSERT INTO sales (sale_id, professional_id, type, item_id, sale_price, commission_amount, client_name, client_origin, payment_method, tip_amount, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.SaleID,
		m.ProfessionalID,
		m.Type,
		m.ItemID,
		m.SalePrice,
		m.CommissionAmount,
		m.ClientName,
		m.ClientOrigin,
		m.PaymentMethod,
		m.TipAmount,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSales(ctx context.Context) ([]domain.Sale, error) {
	query := `
		SELECT s.sale_id, s.professional_id, s.type, s.item_id, s.sale_price, s.commission_amount, s.client_name, s.client_origin, s.payment_method, s.tip_amount, s.date, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
		       COALESCE(p.name, '') AS professional_name
		FROM sales s
		LEFT JOIN professionals p ON p.professional_id = s.professional_id
		ORDER BY s.date DESC, s.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var m models.Sale
		var professionalName string
		if err := rows.Scan(
			&m.SaleID,
			&m.ProfessionalID,
			&m.Type,
			&m.ItemID,
			&m.SalePrice,
			&m.CommissionAmount,
			&m.ClientName,
			&m.ClientOrigin,
			&m.PaymentMethod,
			&m.TipAmount,
			&m.Date,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&professionalName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sale := domain.Sale{
			SaleID:           m.SaleID,
			ProfessionalID:   m.ProfessionalID,
			Type:             domain.SaleType(m.Type),
			ItemID:           m.ItemID,
			SalePrice:        m.SalePrice,
			CommissionAmount: m.CommissionAmount,
			ClientName:       m.ClientName,
			ClientOrigin:     m.ClientOrigin,
			PaymentMethod:    m.PaymentMethod,
			TipAmount:        m.TipAmount,
			Date:             m.Date,
			ProfessionalName: professionalName,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return sales, nil
}

func (r *PgxSaleRepository) SumCashSalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(sale_price), 0)
		FROM sales
		WHERE payment_method = $1 AND date >= $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, domain.PaymentMethodCash, since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum cash sales: %w", err)
	}
	return total, nil
}

func (r *PgxSaleRepository) GetCommissionTotals(ctx context.Context) ([]domain.ProfessionalCommissionRow, error) {
	query := `
		SELECT s.professional_id, COALESCE(p.name, '') AS professional_name, COUNT(*) AS sale_count, COALESCE(SUM(s.commission_amount), 0) AS total_commission
		FROM sales s
		LEFT JOIN professionals p ON p.professional_id = s.professional_id
		GROUP BY s.professional_id, p.name
		ORDER BY total_commission DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query commission totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.ProfessionalCommissionRow{}
	for rows.Next() {
		var row domain.ProfessionalCommissionRow
		if err := rows.Scan(
			&row.ProfessionalID,
			&row.ProfessionalName,
			&row.TotalSales,
			&row.TotalCommission,
		); err != nil {
			return nil, fmt.Errorf("failed to scan commission total row: %w", err)
		}
		totals = append(totals, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commission total rows: %w", err)
	}
	return totals, nil
}
