package repositories

import (
	"context"
	"time"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleReader defines read operations for sale data.
type SaleReader interface {
	// FindSales retrieves all sales, newest first, with professional names joined.
	FindSales(ctx context.Context) ([]domain.Sale, error)

	// SumCashSalesSince sums sale_price over cash sales dated at or after since.
	// Display-only figure: cash sales are counted in the drawer via their
	// mirrored ledger entries, never from here.
	SumCashSalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error)

	// GetCommissionTotals aggregates commission amounts and sale counts per
	// professional.
	GetCommissionTotals(ctx context.Context) ([]domain.ProfessionalCommissionRow, error)
}

// SaleWriter defines write operations for sale data.
type SaleWriter interface {
	// SaveSale persists a sale, the optional mirrored cash ledger entry, and
	// the product stock decrement in a single database transaction. The sale
	// row is written first, then the cash entry. The stock decrement is a
	// conditional in-place update that floors at zero.
	SaveSale(ctx context.Context, sale domain.Sale, cashEntry *domain.Transaction) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
