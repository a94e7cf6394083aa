package services

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/salonsync/salon_management_app/internal/dto"
)

// SaleSvcFacade defines POS sale operations and sale-derived aggregates.
type SaleSvcFacade interface {
	// CreateSale records a sale: it freezes the charged price, computes the
	// commission from the professional's current rate, decrements product
	// stock, and mirrors cash payments into the ledger.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error)

	// ListSales retrieves all sales, newest first.
	ListSales(ctx context.Context) ([]domain.Sale, error)

	// CommissionTotals aggregates commission amounts per professional.
	CommissionTotals(ctx context.Context) ([]domain.ProfessionalCommissionRow, error)
}
