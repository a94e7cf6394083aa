package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/salonsync/salon_management_app/internal/utils/commission"
	"github.com/shopspring/decimal"
)

type saleService struct {
	BaseService
	saleRepo         portsrepo.SaleRepositoryFacade
	professionalRepo portsrepo.ProfessionalReader
	serviceRepo      portsrepo.ServiceRepositoryFacade
	productRepo      portsrepo.ProductRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	professionalRepo portsrepo.ProfessionalReader,
	serviceRepo portsrepo.ServiceRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:         saleRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		productRepo:      productRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale records a POS sale. The charged price and the commission are
// frozen at creation; a cash payment additionally produces the mirrored IN
// ledger entry. The sale row, the cash entry and the product stock decrement
// are persisted in one database transaction, sale first.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error) {
	professional, err := s.professionalRepo.FindProfessionalByID(ctx, req.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("professional lookup failed: %w", err)
	}

	itemName, catalogPrice, err := s.resolveItem(ctx, req.Type, req.ItemID)
	if err != nil {
		return nil, err
	}

	salePrice := catalogPrice
	if req.SalePrice != nil {
		salePrice = *req.SalePrice
	}
	if salePrice.IsNegative() {
		return nil, fmt.Errorf("sale price must not be negative: %w", apperrors.ErrValidation)
	}

	commissionAmount, err := commission.Compute(salePrice, *professional, req.Type)
	if err != nil {
		return nil, err
	}

	tip := decimal.Zero
	if req.TipAmount != nil {
		tip = *req.TipAmount
	}
	if tip.IsNegative() {
		return nil, fmt.Errorf("tip amount must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	saleDate := now
	if req.Date != nil {
		saleDate = *req.Date
	}

	sale := domain.Sale{
		SaleID:           uuid.NewString(),
		ProfessionalID:   req.ProfessionalID,
		Type:             req.Type,
		ItemID:           req.ItemID,
		SalePrice:        salePrice,
		CommissionAmount: commissionAmount,
		ClientName:       req.ClientName,
		ClientOrigin:     req.ClientOrigin,
		PaymentMethod:    req.PaymentMethod,
		TipAmount:        tip,
		Date:             saleDate,
		ProfessionalName: professional.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var cashEntry *domain.Transaction
	if sale.IsCash() {
		cashEntry = buildCashSaleEntry(sale, itemName, now)
	}

	if err := s.saleRepo.SaveSale(ctx, sale, cashEntry); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("professional_id", req.ProfessionalID))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("type", string(sale.Type)),
		slog.String("commission", commissionAmount.String()),
		slog.Bool("cash", cashEntry != nil),
	)
	return &sale, nil
}

// resolveItem looks up the catalog item and returns its name and price.
func (s *saleService) resolveItem(ctx context.Context, saleType domain.SaleType, itemID string) (string, decimal.Decimal, error) {
	switch saleType {
	case domain.SaleTypeService:
		service, err := s.serviceRepo.FindServiceByID(ctx, itemID)
		if err != nil {
			return "", decimal.Zero, fmt.Errorf("service lookup failed: %w", err)
		}
		return service.Name, service.Price, nil
	case domain.SaleTypeProduct:
		product, err := s.productRepo.FindProductByID(ctx, itemID)
		if err != nil {
			return "", decimal.Zero, fmt.Errorf("product lookup failed: %w", err)
		}
		return product.Name, product.Price, nil
	default:
		return "", decimal.Zero, fmt.Errorf("invalid sale type '%s': %w", saleType, apperrors.ErrValidation)
	}
}

// buildCashSaleEntry constructs the system-generated IN ledger entry that
// mirrors a cash sale into the drawer.
func buildCashSaleEntry(sale domain.Sale, itemName string, now time.Time) *domain.Transaction {
	description := fmt.Sprintf("Serviço - %s", itemName)
	category := domain.CategoryServiceRendered
	if sale.Type == domain.SaleTypeProduct {
		description = fmt.Sprintf("Venda - %s", itemName)
		category = domain.CategoryProductSale
	}

	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionIn,
		Description:   description,
		Amount:        sale.SalePrice,
		Category:      category,
		PaymentMethod: domain.PaymentMethodCash,
		Status:        domain.StatusCompleted,
		Date:          sale.Date,
		UserID:        nil, // system-generated
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.SystemUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.SystemUserID,
		},
	}
}

func (s *saleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.saleRepo.FindSales(ctx)
}

func (s *saleService) CommissionTotals(ctx context.Context) ([]domain.ProfessionalCommissionRow, error) {
	return s.saleRepo.GetCommissionTotals(ctx)
}
