package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
)

type catalogService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(serviceRepo portsrepo.ServiceRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{serviceRepo: serviceRepo, productRepo: productRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error) {
	now := time.Now()
	service := domain.Service{
		ServiceID: uuid.NewString(),
		Name:      req.Name,
		Price:     req.Price,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		s.LogError(ctx, err, "Failed to save catalog service")
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}
	return &service, nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	return s.serviceRepo.FindServiceByID(ctx, serviceID)
}

func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepo.FindServices(ctx)
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, updaterUserID string) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		// Past sales keep the price frozen at sale time; this only affects
		// future sales.
		service.Price = *req.Price
	}
	service.LastUpdatedAt = time.Now()
	service.LastUpdatedBy = updaterUserID

	if err := s.serviceRepo.UpdateService(ctx, *service); err != nil {
		s.LogError(ctx, err, "Failed to update catalog service")
		return nil, fmt.Errorf("failed to update catalog service: %w", err)
	}
	return service, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	return s.serviceRepo.DeleteService(ctx, serviceID)
}

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	now := time.Now()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      req.Name,
		Price:     req.Price,
		Stock:     req.Stock,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FindProducts(ctx)
}

func (s *catalogService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}
