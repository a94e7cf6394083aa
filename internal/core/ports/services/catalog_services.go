package services

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/salonsync/salon_management_app/internal/dto"
)

// CatalogSvcFacade defines management of the service and product catalogs.
type CatalogSvcFacade interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error)
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, updaterUserID string) (*domain.Service, error)
	DeleteService(ctx context.Context, serviceID string) error

	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}
