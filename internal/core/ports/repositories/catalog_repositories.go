package repositories

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
)

// ServiceRepositoryFacade defines persistence operations for catalog services.
type ServiceRepositoryFacade interface {
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	FindServices(ctx context.Context) ([]domain.Service, error)
	SaveService(ctx context.Context, service domain.Service) error
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, serviceID string) error
}

// ProductRepositoryFacade defines persistence operations for catalog products.
type ProductRepositoryFacade interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProducts(ctx context.Context) ([]domain.Product, error)
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}
