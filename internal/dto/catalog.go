package dto

import (
	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest defines the data for adding a catalog service.
type CreateServiceRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// UpdateServiceRequest defines the data allowed for updating a catalog service.
type UpdateServiceRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// ServiceResponse is the API representation of a catalog service.
type ServiceResponse struct {
	ServiceID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// ToServiceResponse converts a domain.Service to its API representation.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{ServiceID: s.ServiceID, Name: s.Name, Price: s.Price}
}

// CreateProductRequest defines the data for adding a catalog product.
type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
	Stock int             `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest defines the data allowed for updating a catalog product.
type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Stock *int             `json:"stock"`
}

// ProductResponse is the API representation of a catalog product.
type ProductResponse struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

// ToProductResponse converts a domain.Product to its API representation.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{ProductID: p.ProductID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}
