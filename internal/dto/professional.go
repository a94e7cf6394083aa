package dto

import (
	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProfessionalRequest defines the data for registering a professional.
type CreateProfessionalRequest struct {
	Name                  string          `json:"name" binding:"required"`
	ServiceCommissionRate decimal.Decimal `json:"serviceCommissionRate" binding:"gte=0,lte=1"`
	ProductCommissionRate decimal.Decimal `json:"productCommissionRate" binding:"gte=0,lte=1"`
}

// UpdateProfessionalRequest defines the data allowed for updating a professional.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProfessionalRequest struct {
	Name                  *string          `json:"name"`
	ServiceCommissionRate *decimal.Decimal `json:"serviceCommissionRate"`
	ProductCommissionRate *decimal.Decimal `json:"productCommissionRate"`
	Active                *bool            `json:"active"`
}

// ProfessionalResponse is the API representation of a professional.
type ProfessionalResponse struct {
	ProfessionalID        string          `json:"id"`
	Name                  string          `json:"name"`
	ServiceCommissionRate decimal.Decimal `json:"serviceCommissionRate"`
	ProductCommissionRate decimal.Decimal `json:"productCommissionRate"`
	Active                bool            `json:"active"`
}

// ToProfessionalResponse converts a domain.Professional to its API representation.
func ToProfessionalResponse(p *domain.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ProfessionalID:        p.ProfessionalID,
		Name:                  p.Name,
		ServiceCommissionRate: p.ServiceCommissionRate,
		ProductCommissionRate: p.ProductCommissionRate,
		Active:                p.Active,
	}
}

// ListProfessionalsResponse wraps the list of professionals.
type ListProfessionalsResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// ToListProfessionalsResponse converts a slice of domain.Professional.
func ToListProfessionalsResponse(ps []domain.Professional) ListProfessionalsResponse {
	resp := ListProfessionalsResponse{Professionals: make([]ProfessionalResponse, len(ps))}
	for i := range ps {
		resp.Professionals[i] = ToProfessionalResponse(&ps[i])
	}
	return resp
}
