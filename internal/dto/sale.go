package dto

import (
	"time"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the POS sale submission. SalePrice overrides the
// catalog price when present; otherwise the catalog price is frozen onto the
// sale. Date defaults to now when omitted.
type CreateSaleRequest struct {
	ProfessionalID string           `json:"professional_id" binding:"required"`
	Type           domain.SaleType  `json:"type" binding:"required,oneof=SERVICE PRODUCT"`
	ItemID         string           `json:"item_id" binding:"required"`
	SalePrice      *decimal.Decimal `json:"sale_price"`
	ClientName     string           `json:"client_name"`
	ClientOrigin   string           `json:"client_origin"`
	PaymentMethod  string           `json:"payment_method"`
	TipAmount      *decimal.Decimal `json:"tip_amount"`
	Date           *time.Time       `json:"date"`
}

// SaleResponse is the API representation of a sale, including the computed
// commission.
type SaleResponse struct {
	SaleID           string          `json:"id"`
	ProfessionalID   string          `json:"professional_id"`
	ProfessionalName string          `json:"professional_name,omitempty"`
	Type             domain.SaleType `json:"type"`
	ItemID           string          `json:"item_id"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	ClientName       string          `json:"client_name,omitempty"`
	ClientOrigin     string          `json:"client_origin,omitempty"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	TipAmount        decimal.Decimal `json:"tip_amount"`
	Date             time.Time       `json:"date"`
}

// ToSaleResponse converts a domain.Sale to its API representation.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:           s.SaleID,
		ProfessionalID:   s.ProfessionalID,
		ProfessionalName: s.ProfessionalName,
		Type:             s.Type,
		ItemID:           s.ItemID,
		SalePrice:        s.SalePrice,
		CommissionAmount: s.CommissionAmount,
		ClientName:       s.ClientName,
		ClientOrigin:     s.ClientOrigin,
		PaymentMethod:    s.PaymentMethod,
		TipAmount:        s.TipAmount,
		Date:             s.Date,
	}
}

// ListSalesResponse wraps the list of sales.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToListSalesResponse converts a slice of domain.Sale.
func ToListSalesResponse(ss []domain.Sale) ListSalesResponse {
	resp := ListSalesResponse{Sales: make([]SaleResponse, len(ss))}
	for i := range ss {
		resp.Sales[i] = ToSaleResponse(&ss[i])
	}
	return resp
}
