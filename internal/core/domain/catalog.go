package domain

import "github.com/shopspring/decimal"

// Service is a catalog entry for work performed by a professional.
type Service struct {
	ServiceID string          `json:"serviceID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	AuditFields
}

// Product is a catalog entry for retail goods with tracked stock.
// Stock is decremented by one on each product sale and floors at zero.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	AuditFields
}
