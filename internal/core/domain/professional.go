package domain

import "github.com/shopspring/decimal"

// Professional represents a commissioned salon professional.
// Commission rates are fractions in [0, 1], applied per sale type.
type Professional struct {
	ProfessionalID        string          `json:"professionalID"`
	Name                  string          `json:"name"`
	ServiceCommissionRate decimal.Decimal `json:"serviceCommissionRate"`
	ProductCommissionRate decimal.Decimal `json:"productCommissionRate"`
	Active                bool            `json:"active"`
	AuditFields
}

// RateForSaleType returns the commission rate applicable to the given sale type.
func (p Professional) RateForSaleType(t SaleType) decimal.Decimal {
	if t == SaleTypeProduct {
		return p.ProductCommissionRate
	}
	return p.ServiceCommissionRate
}
