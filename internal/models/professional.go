package models

import "github.com/shopspring/decimal"

// Professional maps the professionals table.
type Professional struct {
	ProfessionalID        string          `db:"professional_id"`
	Name                  string          `db:"name"`
	ServiceCommissionRate decimal.Decimal `db:"service_commission_rate"`
	ProductCommissionRate decimal.Decimal `db:"product_commission_rate"`
	Active                bool            `db:"active"`
	AuditFields
}
