package models

import "github.com/shopspring/decimal"

// Service maps the services table.
type Service struct {
	ServiceID string          `db:"service_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	AuditFields
}

// Product maps the products table.
type Product struct {
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
	AuditFields
}
