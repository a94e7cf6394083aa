package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale maps the sales table.
type Sale struct {
	SaleID           string          `db:"sale_id"`
	ProfessionalID   string          `db:"professional_id"`
	Type             string          `db:"type"`
	ItemID           string          `db:"item_id"`
	SalePrice        decimal.Decimal `db:"sale_price"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
	ClientName       string          `db:"client_name"`
	ClientOrigin     string          `db:"client_origin"`
	PaymentMethod    string          `db:"payment_method"`
	TipAmount        decimal.Decimal `db:"tip_amount"`
	Date             time.Time       `db:"date"`
	AuditFields
}
