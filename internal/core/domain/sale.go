package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleType distinguishes service work from product retail.
type SaleType string

const (
	SaleTypeService SaleType = "SERVICE"
	SaleTypeProduct SaleType = "PRODUCT"
)

// PaymentMethodCash is the payment method that moves physical cash through
// the drawer. A cash sale is mirrored by an IN transaction in the ledger.
const PaymentMethodCash = "Numerário"

// Sale is a point-of-sale record. SalePrice is the actually-charged amount,
// frozen at creation and decoupled from later catalog price edits.
// CommissionAmount is computed from the professional's rate at the moment of
// sale and is never recalculated when rates change afterwards.
type Sale struct {
	SaleID           string          `json:"saleID"`
	ProfessionalID   string          `json:"professionalID"`
	Type             SaleType        `json:"type"`
	ItemID           string          `json:"itemID"`
	SalePrice        decimal.Decimal `json:"salePrice"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	ClientName       string          `json:"clientName"`
	ClientOrigin     string          `json:"clientOrigin"`
	PaymentMethod    string          `json:"paymentMethod"`
	TipAmount        decimal.Decimal `json:"tipAmount"`
	Date             time.Time       `json:"date"` // business event time, not the audit timestamp

	// ProfessionalName is populated on joined reads for display; it is not
	// persisted on the sale row.
	ProfessionalName string `json:"professionalName,omitempty"`

	AuditFields
}

// IsCash reports whether the sale was paid in physical cash.
func (s Sale) IsCash() bool {
	return s.PaymentMethod == PaymentMethodCash
}
