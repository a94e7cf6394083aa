package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction maps the transactions table. deleted_at/deleted_by implement
// the soft-delete tombstone.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	Type           string          `db:"type"`
	Description    string          `db:"description"`
	Amount         decimal.Decimal `db:"amount"`
	Category       string          `db:"category"`
	PaymentMethod  *string         `db:"payment_method"`
	Status         string          `db:"status"`
	DueDate        *time.Time      `db:"due_date"`
	Date           time.Time       `db:"date"`
	UserID         *string         `db:"user_id"`
	ProfessionalID *string         `db:"professional_id"`
	DeletedAt      *time.Time      `db:"deleted_at"`
	DeletedBy      *string         `db:"deleted_by"`
	AuditFields
}
