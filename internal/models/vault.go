package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VaultTransaction maps the vault_transactions table.
type VaultTransaction struct {
	VaultTransactionID string          `db:"vault_transaction_id"`
	Type               string          `db:"type"`
	Amount             decimal.Decimal `db:"amount"`
	Category           string          `db:"category"`
	Description        string          `db:"description"`
	Date               time.Time       `db:"date"`
	AuditFields
}
