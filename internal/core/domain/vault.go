package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VaultTransactionType indicates the direction of a reserve-fund movement.
type VaultTransactionType string

const (
	VaultDeposit  VaultTransactionType = "DEPOSIT"
	VaultWithdraw VaultTransactionType = "WITHDRAW"
)

// VaultTransaction is a movement in the reserve fund, tracked independently
// of the daily drawer. Each movement is mirrored in the main ledger: a
// DEPOSIT leaves the drawer as an OUT entry, a WITHDRAW returns as an IN.
type VaultTransaction struct {
	VaultTransactionID string               `json:"vaultTransactionID"`
	Type               VaultTransactionType `json:"type"`
	Amount             decimal.Decimal      `json:"amount"`
	Category           string               `json:"category"` // e.g. IVA, Reserva, Impostos
	Description        string               `json:"description,omitempty"`
	Date               time.Time            `json:"date"`
	AuditFields
}
