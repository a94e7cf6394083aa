package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a cash movement.
type TransactionType string

const (
	TransactionIn  TransactionType = "IN"
	TransactionOut TransactionType = "OUT"
)

// TransactionStatus tracks the payable workflow of a ledger entry. Only
// COMPLETED entries count toward the realized drawer balance.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// TransactionCategory tags a ledger entry. Categories are free text for
// descriptive purposes, but the constants below participate in
// reconciliation logic and must be matched exactly.
type TransactionCategory string

const (
	// CategoryCommissionPayment marks a payroll payout for earned commissions.
	CategoryCommissionPayment TransactionCategory = "Pagamento Comissão"
	// CategoryAdvance marks a payroll advance against future commissions.
	CategoryAdvance TransactionCategory = "Adiantamento"
	// CategoryVaultTransfer marks a movement between the drawer and the vault.
	CategoryVaultTransfer TransactionCategory = "Transferência Cofre"
	// CategoryServiceRendered marks the auto-generated entry for a cash service sale.
	CategoryServiceRendered TransactionCategory = "Serviço Prestado"
	// CategoryProductSale marks the auto-generated entry for a cash product sale.
	CategoryProductSale TransactionCategory = "Venda de Produto"
)

// IsPayroll reports whether the category represents money paid to a
// professional. Payroll outflows are excluded from the physical drawer
// reconciliation: they are assumed settled by bank transfer.
func (c TransactionCategory) IsPayroll() bool {
	return c == CategoryCommissionPayment || c == CategoryAdvance
}

// Transaction is a cash-flow ledger entry. Amount is always positive; the
// sign is carried by Type. Deletion is a tombstone (DeletedAt/DeletedBy):
// the row survives for audit but is excluded from all aggregate sums.
type Transaction struct {
	TransactionID  string              `json:"transactionID"`
	Type           TransactionType     `json:"type"`
	Description    string              `json:"description"`
	Amount         decimal.Decimal     `json:"amount"`
	Category       TransactionCategory `json:"category"`
	PaymentMethod  string              `json:"paymentMethod,omitempty"`
	Status         TransactionStatus   `json:"status"`
	DueDate        *time.Time          `json:"dueDate,omitempty"`
	Date           time.Time           `json:"date"`
	UserID         *string             `json:"userID,omitempty"`         // creator, nil for system-generated rows
	ProfessionalID *string             `json:"professionalID,omitempty"` // payroll linkage
	DeletedAt      *time.Time          `json:"deletedAt,omitempty"`
	DeletedBy      *string             `json:"deletedBy,omitempty"`

	// Display names populated on joined reads.
	UserName         string `json:"userName,omitempty"`
	ProfessionalName string `json:"professionalName,omitempty"`

	AuditFields
}
