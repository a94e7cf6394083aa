package dto

import (
	"time"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines a manual ledger entry. Status defaults to
// COMPLETED when omitted; PENDING entries are payables and stay out of the
// drawer balance until completed.
type CreateTransactionRequest struct {
	Type           domain.TransactionType   `json:"type" binding:"required,oneof=IN OUT"`
	Description    string                   `json:"description" binding:"required"`
	Amount         decimal.Decimal          `json:"amount" binding:"required"`
	Category       string                   `json:"category" binding:"required"`
	PaymentMethod  string                   `json:"payment_method"`
	Status         domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	DueDate        *time.Time               `json:"due_date"`
	Date           *time.Time               `json:"date"`
	ProfessionalID *string                  `json:"professional_id"`
}

// UpdateTransactionRequest defines the data allowed for updating a ledger entry.
type UpdateTransactionRequest struct {
	Description   *string                   `json:"description"`
	Amount        *decimal.Decimal          `json:"amount"`
	Category      *string                   `json:"category"`
	PaymentMethod *string                   `json:"payment_method"`
	Status        *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	DueDate       *time.Time                `json:"due_date"`
	Date          *time.Time                `json:"date"`
}

// ListTransactionsParams defines query parameters for listing ledger entries.
type ListTransactionsParams struct {
	IncludeDeleted bool `form:"include_deleted"`
}

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	TransactionID    string                     `json:"id"`
	Type             domain.TransactionType     `json:"type"`
	Description      string                     `json:"description"`
	Amount           decimal.Decimal            `json:"amount"`
	Category         domain.TransactionCategory `json:"category"`
	PaymentMethod    string                     `json:"payment_method,omitempty"`
	Status           domain.TransactionStatus   `json:"status"`
	DueDate          *time.Time                 `json:"due_date,omitempty"`
	Date             time.Time                  `json:"date"`
	UserID           *string                    `json:"user_id,omitempty"`
	UserName         string                     `json:"user_name,omitempty"`
	ProfessionalID   *string                    `json:"professional_id,omitempty"`
	ProfessionalName string                     `json:"professional_name,omitempty"`
	DeletedAt        *time.Time                 `json:"deleted_at,omitempty"`
	DeletedBy        *string                    `json:"deleted_by,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its API representation.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		Type:             t.Type,
		Description:      t.Description,
		Amount:           t.Amount,
		Category:         t.Category,
		PaymentMethod:    t.PaymentMethod,
		Status:           t.Status,
		DueDate:          t.DueDate,
		Date:             t.Date,
		UserID:           t.UserID,
		UserName:         t.UserName,
		ProfessionalID:   t.ProfessionalID,
		ProfessionalName: t.ProfessionalName,
		DeletedAt:        t.DeletedAt,
		DeletedBy:        t.DeletedBy,
	}
}

// ListTransactionsResponse wraps the list of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain.Transaction.
func ToListTransactionsResponse(ts []domain.Transaction) ListTransactionsResponse {
	resp := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(ts))}
	for i := range ts {
		resp.Transactions[i] = ToTransactionResponse(&ts[i])
	}
	return resp
}
