package dto

import (
	"time"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVaultTransactionRequest defines a reserve-fund movement.
type CreateVaultTransactionRequest struct {
	Type        domain.VaultTransactionType `json:"type" binding:"required,oneof=DEPOSIT WITHDRAW"`
	Amount      decimal.Decimal             `json:"amount" binding:"required"`
	Category    string                      `json:"category" binding:"required"`
	Description string                      `json:"description"`
}

// VaultTransactionResponse is the API representation of a vault movement.
type VaultTransactionResponse struct {
	VaultTransactionID string                      `json:"id"`
	Type               domain.VaultTransactionType `json:"type"`
	Amount             decimal.Decimal             `json:"amount"`
	Category           string                      `json:"category"`
	Description        string                      `json:"description,omitempty"`
	Date               time.Time                   `json:"date"`
}

// ToVaultTransactionResponse converts a domain.VaultTransaction.
func ToVaultTransactionResponse(v *domain.VaultTransaction) VaultTransactionResponse {
	return VaultTransactionResponse{
		VaultTransactionID: v.VaultTransactionID,
		Type:               v.Type,
		Amount:             v.Amount,
		Category:           v.Category,
		Description:        v.Description,
		Date:               v.Date,
	}
}

// VaultReportResponse is the vault balance plus its movement history.
type VaultReportResponse struct {
	Balance      decimal.Decimal            `json:"balance"`
	Transactions []VaultTransactionResponse `json:"transactions"`
}

// ToVaultReportResponse converts a domain.VaultReport.
func ToVaultReportResponse(r *domain.VaultReport) VaultReportResponse {
	resp := VaultReportResponse{
		Balance:      r.Balance,
		Transactions: make([]VaultTransactionResponse, len(r.Transactions)),
	}
	for i := range r.Transactions {
		resp.Transactions[i] = ToVaultTransactionResponse(&r.Transactions[i])
	}
	return resp
}
