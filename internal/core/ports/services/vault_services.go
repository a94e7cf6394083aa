package services

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/salonsync/salon_management_app/internal/dto"
)

// VaultSvcFacade defines reserve-fund operations.
type VaultSvcFacade interface {
	// GetVault returns the vault balance and movement history.
	GetVault(ctx context.Context) (*domain.VaultReport, error)

	// CreateVaultTransaction records a vault movement and its mirrored drawer
	// ledger entry.
	CreateVaultTransaction(ctx context.Context, req dto.CreateVaultTransactionRequest, creatorUserID string) (*domain.VaultTransaction, error)
}
