package repositories

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
)

// VaultReader defines read operations for vault movements.
type VaultReader interface {
	// FindVaultTransactions retrieves all vault movements, newest first.
	FindVaultTransactions(ctx context.Context) ([]domain.VaultTransaction, error)
}

// VaultWriter defines write operations for vault movements.
type VaultWriter interface {
	// SaveVaultTransaction persists a vault movement and its mirrored drawer
	// ledger entry in a single database transaction.
	SaveVaultTransaction(ctx context.Context, vaultTxn domain.VaultTransaction, mirror domain.Transaction) error
}

// VaultRepositoryFacade combines all vault repository interfaces.
type VaultRepositoryFacade interface {
	VaultReader
	VaultWriter
}
