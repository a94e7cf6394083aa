package services

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/salonsync/salon_management_app/internal/dto"
)

// TransactionSvcFacade defines cash-flow ledger operations.
type TransactionSvcFacade interface {
	// CreateTransaction records a manual ledger entry.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// ListTransactions retrieves ledger entries, newest first. Tombstoned rows
	// are included only when includeDeleted is set.
	ListTransactions(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error)

	// UpdateTransaction updates an existing ledger entry.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error)

	// DeleteTransaction tombstones a ledger entry, attributing the deletion.
	DeleteTransaction(ctx context.Context, transactionID string, deletedBy string) error
}
