package repositories

import (
	"context"
	"time"

	"github.com/salonsync/salon_management_app/internal/core/domain"
)

// TransactionReader defines read operations for ledger entries.
type TransactionReader interface {
	// FindTransactionByID retrieves a single live ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves ledger entries newest first with creator and
	// professional names joined. Tombstoned rows are excluded unless
	// includeDeleted is set.
	FindTransactions(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error)

	// FindTransactionsSince retrieves live ledger entries dated at or after
	// since, for drawer reconciliation.
	FindTransactionsSince(ctx context.Context, since time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger entries.
type TransactionWriter interface {
	// SaveTransaction persists a new ledger entry.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// UpdateTransaction updates an existing live ledger entry.
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error
}

// TransactionLifecycleManager defines lifecycle operations for ledger entries.
type TransactionLifecycleManager interface {
	// MarkTransactionDeleted tombstones a ledger entry, recording who deleted it.
	MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time, deletedBy string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionLifecycleManager
}
