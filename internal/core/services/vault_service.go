package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

type vaultService struct {
	BaseService
	vaultRepo portsrepo.VaultRepositoryFacade
}

// NewVaultService creates the reserve-fund service.
func NewVaultService(vaultRepo portsrepo.VaultRepositoryFacade) portssvc.VaultSvcFacade {
	return &vaultService{vaultRepo: vaultRepo}
}

var _ portssvc.VaultSvcFacade = (*vaultService)(nil)

// GetVault returns the current vault balance and the full movement history.
func (s *vaultService) GetVault(ctx context.Context) (*domain.VaultReport, error) {
	transactions, err := s.vaultRepo.FindVaultTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load vault transactions")
		return nil, fmt.Errorf("failed to load vault transactions: %w", err)
	}

	return &domain.VaultReport{
		Balance:      SumVaultBalance(transactions),
		Transactions: transactions,
	}, nil
}

// SumVaultBalance folds deposits minus withdrawals over the movement history.
func SumVaultBalance(transactions []domain.VaultTransaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case domain.VaultDeposit:
			balance = balance.Add(txn.Amount)
		case domain.VaultWithdraw:
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}

// CreateVaultTransaction records a vault movement and its mirrored drawer
// entry atomically. A DEPOSIT leaves the drawer as an OUT; a WITHDRAW returns
// to the drawer as an IN. Both sides carry the same amount.
func (s *vaultService) CreateVaultTransaction(ctx context.Context, req dto.CreateVaultTransactionRequest, creatorUserID string) (*domain.VaultTransaction, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("vault amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.Type != domain.VaultDeposit && req.Type != domain.VaultWithdraw {
		return nil, fmt.Errorf("invalid vault transaction type %q: %w", req.Type, apperrors.ErrValidation)
	}

	now := time.Now()
	vaultTxn := domain.VaultTransaction{
		VaultTransactionID: uuid.NewString(),
		Type:               req.Type,
		Amount:             req.Amount,
		Category:           req.Category,
		Description:        req.Description,
		Date:               now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	mirror := buildVaultMirror(vaultTxn, creatorUserID)

	if err := s.vaultRepo.SaveVaultTransaction(ctx, vaultTxn, mirror); err != nil {
		s.LogError(ctx, err, "Failed to save vault transaction", slog.String("type", string(req.Type)))
		return nil, fmt.Errorf("failed to save vault transaction: %w", err)
	}

	s.LogInfo(ctx, "Vault transaction recorded",
		slog.String("vault_transaction_id", vaultTxn.VaultTransactionID),
		slog.String("type", string(vaultTxn.Type)),
		slog.String("amount", vaultTxn.Amount.String()),
	)
	return &vaultTxn, nil
}

// buildVaultMirror derives the drawer ledger counterpart of a vault movement.
func buildVaultMirror(vaultTxn domain.VaultTransaction, creatorUserID string) domain.Transaction {
	label := vaultTxn.Description
	if label == "" {
		label = vaultTxn.Category
	}

	mirrorType := domain.TransactionOut
	description := fmt.Sprintf("Depósito em Cofre - %s", label)
	if vaultTxn.Type == domain.VaultWithdraw {
		mirrorType = domain.TransactionIn
		description = fmt.Sprintf("Levantamento Cofre - %s", label)
	}

	var userID *string
	if creatorUserID != "" {
		userID = &creatorUserID
	}

	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          mirrorType,
		Description:   description,
		Amount:        vaultTxn.Amount,
		Category:      domain.CategoryVaultTransfer,
		PaymentMethod: domain.PaymentMethodCash,
		Status:        domain.StatusCompleted,
		Date:          vaultTxn.Date,
		UserID:        userID,
		AuditFields:   vaultTxn.AuditFields,
	}
}
