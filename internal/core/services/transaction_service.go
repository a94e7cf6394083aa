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
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new cash-flow ledger service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusCompleted
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	var userID *string
	if creatorUserID != "" {
		userID = &creatorUserID
	}

	transaction := domain.Transaction{
		TransactionID:  uuid.NewString(),
		Type:           req.Type,
		Description:    req.Description,
		Amount:         req.Amount,
		Category:       domain.TransactionCategory(req.Category),
		PaymentMethod:  req.PaymentMethod,
		Status:         status,
		DueDate:        req.DueDate,
		Date:           date,
		UserID:         userID,
		ProfessionalID: req.ProfessionalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", transaction.TransactionID),
		slog.String("type", string(transaction.Type)),
		slog.String("category", string(transaction.Category)),
	)
	return &transaction, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error) {
	return s.transactionRepo.FindTransactions(ctx, includeDeleted)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
		}
		transaction.Amount = *req.Amount
	}
	if req.Category != nil {
		transaction.Category = domain.TransactionCategory(*req.Category)
	}
	if req.PaymentMethod != nil {
		transaction.PaymentMethod = *req.PaymentMethod
	}
	if req.Status != nil {
		transaction.Status = *req.Status
	}
	if req.DueDate != nil {
		transaction.DueDate = req.DueDate
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}

	transaction.LastUpdatedAt = time.Now()
	transaction.LastUpdatedBy = updaterUserID

	if err := s.transactionRepo.UpdateTransaction(ctx, *transaction); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return transaction, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, deletedBy string) error {
	if err := s.transactionRepo.MarkTransactionDeleted(ctx, transactionID, time.Now(), deletedBy); err != nil {
		return err
	}
	s.LogInfo(ctx, "Transaction soft-deleted",
		slog.String("transaction_id", transactionID),
		slog.String("deleted_by", deletedBy),
	)
	return nil
}
