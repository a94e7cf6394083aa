package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/core/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	service             portssvc.TransactionSvcFacade
	userID              string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockTransactionRepo)
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsToCompleted() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.TransactionOut,
		Description: "Material de limpeza",
		Amount:      dec("18.70"),
		Category:    "Fornecedor",
	}

	var saved domain.Transaction
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	transaction, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(transaction)
	suite.Equal(domain.StatusCompleted, saved.Status)
	suite.Require().NotNil(saved.UserID)
	suite.Equal(suite.userID, *saved.UserID)
	suite.NotEmpty(saved.TransactionID)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_KeepsExplicitPendingStatus() {
	ctx := context.Background()
	due := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	req := dto.CreateTransactionRequest{
		Type:        domain.TransactionOut,
		Description: "Renda",
		Amount:      dec("600"),
		Category:    "Despesa Fixa",
		Status:      domain.StatusPending,
		DueDate:     &due,
	}

	var saved domain.Transaction
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, saved.Status)
	suite.Require().NotNil(saved.DueDate)
	suite.Equal(due, *saved.DueDate)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	req := dto.CreateTransactionRequest{
		Type:   domain.TransactionIn,
		Amount: dec("0"),
	}

	_, err := suite.service.CreateTransaction(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AppliesPartialFields() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: transactionID,
		Type:          domain.TransactionOut,
		Description:   "Renda",
		Amount:        dec("600"),
		Status:        domain.StatusPending,
	}

	newStatus := domain.StatusCompleted
	req := dto.UpdateTransactionRequest{Status: &newStatus}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, transactionID).Return(existing, nil).Once()

	var updated domain.Transaction
	suite.mockTransactionRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, transactionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
	// Untouched fields survive the partial update.
	suite.Equal("Renda", updated.Description)
	suite.True(dec("600").Equal(updated.Amount))
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(ctx, "missing", dto.UpdateTransactionRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Tombstones() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	suite.mockTransactionRepo.On("MarkTransactionDeleted", ctx, transactionID, mock.AnythingOfType("time.Time"), suite.userID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID, suite.userID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
