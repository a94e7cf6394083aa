package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error) {
	args := m.Called(ctx, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsSince(ctx context.Context, since time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, transactionID, deletedAt, deletedBy)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func inEntry(amount string, status domain.TransactionStatus) domain.Transaction {
	return domain.Transaction{Type: domain.TransactionIn, Amount: dec(amount), Status: status}
}

func outEntry(amount string, status domain.TransactionStatus, category domain.TransactionCategory) domain.Transaction {
	return domain.Transaction{Type: domain.TransactionOut, Amount: dec(amount), Status: status, Category: category}
}

func TestSumDrawerTotals(t *testing.T) {
	deletedAt := time.Now()
	tombstoned := outEntry("40", domain.StatusCompleted, "Fornecedor")
	tombstoned.DeletedAt = &deletedAt

	tests := []struct {
		name         string
		transactions []domain.Transaction
		expectedIn   string
		expectedOut  string
	}{
		{
			name: "completed entries on both sides",
			transactions: []domain.Transaction{
				inEntry("100", domain.StatusCompleted),
				outEntry("30", domain.StatusCompleted, "Fornecedor"),
			},
			expectedIn:  "100",
			expectedOut: "30",
		},
		{
			name: "pending OUT has not left the drawer",
			transactions: []domain.Transaction{
				inEntry("50", domain.StatusCompleted),
				outEntry("20", domain.StatusPending, "Fornecedor"),
			},
			expectedIn:  "50",
			expectedOut: "0",
		},
		{
			name: "IN counted regardless of status",
			transactions: []domain.Transaction{
				inEntry("10", domain.StatusPending),
				inEntry("15", domain.StatusCompleted),
			},
			expectedIn:  "25",
			expectedOut: "0",
		},
		{
			name: "payroll outflows are settled outside the drawer",
			transactions: []domain.Transaction{
				inEntry("200", domain.StatusCompleted),
				outEntry("80", domain.StatusCompleted, domain.CategoryCommissionPayment),
				outEntry("20", domain.StatusCompleted, domain.CategoryAdvance),
				outEntry("5", domain.StatusCompleted, "Fornecedor"),
			},
			expectedIn:  "200",
			expectedOut: "5",
		},
		{
			name: "tombstoned entries are ignored",
			transactions: []domain.Transaction{
				inEntry("60", domain.StatusCompleted),
				tombstoned,
			},
			expectedIn:  "60",
			expectedOut: "0",
		},
		{
			name:         "empty ledger",
			transactions: nil,
			expectedIn:   "0",
			expectedOut:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totalIn, totalOut := services.SumDrawerTotals(tt.transactions)
			assert.True(t, dec(tt.expectedIn).Equal(totalIn), "in: got %s", totalIn)
			assert.True(t, dec(tt.expectedOut).Equal(totalOut), "out: got %s", totalOut)
		})
	}
}

func TestSumDrawerTotals_OrderIndependent(t *testing.T) {
	entries := []domain.Transaction{
		inEntry("100", domain.StatusCompleted),
		outEntry("30", domain.StatusCompleted, "Fornecedor"),
		inEntry("5.50", domain.StatusPending),
	}
	reversed := []domain.Transaction{entries[2], entries[1], entries[0]}

	in1, out1 := services.SumDrawerTotals(entries)
	in2, out2 := services.SumDrawerTotals(reversed)

	assert.True(t, in1.Equal(in2))
	assert.True(t, out1.Equal(out2))
}

// --- Test Suite Setup ---
type CashFlowServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockSaleRepo        *MockSaleRepository
	service             portssvc.CashFlowSvcFacade
	cutover             time.Time
}

func (suite *CashFlowServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.cutover = time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)
	suite.service = services.NewCashFlowService(suite.mockTransactionRepo, suite.mockSaleRepo, suite.cutover)
}

func (suite *CashFlowServiceTestSuite) TestDrawerBalance_QueriesSinceCutover() {
	ctx := context.Background()
	entries := []domain.Transaction{
		inEntry("120", domain.StatusCompleted),
		outEntry("45", domain.StatusCompleted, "Fornecedor"),
	}

	suite.mockTransactionRepo.On("FindTransactionsSince", ctx, suite.cutover).Return(entries, nil).Once()
	suite.mockSaleRepo.On("SumCashSalesSince", ctx, suite.cutover).Return(dec("120"), nil).Once()

	balance, err := suite.service.DrawerBalance(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(balance)
	suite.True(dec("75").Equal(balance.Balance))
	suite.True(dec("120").Equal(balance.Breakdown.In))
	suite.True(dec("45").Equal(balance.Breakdown.Out))
	// The sales subtotal is informational; it must not double the balance.
	suite.True(dec("120").Equal(balance.Breakdown.Sales))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestDrawerBalance_RepoError() {
	ctx := context.Background()
	suite.mockTransactionRepo.On("FindTransactionsSince", ctx, suite.cutover).Return(nil, assert.AnError).Once()

	balance, err := suite.service.DrawerBalance(ctx)

	suite.Require().Error(err)
	suite.Nil(balance)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SumCashSalesSince", mock.Anything, mock.Anything)
}

func TestCashFlowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashFlowServiceTestSuite))
}
