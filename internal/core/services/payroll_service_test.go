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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func saleOn(professionalID string, date time.Time, commission, tip string) domain.Sale {
	return domain.Sale{
		SaleID:           uuid.NewString(),
		ProfessionalID:   professionalID,
		CommissionAmount: dec(commission),
		TipAmount:        dec(tip),
		Date:             date,
	}
}

func payrollOut(professionalID string, date time.Time, amount string, category domain.TransactionCategory) domain.Transaction {
	return domain.Transaction{
		TransactionID:  uuid.NewString(),
		Type:           domain.TransactionOut,
		Amount:         dec(amount),
		Category:       category,
		Status:         domain.StatusCompleted,
		Date:           date,
		ProfessionalID: &professionalID,
	}
}

func TestFilterSalesForFortnight(t *testing.T) {
	profID := "prof-1"
	otherID := "prof-2"
	sales := []domain.Sale{
		saleOn(profID, time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC), "10", "0"),
		saleOn(profID, time.Date(2026, time.March, 15, 18, 0, 0, 0, time.UTC), "20", "0"),
		saleOn(profID, time.Date(2026, time.March, 16, 9, 0, 0, 0, time.UTC), "30", "0"),
		saleOn(profID, time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC), "40", "0"),
		saleOn(profID, time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC), "99", "0"),
		saleOn(otherID, time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC), "7", "0"),
	}

	first := services.FilterSalesForFortnight(sales, profID, 2026, time.March, 1)
	assert.Len(t, first, 2) // days 1 and 15

	second := services.FilterSalesForFortnight(sales, profID, 2026, time.March, 2)
	assert.Len(t, second, 2) // days 16 and 31

	all := services.FilterSalesForFortnight(sales, "", 2026, time.March, 1)
	assert.Len(t, all, 3) // empty professional ID matches everyone
}

func TestFilterPayrollPayments(t *testing.T) {
	profID := "prof-1"
	deletedAt := time.Now()
	tombstoned := payrollOut(profID, time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC), "50", domain.CategoryAdvance)
	tombstoned.DeletedAt = &deletedAt

	transactions := []domain.Transaction{
		payrollOut(profID, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), "100", domain.CategoryCommissionPayment),
		payrollOut(profID, time.Date(2026, time.March, 28, 0, 0, 0, 0, time.UTC), "25", domain.CategoryAdvance),
		payrollOut(profID, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "10", domain.CategoryAdvance),
		tombstoned,
		// Non-payroll OUT in the same month is not a payment.
		outEntry("40", domain.StatusCompleted, "Fornecedor"),
	}

	payments := services.FilterPayrollPayments(transactions, profID, 2026, time.March)

	// Payments match the whole month, both fortnights included.
	assert.Len(t, payments, 2)
}

func TestComputePayrollSummary_NegativePayable(t *testing.T) {
	profID := "prof-1"
	sales := []domain.Sale{
		saleOn(profID, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), "30", "5"),
	}
	transactions := []domain.Transaction{
		payrollOut(profID, time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC), "100", domain.CategoryAdvance),
	}

	summary := services.ComputePayrollSummary(sales, transactions, profID, 2026, time.March, 1)

	assert.True(t, dec("30").Equal(summary.TotalCommission))
	assert.True(t, dec("5").Equal(summary.TotalTips))
	assert.True(t, dec("100").Equal(summary.TotalPaid))
	// Advances above earnings surface as a debt, never clamped to zero.
	assert.True(t, dec("-65").Equal(summary.TotalToPay))
}

// --- Test Suite Setup ---
type PayrollServiceTestSuite struct {
	suite.Suite
	mockSaleRepo        *MockSaleRepository
	mockTransactionRepo *MockTransactionRepository
	service             portssvc.PayrollSvcFacade
	professionalID      string
	userID              string
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.service = services.NewPayrollService(suite.mockSaleRepo, suite.mockTransactionRepo)
	suite.professionalID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PayrollServiceTestSuite) TestSummary_InvalidMonth() {
	_, err := suite.service.Summary(context.Background(), dto.PayrollQuery{Month: "03-2026", Fortnight: 1})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestSummary_InvalidFortnight() {
	_, err := suite.service.Summary(context.Background(), dto.PayrollQuery{Month: "2026-03", Fortnight: 3})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "FindSales", mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestSummary_ComputesFromRepositories() {
	ctx := context.Background()
	sales := []domain.Sale{
		saleOn(suite.professionalID, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), "12.50", "2"),
	}
	transactions := []domain.Transaction{
		payrollOut(suite.professionalID, time.Date(2026, time.March, 22, 0, 0, 0, 0, time.UTC), "4", domain.CategoryAdvance),
	}

	suite.mockSaleRepo.On("FindSales", ctx).Return(sales, nil).Once()
	suite.mockTransactionRepo.On("FindTransactions", ctx, false).Return(transactions, nil).Once()

	summary, err := suite.service.Summary(ctx, dto.PayrollQuery{
		ProfessionalID: suite.professionalID,
		Month:          "2026-03",
		Fortnight:      1,
	})

	suite.Require().NoError(err)
	suite.True(dec("10.50").Equal(summary.TotalToPay))
	suite.Len(summary.Sales, 1)
	// Month-level payment match: the day-22 advance counts in fortnight 1 too.
	suite.Len(summary.Payments, 1)
}

func (suite *PayrollServiceTestSuite) TestPay_RecordsCompletedOutWithMonthDescription() {
	ctx := context.Background()
	req := dto.PayrollPaymentRequest{
		ProfessionalID: suite.professionalID,
		Amount:         dec("150"),
		Month:          "2026-03",
	}

	var saved domain.Transaction
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	payment, err := suite.service.Pay(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(domain.TransactionOut, saved.Type)
	suite.Equal(domain.CategoryCommissionPayment, saved.Category)
	suite.Equal(domain.StatusCompleted, saved.Status)
	suite.Equal("Pagamento Comissão - March 2026", saved.Description)
	suite.Equal("Transferência", saved.PaymentMethod)
	suite.Require().NotNil(saved.ProfessionalID)
	suite.Equal(suite.professionalID, *saved.ProfessionalID)
	suite.Require().NotNil(saved.UserID)
	suite.Equal(suite.userID, *saved.UserID)
}

func (suite *PayrollServiceTestSuite) TestAdvance_RecordsDatedAdvance() {
	ctx := context.Background()
	req := dto.PayrollPaymentRequest{
		ProfessionalID: suite.professionalID,
		Amount:         dec("50"),
		PaymentMethod:  domain.PaymentMethodCash,
	}

	var saved domain.Transaction
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	_, err := suite.service.Advance(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryAdvance, saved.Category)
	suite.Equal(domain.PaymentMethodCash, saved.PaymentMethod)
	expectedDescription := "Adiantamento - " + time.Now().Format("02/01/2006")
	suite.Equal(expectedDescription, saved.Description)
}

func (suite *PayrollServiceTestSuite) TestPay_RejectsNonPositiveAmount() {
	req := dto.PayrollPaymentRequest{
		ProfessionalID: suite.professionalID,
		Amount:         dec("0"),
	}

	_, err := suite.service.Pay(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
