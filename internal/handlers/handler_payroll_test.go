package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/salonsync/salon_management_app/internal/handlers"
	"github.com/salonsync/salon_management_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) Summary(ctx context.Context, query dto.PayrollQuery) (*domain.PayrollSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollSummary), args.Error(1)
}

func (m *MockPayrollService) Pay(ctx context.Context, req dto.PayrollPaymentRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockPayrollService) Advance(ctx context.Context, req dto.PayrollPaymentRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Test Suite ---
type PayrollHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPayrollService *MockPayrollService
	jwtSecret          string
}

// generateTestToken creates a signed session token for the given role.
func (suite *PayrollHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	claims := middleware.SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sma-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PayrollHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockPayrollService = new(MockPayrollService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	managerUp := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)
	handlers.RegisterPayrollRoutes(v1, suite.mockPayrollService, managerUp)
}

// --- Test Cases ---

func (suite *PayrollHandlerTestSuite) TestSummary_Success() {
	professionalID := uuid.NewString()
	expected := &domain.PayrollSummary{
		TotalCommission: decimal.RequireFromString("120"),
		TotalTips:       decimal.RequireFromString("10"),
		TotalPaid:       decimal.RequireFromString("50"),
		TotalToPay:      decimal.RequireFromString("80"),
		Sales:           []domain.Sale{},
		Payments:        []domain.Transaction{},
	}

	suite.mockPayrollService.On("Summary",
		mock.Anything,
		mock.MatchedBy(func(q dto.PayrollQuery) bool {
			return q.ProfessionalID == professionalID && q.Month == "2026-03" && q.Fortnight == 1
		}),
	).Return(expected, nil).Once()

	url := "/api/v1/payroll/summary?professional_id=" + professionalID + "&month=2026-03&fortnight=1"
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleManager))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.PayrollSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(expected.TotalToPay.Equal(body.TotalToPay))
	suite.mockPayrollService.AssertExpectations(suite.T())
}

func (suite *PayrollHandlerTestSuite) TestSummary_MissingFortnight() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payroll/summary?month=2026-03", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleManager))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPayrollService.AssertNotCalled(suite.T(), "Summary", mock.Anything, mock.Anything)
}

func (suite *PayrollHandlerTestSuite) TestPay_ReceptionForbidden() {
	payload, _ := json.Marshal(dto.PayrollPaymentRequest{
		ProfessionalID: uuid.NewString(),
		Amount:         decimal.RequireFromString("100"),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payroll/pay", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleReception))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockPayrollService.AssertNotCalled(suite.T(), "Pay", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollHandlerTestSuite) TestPay_NoTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payroll/pay", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *PayrollHandlerTestSuite) TestPay_RecordsPaymentAsTokenUser() {
	userID := uuid.NewString()
	professionalID := uuid.NewString()
	expected := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionOut,
		Category:      domain.CategoryCommissionPayment,
		Amount:        decimal.RequireFromString("150"),
		Status:        domain.StatusCompleted,
	}

	suite.mockPayrollService.On("Pay",
		mock.Anything,
		mock.MatchedBy(func(r dto.PayrollPaymentRequest) bool {
			return r.ProfessionalID == professionalID
		}),
		userID,
	).Return(expected, nil).Once()

	payload, _ := json.Marshal(dto.PayrollPaymentRequest{
		ProfessionalID: professionalID,
		Amount:         decimal.RequireFromString("150"),
		Month:          "2026-03",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payroll/pay", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleAdmin))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockPayrollService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestPayrollHandler(t *testing.T) {
	suite.Run(t, new(PayrollHandlerTestSuite))
}
