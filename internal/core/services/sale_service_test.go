package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/core/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, cashEntry *domain.Transaction) error {
	args := m.Called(ctx, sale, cashEntry)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SumCashSalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSaleRepository) GetCommissionTotals(ctx context.Context) ([]domain.ProfessionalCommissionRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfessionalCommissionRow), args.Error(1)
}

// --- Mock ProfessionalRepository ---
type MockProfessionalRepository struct {
	mock.Mock
}

var _ portsrepo.ProfessionalRepositoryFacade = (*MockProfessionalRepository)(nil)

func (m *MockProfessionalRepository) FindProfessionalByID(ctx context.Context, professionalID string) (*domain.Professional, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) FindProfessionals(ctx context.Context) ([]domain.Professional, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) SaveProfessional(ctx context.Context, professional domain.Professional) error {
	args := m.Called(ctx, professional)
	return args.Error(0)
}

func (m *MockProfessionalRepository) UpdateProfessional(ctx context.Context, professional domain.Professional) error {
	args := m.Called(ctx, professional)
	return args.Error(0)
}

func (m *MockProfessionalRepository) DeleteProfessional(ctx context.Context, professionalID string) error {
	args := m.Called(ctx, professionalID)
	return args.Error(0)
}

// --- Mock ServiceRepository ---
type MockServiceRepository struct {
	mock.Mock
}

var _ portsrepo.ServiceRepositoryFacade = (*MockServiceRepository)(nil)

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo         *MockSaleRepository
	mockProfessionalRepo *MockProfessionalRepository
	mockServiceRepo      *MockServiceRepository
	mockProductRepo      *MockProductRepository
	service              portssvc.SaleSvcFacade
	professional         domain.Professional
	catalogService       domain.Service
	catalogProduct       domain.Product
	userID               string
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProfessionalRepo = new(MockProfessionalRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockProfessionalRepo, suite.mockServiceRepo, suite.mockProductRepo)

	suite.userID = uuid.NewString()
	suite.professional = domain.Professional{
		ProfessionalID:        uuid.NewString(),
		Name:                  "Maria",
		ServiceCommissionRate: decimal.RequireFromString("0.4"),
		ProductCommissionRate: decimal.RequireFromString("0.1"),
		Active:                true,
	}
	suite.catalogService = domain.Service{
		ServiceID: uuid.NewString(),
		Name:      "Corte",
		Price:     decimal.RequireFromString("25"),
	}
	suite.catalogProduct = domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Champô",
		Price:     decimal.RequireFromString("12.50"),
		Stock:     3,
	}
}

// --- Test Cases ---

func (suite *SaleServiceTestSuite) TestCreateSale_FreezesCatalogPriceAndCommission() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		ProfessionalID: suite.professional.ProfessionalID,
		Type:           domain.SaleTypeService,
		ItemID:         suite.catalogService.ServiceID,
		PaymentMethod:  "Multibanco",
	}

	suite.mockProfessionalRepo.On("FindProfessionalByID", ctx, suite.professional.ProfessionalID).Return(&suite.professional, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.catalogService.ServiceID).Return(&suite.catalogService, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), (*domain.Transaction)(nil)).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.True(decimal.RequireFromString("25").Equal(sale.SalePrice))
	suite.True(decimal.RequireFromString("10").Equal(sale.CommissionAmount))
	suite.Equal(suite.userID, sale.CreatedBy)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_PriceOverrideUsesOverriddenAmount() {
	ctx := context.Background()
	override := decimal.RequireFromString("30")
	req := dto.CreateSaleRequest{
		ProfessionalID: suite.professional.ProfessionalID,
		Type:           domain.SaleTypeService,
		ItemID:         suite.catalogService.ServiceID,
		SalePrice:      &override,
	}

	suite.mockProfessionalRepo.On("FindProfessionalByID", ctx, suite.professional.ProfessionalID).Return(&suite.professional, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.catalogService.ServiceID).Return(&suite.catalogService, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), (*domain.Transaction)(nil)).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(override.Equal(sale.SalePrice))
	// Commission follows the charged price, not the catalog price.
	suite.True(decimal.RequireFromString("12").Equal(sale.CommissionAmount))
}

func (suite *SaleServiceTestSuite) TestCreateSale_CashServiceMirrorsLedgerEntry() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		ProfessionalID: suite.professional.ProfessionalID,
		Type:           domain.SaleTypeService,
		ItemID:         suite.catalogService.ServiceID,
		PaymentMethod:  domain.PaymentMethodCash,
	}

	suite.mockProfessionalRepo.On("FindProfessionalByID", ctx, suite.professional.ProfessionalID).Return(&suite.professional, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.catalogService.ServiceID).Return(&suite.catalogService, nil).Once()

	var capturedEntry *domain.Transaction
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("*domain.Transaction")).
		Run(func(args mock.Arguments) {
			capturedEntry = args.Get(2).(*domain.Transaction)
		}).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(capturedEntry)
	suite.Equal(domain.TransactionIn, capturedEntry.Type)
	suite.Equal("Serviço - Corte", capturedEntry.Description)
	suite.Equal(domain.CategoryServiceRendered, capturedEntry.Category)
	suite.Equal(domain.StatusCompleted, capturedEntry.Status)
	suite.Equal(domain.PaymentMethodCash, capturedEntry.PaymentMethod)
	suite.True(sale.SalePrice.Equal(capturedEntry.Amount))
	suite.Nil(capturedEntry.UserID)
	suite.Equal(domain.SystemUserID, capturedEntry.CreatedBy)
}

func (suite *SaleServiceTestSuite) TestCreateSale_CashProductMirrorsVendaEntry() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		ProfessionalID: suite.professional.ProfessionalID,
		Type:           domain.SaleTypeProduct,
		ItemID:         suite.catalogProduct.ProductID,
		PaymentMethod:  domain.PaymentMethodCash,
	}

	suite.mockProfessionalRepo.On("FindProfessionalByID", ctx, suite.professional.ProfessionalID).Return(&suite.professional, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.catalogProduct.ProductID).Return(&suite.catalogProduct, nil).Once()

	var capturedEntry *domain.Transaction
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("*domain.Transaction")).
		Run(func(args mock.Arguments) {
			capturedEntry = args.Get(2).(*domain.Transaction)
		}).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(capturedEntry)
	suite.Equal("Venda - Champô", capturedEntry.Description)
	suite.Equal(domain.CategoryProductSale, capturedEntry.Category)
	// Product commission: 12.50 * 0.1 = 1.25
	suite.True(decimal.RequireFromString("1.25").Equal(sale.CommissionAmount))
}

func (suite *SaleServiceTestSuite) TestCreateSale_NonCashHasNoMirror() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		ProfessionalID: suite.professional.ProfessionalID,
		Type:           domain.SaleTypeService,
		ItemID:         suite.catalogService.ServiceID,
		PaymentMethod:  "MBWay",
	}

	suite.mockProfessionalRepo.On("FindProfessionalByID", ctx, suite.professional.ProfessionalID).Return(&suite.professional, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.catalogService.ServiceID).Return(&suite.catalogService, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), (*domain.Transaction)(nil)).Return(nil).Once()

	_, err := suite.service.CreateSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_ProfessionalNotFound() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		ProfessionalID: "missing",
		Type:           domain.SaleTypeService,
		ItemID:         suite.catalogService.ServiceID,
	}

	suite.mockProfessionalRepo.On("FindProfessionalByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateSale(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_NegativeTipRejected() {
	ctx := context.Background()
	tip := decimal.RequireFromString("-1")
	req := dto.CreateSaleRequest{
		ProfessionalID: suite.professional.ProfessionalID,
		Type:           domain.SaleTypeService,
		ItemID:         suite.catalogService.ServiceID,
		TipAmount:      &tip,
	}

	suite.mockProfessionalRepo.On("FindProfessionalByID", ctx, suite.professional.ProfessionalID).Return(&suite.professional, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.catalogService.ServiceID).Return(&suite.catalogService, nil).Once()

	_, err := suite.service.CreateSale(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
