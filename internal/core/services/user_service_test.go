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
	"github.com/salonsync/salon_management_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	adminID      string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
	suite.adminID = uuid.NewString()
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPasswordAndNormalizesEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "Rita",
		Email:    "  Rita@Salon.PT ",
		Password: "segredo123",
		Role:     domain.RoleManager,
	}

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("rita@salon.pt", saved.Email)
	suite.NotEqual("segredo123", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("segredo123", saved.PasswordHash))
	suite.Equal(suite.adminID, saved.CreatedBy)
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidRole() {
	req := dto.CreateUserRequest{Name: "Rita", Email: "rita@salon.pt", Password: "x", Role: "SUPERUSER"}

	_, err := suite.service.CreateUser(context.Background(), req, suite.adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Rita", Email: "rita@salon.pt", Password: "x", Role: domain.RoleReception}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req, suite.adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("segredo123")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "rita@salon.pt", PasswordHash: hash, Role: domain.RoleManager}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "rita@salon.pt").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, " Rita@Salon.PT ", "segredo123")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("segredo123")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "rita@salon.pt", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "rita@salon.pt").Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "rita@salon.pt", "errada")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailSameError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@salon.pt").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost@salon.pt", "qualquer")

	suite.Require().Error(err)
	// Unknown email and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteBlocked() {
	err := suite.service.DeleteUser(context.Background(), suite.adminID, suite.adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_MarksDeleted() {
	ctx := context.Background()
	targetID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, targetID).Return(&domain.User{UserID: targetID}, nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", ctx, targetID, mock.AnythingOfType("time.Time"), suite.adminID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, targetID, suite.adminID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureDefaultUser_NoopWhenExists() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "admin@salon.pt"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "admin@salon.pt").Return(existing, nil).Once()

	err := suite.service.EnsureDefaultUser(ctx, "Admin", "admin@salon.pt", "admin123", domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureDefaultUser_SeedsWhenMissing() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "admin@salon.pt").Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	err := suite.service.EnsureDefaultUser(ctx, "Admin", "admin@salon.pt", "admin123", domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, saved.Role)
	suite.Equal(domain.SystemUserID, saved.CreatedBy)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
