package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/core/services"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopbook/shopbook_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  ports.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) userWithPassword(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	require.NoError(suite.T(), err)
	return &domain.User{
		UserID:       "user-1",
		Username:     "shopadmin",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	user := suite.userWithPassword("secret123")
	suite.mockRepo.On("FindUserByUsername", ctx, "shopadmin").Return(user, nil).Once()

	// Username lookup is lower-cased.
	got, err := suite.service.Authenticate(ctx, "ShopAdmin", "secret123")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	user := suite.userWithPassword("secret123")
	suite.mockRepo.On("FindUserByUsername", ctx, "shopadmin").Return(user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "shopadmin", "wrong")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserSameError() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	// Unknown usernames fail exactly like wrong passwords.
	_, err := suite.service.Authenticate(ctx, "ghost", "whatever")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrUnauthorized))
	assert.False(suite.T(), errors.Is(err, apperrors.ErrNotFound))
}

func (suite *UserServiceTestSuite) TestCreateAdmin_HashesAndLowercases() {
	ctx := context.Background()
	var saved domain.User
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.CreateAdmin(ctx, dto.CreateAdminRequest{
		Username: "NewAdmin",
		Password: "secret123",
		FullName: "New Admin",
	}, "user-1")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "newadmin", user.Username)
	assert.NotEqual(suite.T(), "secret123", saved.PasswordHash)
	assert.True(suite.T(), utils.CheckPasswordHash("secret123", saved.PasswordHash))
	assert.Equal(suite.T(), domain.RoleAdmin, saved.Role)
}

func (suite *UserServiceTestSuite) TestDeleteAdmin_SelfRejected() {
	ctx := context.Background()

	err := suite.service.DeleteAdmin(ctx, "user-1", "user-1")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser")
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrent() {
	ctx := context.Background()
	user := suite.userWithPassword("oldpass")
	suite.mockRepo.On("FindUserByID", ctx, "user-1").Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, "user-1", "notold", "newpass")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserPassword")
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_CreatesWhenMissing() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	err := suite.service.EnsureDefaultAdmin(ctx, "admin", "password123", "System Admin")
	require.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_NoopWhenPresent() {
	ctx := context.Background()
	existing := suite.userWithPassword("whatever")
	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(existing, nil).Once()

	err := suite.service.EnsureDefaultAdmin(ctx, "admin", "password123", "System Admin")
	require.NoError(suite.T(), err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
