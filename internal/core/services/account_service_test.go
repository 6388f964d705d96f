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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  ports.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CashWithDenominations() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:          "Cash Drawer",
		Kind:          domain.KindCash,
		Balance:       decimal.NewFromInt(999), // ignored, breakdown wins
		Denominations: domain.Denominations{500: 2, 100: 3},
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "admin-1")
	require.NoError(suite.T(), err)

	assert.True(suite.T(), account.Balance.Equal(decimal.NewFromInt(1300)),
		"balance derives from notes, got %s", account.Balance)
	assert.True(suite.T(), account.InitialBalance.Equal(decimal.NewFromInt(1300)))
	assert.Equal(suite.T(), domain.Denominations{500: 2, 100: 3}, account.Denominations)
	assert.True(suite.T(), account.IsActive)
	assert.Equal(suite.T(), "admin-1", account.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DenominationsRejectedForBank() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:          "Main Bank",
		Kind:          domain.KindBank,
		Denominations: domain.Denominations{500: 2},
	}

	_, err := suite.service.CreateAccount(ctx, req, "admin-1")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultThreshold() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:    "Wallet",
		Kind:    domain.KindWallet,
		Balance: decimal.NewFromInt(50),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "admin-1")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), account.LowBalanceThreshold.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), account.IsLow(), "50 is below the default threshold of 100")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_BalanceRejectedForCash() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID: "acc-1",
		Name:      "Cash Drawer",
		Kind:      domain.KindCash,
		Balance:   decimal.NewFromInt(1300),
		IsActive:  true,
	}
	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(existing, nil).Once()

	newBalance := decimal.NewFromInt(2000)
	_, err := suite.service.UpdateAccount(ctx, "acc-1", dto.UpdateAccountRequest{Balance: &newBalance}, "admin-1")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_BalanceAllowedForBank() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID: "acc-2",
		Name:      "Main Bank",
		Kind:      domain.KindBank,
		Balance:   decimal.NewFromInt(5000),
		IsActive:  true,
	}
	suite.mockRepo.On("FindAccountByID", ctx, "acc-2").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	newBalance := decimal.NewFromInt(7500)
	account, err := suite.service.UpdateAccount(ctx, "acc-2", dto.UpdateAccountRequest{Balance: &newBalance}, "admin-1")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), account.Balance.Equal(newBalance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_InitialBalancePersisted() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID:      "acc-2",
		Name:           "Main Bank",
		Kind:           domain.KindBank,
		Balance:        decimal.NewFromInt(5000),
		InitialBalance: decimal.NewFromInt(1000),
		IsActive:       true,
	}
	suite.mockRepo.On("FindAccountByID", ctx, "acc-2").Return(existing, nil).Once()

	var saved domain.Account
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Account) }).
		Return(nil).Once()

	newInitial := decimal.NewFromInt(2500)
	account, err := suite.service.UpdateAccount(ctx, "acc-2", dto.UpdateAccountRequest{InitialBalance: &newInitial}, "admin-1")
	require.NoError(suite.T(), err)

	assert.True(suite.T(), saved.InitialBalance.Equal(newInitial),
		"the account handed to the store must carry the edited opening balance")
	assert.True(suite.T(), account.InitialBalance.Equal(newInitial))
	assert.True(suite.T(), saved.Balance.Equal(decimal.NewFromInt(5000)), "current balance untouched")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSetDenominations_RecomputesBalance() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID:     "acc-1",
		Kind:          domain.KindPettyCash,
		Balance:       decimal.NewFromInt(1300),
		Denominations: domain.Denominations{500: 2, 100: 3},
		IsActive:      true,
	}
	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.SetDenominations(ctx, "acc-1", domain.Denominations{2000: 1, 50: 2}, "admin-1")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), account.Balance.Equal(decimal.NewFromInt(2100)))
	assert.Equal(suite.T(), domain.Denominations{2000: 1, 50: 2}, account.Denominations)
}

func (suite *AccountServiceTestSuite) TestSetDenominations_RejectedForNonCash() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: "acc-2", Kind: domain.KindBank, IsActive: true}
	suite.mockRepo.On("FindAccountByID", ctx, "acc-2").Return(existing, nil).Once()

	_, err := suite.service.SetDenominations(ctx, "acc-2", domain.Denominations{500: 1}, "admin-1")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrValidation))
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeactivateAccount", ctx, "missing", "admin-1", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, "missing", "admin-1")
	assert.True(suite.T(), errors.Is(err, apperrors.ErrNotFound))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
