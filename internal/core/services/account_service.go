package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopbook/shopbook_backend/internal/utils/denominations"
	"github.com/shopspring/decimal"
)

// defaultLowBalanceThreshold applies when the caller doesn't set one.
var defaultLowBalanceThreshold = decimal.NewFromInt(100)

type accountService struct {
	accountRepo ports.AccountRepository
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo ports.AccountRepository) ports.AccountService {
	return &accountService{accountRepo: accountRepo}
}

var _ ports.AccountService = (*accountService)(nil)

// CreateAccount creates a fund account. For cash kinds a supplied denomination
// breakdown wins over the scalar balance: the balance is derived from the
// notes and the caller's figure ignored. The initial_balance snapshot equals
// the computed opening balance.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.Account, error) {
	balance := req.Balance
	denoms := req.Denominations.Clone()

	if !denoms.IsEmpty() {
		if !req.Kind.IsCash() {
			return nil, fmt.Errorf("%w: denominations are only tracked for cash accounts, not kind %q",
				apperrors.ErrValidation, req.Kind)
		}
		total, err := denominations.TotalValue(denoms)
		if err != nil {
			return nil, err
		}
		balance = total
	}

	threshold := defaultLowBalanceThreshold
	if req.LowBalanceThreshold != nil {
		threshold = *req.LowBalanceThreshold
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:           uuid.NewString(),
		Name:                req.Name,
		HolderName:          req.HolderName,
		Kind:                req.Kind,
		Balance:             balance,
		InitialBalance:      balance,
		LowBalanceThreshold: threshold,
		Denominations:       denoms,
		IsActive:            true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return &account, nil
}

// GetAccountByID fetches one account, active or not.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts returns all active accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListActiveAccounts(ctx)
}

// UpdateAccount edits display metadata and thresholds. The scalar balance may
// only be set directly on non-cash accounts; cash balances always derive from
// the note inventory.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.HolderName != nil {
		account.HolderName = *req.HolderName
	}
	if req.LowBalanceThreshold != nil {
		account.LowBalanceThreshold = *req.LowBalanceThreshold
	}
	if req.InitialBalance != nil {
		account.InitialBalance = *req.InitialBalance
	}
	if req.Balance != nil {
		if account.Kind.IsCash() {
			return nil, fmt.Errorf("%w: balance of a cash account derives from its denominations; use the denominations endpoint",
				apperrors.ErrValidation)
		}
		account.Balance = *req.Balance
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = actorID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}
	return account, nil
}

// SetDenominations replaces a cash account's note inventory. The balance is
// recomputed from the inventory, never taken from the caller.
func (s *accountService) SetDenominations(ctx context.Context, accountID string, denoms domain.Denominations, actorID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.Kind.IsCash() {
		return nil, fmt.Errorf("%w: account %s is kind %q and has no note inventory",
			apperrors.ErrValidation, accountID, account.Kind)
	}

	total, err := denominations.TotalValue(denoms)
	if err != nil {
		return nil, err
	}

	account.Denominations = denoms.Clone()
	account.Balance = total
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = actorID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update denominations for account %s: %w", accountID, err)
	}
	return account, nil
}

// DeactivateAccount soft-deletes an account. Its transaction history stays
// visible in reports.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, actorID string) error {
	err := s.accountRepo.DeactivateAccount(ctx, accountID, actorID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			return err
		}
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	return nil
}
