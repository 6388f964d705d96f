package dto

import (
	"time"

	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a fund account.
// For cash kinds the balance may be given as a denomination breakdown instead
// of (or as well as) a scalar; the breakdown wins and the balance is derived.
type CreateAccountRequest struct {
	Name                string               `json:"name" binding:"required"`
	HolderName          string               `json:"holderName"`
	Kind                domain.AccountKind   `json:"kind" binding:"required,oneof=bank current overdraft wallet cash petty_cash"`
	Balance             decimal.Decimal      `json:"balance"`
	LowBalanceThreshold *decimal.Decimal     `json:"lowBalanceThreshold"` // optional, defaults to 100
	Denominations       domain.Denominations `json:"denominations" binding:"omitempty,denoms"`
}

// UpdateAccountRequest defines the fields that may change after creation.
// Pointers distinguish "not provided" from zero values.
type UpdateAccountRequest struct {
	Name                *string          `json:"name"`
	HolderName          *string          `json:"holderName"`
	LowBalanceThreshold *decimal.Decimal `json:"lowBalanceThreshold"`
	InitialBalance      *decimal.Decimal `json:"initialBalance"`
	Balance             *decimal.Decimal `json:"balance"` // non-cash accounts only
}

// SetDenominationsRequest replaces a cash account's note inventory.
type SetDenominationsRequest struct {
	Denominations domain.Denominations `json:"denominations" binding:"required,denoms"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID           string               `json:"accountID"`
	Name                string               `json:"name"`
	HolderName          string               `json:"holderName"`
	Kind                domain.AccountKind   `json:"kind"`
	Balance             decimal.Decimal      `json:"balance"`
	InitialBalance      decimal.Decimal      `json:"initialBalance"`
	LowBalanceThreshold decimal.Decimal      `json:"lowBalanceThreshold"`
	Denominations       domain.Denominations `json:"denominations"`
	IsLow               bool                 `json:"isLow"`
	IsActive            bool                 `json:"isActive"`
	CreatedAt           time.Time            `json:"createdAt"`
	LastUpdatedAt       time.Time            `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:           acc.AccountID,
		Name:                acc.Name,
		HolderName:          acc.HolderName,
		Kind:                acc.Kind,
		Balance:             acc.Balance,
		InitialBalance:      acc.InitialBalance,
		LowBalanceThreshold: acc.LowBalanceThreshold,
		Denominations:       acc.Denominations,
		IsLow:               acc.IsLow(),
		IsActive:            acc.IsActive,
		CreatedAt:           acc.CreatedAt,
		LastUpdatedAt:       acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
