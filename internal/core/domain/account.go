package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind classifies a fund account. Cash kinds additionally track a
// physical note inventory; the others hold only a scalar balance.
type AccountKind string

const (
	KindBank      AccountKind = "bank"
	KindCurrent   AccountKind = "current"
	KindOverdraft AccountKind = "overdraft"
	KindWallet    AccountKind = "wallet"
	KindCash      AccountKind = "cash"
	KindPettyCash AccountKind = "petty_cash"
)

// IsCash reports whether accounts of this kind track a denomination inventory.
func (k AccountKind) IsCash() bool {
	return k == KindCash || k == KindPettyCash
}

// Account represents a fund account (bank, wallet, cash drawer) within the
// core domain. This is the primary representation used by services.
type Account struct {
	AccountID           string          `json:"accountID"`
	Name                string          `json:"name"`
	HolderName          string          `json:"holderName"`
	Kind                AccountKind     `json:"kind"`
	Balance             decimal.Decimal `json:"balance"`
	InitialBalance      decimal.Decimal `json:"initialBalance"` // snapshot at creation/last reset, unaffected by flow
	LowBalanceThreshold decimal.Decimal `json:"lowBalanceThreshold"`
	Denominations       Denominations   `json:"denominations"`
	IsActive            bool            `json:"isActive"` // soft delete flag; inactive accounts keep their history
	AuditFields
}

// IsLow reports whether the account balance has fallen below its alert
// threshold. Advisory only; postings are never blocked by it.
func (a Account) IsLow() bool {
	return a.Balance.LessThan(a.LowBalanceThreshold)
}
