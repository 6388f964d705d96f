package models

import (
	"github.com/shopspring/decimal"
)

// AccountKind mirrors the accounts.kind column.
type AccountKind string

// Account represents a row of the accounts table.
type Account struct {
	AccountID           string          `db:"account_id"`
	Name                string          `db:"name"`
	HolderName          string          `db:"holder_name"`
	Kind                AccountKind     `db:"kind"`
	Balance             decimal.Decimal `db:"balance"`
	InitialBalance      decimal.Decimal `db:"initial_balance"`
	LowBalanceThreshold decimal.Decimal `db:"low_balance_threshold"`
	Denominations       DenominationMap `db:"denominations"`
	IsActive            bool            `db:"is_active"`
	AuditFields
}
