package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table.
type Transaction struct {
	TransactionID string `db:"transaction_id"`
	Type          string `db:"type"`
	PaymentMode   string `db:"payment_mode"`
	Category      string `db:"category"`
	Description   string `db:"description"`
	ClientName    string `db:"client_name"`
	ClientPhone   string `db:"client_phone"`

	Amount         decimal.Decimal `db:"amount"`
	CostPrice      decimal.Decimal `db:"cost_price"`
	SellingPrice   decimal.Decimal `db:"selling_price"`
	Profit         decimal.Decimal `db:"profit"`
	ServiceCharges decimal.Decimal `db:"service_charges"`
	TotalAmount    decimal.Decimal `db:"total_amount"`

	Status   string `db:"status"`
	IsUrgent bool   `db:"is_urgent"`

	InwardAccountID  *string `db:"inward_account_id"`
	OutwardAccountID *string `db:"outward_account_id"`

	InwardDenominations  DenominationMap `db:"inward_denominations"`
	OutwardDenominations DenominationMap `db:"outward_denominations"`

	IsHiddenFromAccount bool `db:"is_hidden_from_account"`

	OccurredAt time.Time `db:"occurred_at"`
	AuditFields
}
