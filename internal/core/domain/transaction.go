package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies what kind of money movement a transaction records.
type TransactionType string

const (
	ServiceIncome TransactionType = "service_income"
	Deposit       TransactionType = "deposit"
	Withdraw      TransactionType = "withdraw"
	Expense       TransactionType = "expense"
)

// PaymentMode distinguishes physical cash from online settlement.
type PaymentMode string

const (
	ModeCash   PaymentMode = "cash"
	ModeOnline PaymentMode = "online"
)

// TransactionStatus drives the pending-work queue.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
)

// Transaction represents one recorded service/fund movement. The financial
// core fields are immutable once posted; only status, category and description
// may be edited afterwards.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	PaymentMode   PaymentMode     `json:"paymentMode"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	ClientName    string          `json:"clientName"`
	ClientPhone   string          `json:"clientPhone"`

	Amount         decimal.Decimal `json:"amount"` // base/service price
	CostPrice      decimal.Decimal `json:"costPrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	Profit         decimal.Decimal `json:"profit"`         // selling - cost, service income only
	ServiceCharges decimal.Decimal `json:"serviceCharges"` //
	TotalAmount    decimal.Decimal `json:"totalAmount"`    // amount + service charges, the payable figure

	Status   TransactionStatus `json:"status"`
	IsUrgent bool              `json:"isUrgent"`

	InwardAccountID  *string `json:"inwardAccountID"`
	OutwardAccountID *string `json:"outwardAccountID"`

	InwardDenominations  Denominations `json:"inwardDenominations"`  // notes received from the client
	OutwardDenominations Denominations `json:"outwardDenominations"` // notes handed back/out

	// Hidden rows stay out of account-detail history but remain in reports.
	IsHiddenFromAccount bool `json:"isHiddenFromAccount"`

	OccurredAt time.Time `json:"occurredAt"`
	AuditFields
}

// TransactionFilter holds the conjunctive listing/deletion filters.
// Zero values mean "no constraint".
type TransactionFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Type        TransactionType
	Category    string
	PaymentMode PaymentMode
	AccountID   string // matches inward or outward; also hides soft-deleted account history
	SearchText  string // matched against client name and description
}
