package dto

import (
	"fmt"
	"time"

	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest carries everything needed to record and post one
// transaction. Denomination maps are keyed by note value, e.g. {"500": 2}.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=service_income deposit withdraw expense"`
	PaymentMode domain.PaymentMode     `json:"payment_mode" binding:"required,oneof=cash online"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	ClientName  string                 `json:"client_name"`
	ClientPhone string                 `json:"client_phone"`

	Amount         decimal.Decimal `json:"amount" binding:"required"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	ServiceCharges decimal.Decimal `json:"service_charges"`
	TotalAmount    decimal.Decimal `json:"total_amount"`

	Status   domain.TransactionStatus `json:"status" binding:"omitempty,oneof=pending completed"`
	IsUrgent bool                     `json:"is_urgent"`

	InwardAccountID  *string `json:"inward_account_id"`
	OutwardAccountID *string `json:"outward_account_id"`

	InwardDenominations  domain.Denominations `json:"inward_denominations" binding:"omitempty,denoms"`
	OutwardDenominations domain.Denominations `json:"outward_denominations" binding:"omitempty,denoms"`
}

// UpdateTransactionStatusRequest flips a transaction's work status.
type UpdateTransactionStatusRequest struct {
	Status domain.TransactionStatus `json:"status" binding:"required,oneof=pending completed"`
}

// ListTransactionsParams are the query filters for listing and bulk deletion.
type ListTransactionsParams struct {
	StartDate   string `form:"startDate"`
	EndDate     string `form:"endDate"`
	Type        string `form:"type"`
	Category    string `form:"category"`
	PaymentMode string `form:"payment_mode"`
	AccountID   string `form:"account_id"`
	Search      string `form:"search"`
}

// ToFilter parses the raw query params into a domain filter. Dates are
// YYYY-MM-DD, interpreted as inclusive day bounds.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Type:        domain.TransactionType(p.Type),
		Category:    p.Category,
		PaymentMode: domain.PaymentMode(p.PaymentMode),
		AccountID:   p.AccountID,
		SearchText:  p.Search,
	}
	if p.StartDate != "" {
		t, err := time.Parse("2006-01-02", p.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid startDate %q", apperrors.ErrValidation, p.StartDate)
		}
		filter.StartDate = &t
	}
	if p.EndDate != "" {
		t, err := time.Parse("2006-01-02", p.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid endDate %q", apperrors.ErrValidation, p.EndDate)
		}
		filter.EndDate = &t
	}
	return filter, nil
}

// TransactionResponse mirrors domain.Transaction for API output.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Type          domain.TransactionType   `json:"type"`
	PaymentMode   domain.PaymentMode       `json:"payment_mode"`
	Category      string                   `json:"category"`
	Description   string                   `json:"description"`
	ClientName    string                   `json:"client_name"`
	ClientPhone   string                   `json:"client_phone"`
	Amount        decimal.Decimal          `json:"amount"`
	CostPrice     decimal.Decimal          `json:"cost_price"`
	SellingPrice  decimal.Decimal          `json:"selling_price"`
	Profit        decimal.Decimal          `json:"profit"`
	ServiceCharge decimal.Decimal          `json:"service_charges"`
	TotalAmount   decimal.Decimal          `json:"total_amount"`
	Status        domain.TransactionStatus `json:"status"`
	IsUrgent      bool                     `json:"is_urgent"`

	InwardAccountID      *string              `json:"inward_account_id"`
	OutwardAccountID     *string              `json:"outward_account_id"`
	InwardDenominations  domain.Denominations `json:"inward_denominations"`
	OutwardDenominations domain.Denominations `json:"outward_denominations"`

	OccurredAt time.Time `json:"occurredAt"`
	CreatedBy  string    `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		Type:                 t.Type,
		PaymentMode:          t.PaymentMode,
		Category:             t.Category,
		Description:          t.Description,
		ClientName:           t.ClientName,
		ClientPhone:          t.ClientPhone,
		Amount:               t.Amount,
		CostPrice:            t.CostPrice,
		SellingPrice:         t.SellingPrice,
		Profit:               t.Profit,
		ServiceCharge:        t.ServiceCharges,
		TotalAmount:          t.TotalAmount,
		Status:               t.Status,
		IsUrgent:             t.IsUrgent,
		InwardAccountID:      t.InwardAccountID,
		OutwardAccountID:     t.OutwardAccountID,
		InwardDenominations:  t.InwardDenominations,
		OutwardDenominations: t.OutwardDenominations,
		OccurredAt:           t.OccurredAt,
		CreatedBy:            t.CreatedBy,
	}
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(ts []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i := range ts {
		res[i] = ToTransactionResponse(&ts[i])
	}
	return res
}

// BulkDeleteResponse reports how many rows a bulk delete removed.
type BulkDeleteResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
