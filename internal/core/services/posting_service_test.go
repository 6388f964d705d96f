package services_test

import (
	"errors"
	"testing"

	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDecide_ServiceIncomeCash(t *testing.T) {
	// Customer pays 600 total (500 service + 100 charges) in notes; the shop
	// pays the provider 500 out of the inward account and keeps the notes.
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:                domain.ServiceIncome,
		PaymentMode:         domain.ModeCash,
		Amount:              dec(500),
		ServiceCharges:      dec(100),
		TotalAmount:         dec(600),
		InwardAccountID:     strPtr("acc-x"),
		InwardDenominations: domain.Denominations{500: 1, 100: 1},
	}

	decision, err := posting.Decide(txn)
	require.NoError(t, err)

	assert.True(t, decision.BalanceChanges["acc-x"].Equal(dec(-500)),
		"inward account pays the base amount, got %s", decision.BalanceChanges["acc-x"])
	change := decision.DenominationChanges["acc-x"]
	assert.Equal(t, domain.Denominations{500: 1, 100: 1}, change.Add)
	assert.True(t, change.Subtract.IsEmpty())
}

func TestDecide_ServiceIncomeCash_WithChange(t *testing.T) {
	// Customer hands 1000 and receives 400 back; net 600 reconciles to total.
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:                 domain.ServiceIncome,
		PaymentMode:          domain.ModeCash,
		Amount:               dec(500),
		ServiceCharges:       dec(100),
		TotalAmount:          dec(600),
		InwardAccountID:      strPtr("acc-x"),
		InwardDenominations:  domain.Denominations{500: 2},
		OutwardDenominations: domain.Denominations{200: 2},
	}

	decision, err := posting.Decide(txn)
	require.NoError(t, err)

	change := decision.DenominationChanges["acc-x"]
	assert.Equal(t, domain.Denominations{500: 2}, change.Add)
	assert.Equal(t, domain.Denominations{200: 2}, change.Subtract)
}

func TestDecide_ServiceIncomeOnline(t *testing.T) {
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:             domain.ServiceIncome,
		PaymentMode:      domain.ModeOnline,
		Amount:           dec(500),
		TotalAmount:      dec(600),
		InwardAccountID:  strPtr("acc-in"),
		OutwardAccountID: strPtr("acc-out"),
	}

	decision, err := posting.Decide(txn)
	require.NoError(t, err)

	assert.True(t, decision.BalanceChanges["acc-in"].Equal(dec(600)))
	assert.True(t, decision.BalanceChanges["acc-out"].Equal(dec(-500)))
	assert.Empty(t, decision.DenominationChanges, "online postings move no notes")
}

func TestDecide_DepositCash(t *testing.T) {
	// Customer gives 500 in notes; the cash drawer gains, the bank account the
	// deposit is made into loses.
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:                domain.Deposit,
		PaymentMode:         domain.ModeCash,
		Amount:              dec(500),
		TotalAmount:         dec(500),
		InwardAccountID:     strPtr("cash-hand"),
		OutwardAccountID:    strPtr("bank"),
		InwardDenominations: domain.Denominations{500: 1},
	}

	decision, err := posting.Decide(txn)
	require.NoError(t, err)

	assert.True(t, decision.BalanceChanges["cash-hand"].Equal(dec(500)))
	assert.True(t, decision.BalanceChanges["bank"].Equal(dec(-500)))
	assert.Equal(t, domain.Denominations{500: 1}, decision.DenominationChanges["cash-hand"].Add)
}

func TestDecide_WithdrawCash(t *testing.T) {
	// Admin hands 1000 out of the drawer.
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:                 domain.Withdraw,
		PaymentMode:          domain.ModeCash,
		Amount:               dec(1000),
		TotalAmount:          dec(1000),
		OutwardAccountID:     strPtr("cash-hand"),
		OutwardDenominations: domain.Denominations{500: 2},
	}

	decision, err := posting.Decide(txn)
	require.NoError(t, err)

	assert.True(t, decision.BalanceChanges["cash-hand"].Equal(dec(-1000)))
	change := decision.DenominationChanges["cash-hand"]
	assert.True(t, change.Add.IsEmpty())
	assert.Equal(t, domain.Denominations{500: 2}, change.Subtract)
}

func TestDecide_ExpenseCash(t *testing.T) {
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:                 domain.Expense,
		PaymentMode:          domain.ModeCash,
		Amount:               dec(250),
		TotalAmount:          dec(250),
		OutwardAccountID:     strPtr("cash-hand"),
		OutwardDenominations: domain.Denominations{200: 1, 50: 1},
	}

	decision, err := posting.Decide(txn)
	require.NoError(t, err)

	assert.True(t, decision.BalanceChanges["cash-hand"].Equal(dec(-250)))
	assert.Equal(t, domain.Denominations{200: 1, 50: 1}, decision.DenominationChanges["cash-hand"].Subtract)
}

func TestDecide_CashMismatchRejected(t *testing.T) {
	// Net 550 against an expected 600 is outside the tolerance of 1.
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:                 domain.ServiceIncome,
		PaymentMode:          domain.ModeCash,
		Amount:               dec(500),
		TotalAmount:          dec(600),
		InwardAccountID:      strPtr("acc-x"),
		InwardDenominations:  domain.Denominations{500: 1, 100: 1},
		OutwardDenominations: domain.Denominations{50: 1},
	}

	_, err := posting.Decide(txn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCashMismatch))

	var mismatch *apperrors.CashMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, mismatch.Net.Equal(dec(550)))
	assert.True(t, mismatch.Expected.Equal(dec(600)))
	// The operator-facing message must name both figures.
	assert.Contains(t, err.Error(), "550")
	assert.Contains(t, err.Error(), "600")
}

func TestDecide_CashToleranceBoundary(t *testing.T) {
	posting := services.NewPostingService()

	base := domain.Transaction{
		Type:            domain.Deposit,
		PaymentMode:     domain.ModeCash,
		InwardAccountID: strPtr("cash-hand"),
	}

	// Off by exactly 1: accepted.
	txn := base
	txn.Amount = dec(501)
	txn.TotalAmount = dec(501)
	txn.InwardDenominations = domain.Denominations{500: 1}
	_, err := posting.Decide(txn)
	assert.NoError(t, err)

	// Off by 2: rejected.
	txn.Amount = dec(502)
	txn.TotalAmount = dec(502)
	_, err = posting.Decide(txn)
	assert.True(t, errors.Is(err, apperrors.ErrCashMismatch))
}

func TestDecide_CashCheckSkippedWithoutNotes(t *testing.T) {
	// A cash transaction recorded without note tracking posts the balance
	// move but no inventory change, and is never blocked by reconciliation.
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:            domain.Deposit,
		PaymentMode:     domain.ModeCash,
		Amount:          dec(500),
		TotalAmount:     dec(500),
		InwardAccountID: strPtr("cash-hand"),
	}

	decision, err := posting.Decide(txn)
	require.NoError(t, err)
	assert.True(t, decision.BalanceChanges["cash-hand"].Equal(dec(500)))
	assert.Empty(t, decision.DenominationChanges)
}

func TestDecide_MissingRequiredAccount(t *testing.T) {
	posting := services.NewPostingService()

	cases := []struct {
		name string
		txn  domain.Transaction
	}{
		{"service income without inward", domain.Transaction{
			Type: domain.ServiceIncome, PaymentMode: domain.ModeCash,
			Amount: dec(100), TotalAmount: dec(100),
		}},
		{"deposit without inward", domain.Transaction{
			Type: domain.Deposit, PaymentMode: domain.ModeOnline,
			Amount: dec(100), TotalAmount: dec(100),
		}},
		{"withdraw without outward", domain.Transaction{
			Type: domain.Withdraw, PaymentMode: domain.ModeCash,
			Amount: dec(100), TotalAmount: dec(100),
		}},
		{"expense without outward", domain.Transaction{
			Type: domain.Expense, PaymentMode: domain.ModeOnline,
			Amount: dec(100), TotalAmount: dec(100),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := posting.Decide(tc.txn)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestDecide_UnknownCombinationRejected(t *testing.T) {
	posting := services.NewPostingService()

	_, err := posting.Decide(domain.Transaction{
		Type:        domain.TransactionType("refund"),
		PaymentMode: domain.ModeCash,
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestDecide_EveryKnownCombinationHasARule(t *testing.T) {
	posting := services.NewPostingService()
	inward := strPtr("in")
	outward := strPtr("out")

	for _, txnType := range []domain.TransactionType{
		domain.ServiceIncome, domain.Deposit, domain.Withdraw, domain.Expense,
	} {
		for _, mode := range []domain.PaymentMode{domain.ModeCash, domain.ModeOnline} {
			txn := domain.Transaction{
				Type:             txnType,
				PaymentMode:      mode,
				Amount:           dec(100),
				TotalAmount:      dec(100),
				InwardAccountID:  inward,
				OutwardAccountID: outward,
			}
			_, err := posting.Decide(txn)
			assert.NoError(t, err, "no rule for %s/%s", txnType, mode)
		}
	}
}

func TestDecide_OptionalOutwardLegApplied(t *testing.T) {
	// Service income in cash with an outward account set also debits it.
	posting := services.NewPostingService()

	txn := domain.Transaction{
		Type:                domain.ServiceIncome,
		PaymentMode:         domain.ModeCash,
		Amount:              dec(500),
		TotalAmount:         dec(600),
		InwardAccountID:     strPtr("acc-in"),
		OutwardAccountID:    strPtr("acc-out"),
		InwardDenominations: domain.Denominations{500: 1, 100: 1},
	}

	decision, err := posting.Decide(txn)
	require.NoError(t, err)
	assert.True(t, decision.BalanceChanges["acc-in"].Equal(dec(-500)))
	assert.True(t, decision.BalanceChanges["acc-out"].Equal(dec(-500)))
}
