package services

import (
	"fmt"

	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/utils/denominations"
	"github.com/shopspring/decimal"
)

// cashTolerance absorbs rounding in operator-entered figures when reconciling
// physical notes against the expected amount.
var cashTolerance = decimal.NewFromInt(1)

type postingKey struct {
	Type domain.TransactionType
	Mode domain.PaymentMode
}

// expectedFigure selects which transaction field the net cash must match.
type expectedFigure int

const (
	expectAmount expectedFigure = iota
	expectTotal
)

// netOrientation selects which way the physical notes are supposed to flow.
type netOrientation int

const (
	receivedMinusReturned netOrientation = iota
	returnedMinusReceived
)

type cashCheck struct {
	expected    expectedFigure
	orientation netOrientation
}

// balanceRule computes the signed balance delta for one account leg from the
// transaction's base amount and total payable.
type balanceRule func(amount, total decimal.Decimal) decimal.Decimal

func plusAmount(amount, _ decimal.Decimal) decimal.Decimal  { return amount }
func minusAmount(amount, _ decimal.Decimal) decimal.Decimal { return amount.Neg() }
func plusTotal(_, total decimal.Decimal) decimal.Decimal    { return total }
func minusTotal(_, total decimal.Decimal) decimal.Decimal   { return total.Neg() }

// denomLeg names the account whose note inventory a cash posting moves.
type denomLeg int

const (
	denomNone denomLeg = iota
	denomInward
	denomOutward
)

// postingRule is one row of the decision table: which legs are mandatory,
// how the cash math must reconcile, and the per-leg deltas. A nil balanceRule
// leaves that leg untouched; optional legs apply only when an account is set.
type postingRule struct {
	requireInward  bool
	requireOutward bool
	cash           *cashCheck
	inward         balanceRule
	outward        balanceRule
	denoms         denomLeg
}

// postingRules is the full (type, payment mode) decision table. The
// service-income asymmetry is deliberate: in cash mode the shop pays the
// provider the base amount out of the inward (bank) account and pockets the
// customer's notes, so the inward leg is debited rather than credited.
var postingRules = map[postingKey]postingRule{
	{domain.ServiceIncome, domain.ModeCash}: {
		requireInward: true,
		cash:          &cashCheck{expected: expectTotal, orientation: receivedMinusReturned},
		inward:        minusAmount,
		outward:       minusAmount,
		denoms:        denomInward,
	},
	{domain.ServiceIncome, domain.ModeOnline}: {
		requireInward: true,
		inward:        plusTotal,
		outward:       minusAmount,
	},
	{domain.Deposit, domain.ModeCash}: {
		requireInward: true,
		cash:          &cashCheck{expected: expectAmount, orientation: receivedMinusReturned},
		inward:        plusAmount,
		outward:       minusAmount,
		denoms:        denomInward,
	},
	{domain.Deposit, domain.ModeOnline}: {
		requireInward: true,
		inward:        plusTotal,
		outward:       minusTotal,
	},
	{domain.Withdraw, domain.ModeCash}: {
		requireOutward: true,
		cash:           &cashCheck{expected: expectAmount, orientation: returnedMinusReceived},
		inward:         plusAmount,
		outward:        minusAmount,
		denoms:         denomOutward,
	},
	{domain.Withdraw, domain.ModeOnline}: {
		requireOutward: true,
		inward:         plusTotal,
		outward:        minusTotal,
	},
	{domain.Expense, domain.ModeCash}: {
		requireOutward: true,
		outward:        minusTotal,
		denoms:         denomOutward,
	},
	{domain.Expense, domain.ModeOnline}: {
		requireOutward: true,
		outward:        minusTotal,
	},
}

// postingService implements the posting decision table. It is stateless.
type postingService struct{}

// NewPostingService creates the posting engine.
func NewPostingService() ports.PostingService {
	return &postingService{}
}

var _ ports.PostingService = (*postingService)(nil)

// Decide validates the transaction against the decision table and, on
// success, returns the balance and denomination deltas to apply. It never
// touches storage; the caller applies the decision atomically with the insert.
func (s *postingService) Decide(txn domain.Transaction) (domain.PostingDecision, error) {
	rule, ok := postingRules[postingKey{Type: txn.Type, Mode: txn.PaymentMode}]
	if !ok {
		return domain.PostingDecision{}, fmt.Errorf("%w: no posting rule for type %q with payment mode %q",
			apperrors.ErrValidation, txn.Type, txn.PaymentMode)
	}

	if rule.requireInward && !accountSet(txn.InwardAccountID) {
		return domain.PostingDecision{}, fmt.Errorf("%w: transaction type %q requires an inward account",
			apperrors.ErrValidation, txn.Type)
	}
	if rule.requireOutward && !accountSet(txn.OutwardAccountID) {
		return domain.PostingDecision{}, fmt.Errorf("%w: transaction type %q requires an outward account",
			apperrors.ErrValidation, txn.Type)
	}

	if rule.cash != nil {
		if err := validateCash(txn, *rule.cash); err != nil {
			return domain.PostingDecision{}, err
		}
	}

	decision := domain.PostingDecision{
		BalanceChanges:      make(map[string]decimal.Decimal),
		DenominationChanges: make(map[string]domain.DenominationChange),
	}

	if rule.inward != nil && accountSet(txn.InwardAccountID) {
		addBalanceChange(decision.BalanceChanges, *txn.InwardAccountID, rule.inward(txn.Amount, txn.TotalAmount))
	}
	if rule.outward != nil && accountSet(txn.OutwardAccountID) {
		addBalanceChange(decision.BalanceChanges, *txn.OutwardAccountID, rule.outward(txn.Amount, txn.TotalAmount))
	}

	change := domain.DenominationChange{
		Add:      txn.InwardDenominations.Clone(),
		Subtract: txn.OutwardDenominations.Clone(),
	}
	if !change.IsZero() {
		switch rule.denoms {
		case denomInward:
			if accountSet(txn.InwardAccountID) {
				decision.DenominationChanges[*txn.InwardAccountID] = change
			}
		case denomOutward:
			if accountSet(txn.OutwardAccountID) {
				decision.DenominationChanges[*txn.OutwardAccountID] = change
			}
		}
	}

	return decision, nil
}

// validateCash checks that the physical notes reconcile to the expected
// figure within tolerance. The check is skipped when the primary map for the
// flow direction is empty, so transactions recorded without note tracking are
// never blocked.
func validateCash(txn domain.Transaction, check cashCheck) error {
	primary := txn.InwardDenominations
	if check.orientation == returnedMinusReceived {
		primary = txn.OutwardDenominations
	}
	if primary.IsEmpty() {
		return nil
	}

	received, err := denominations.TotalValue(txn.InwardDenominations)
	if err != nil {
		return err
	}
	returned, err := denominations.TotalValue(txn.OutwardDenominations)
	if err != nil {
		return err
	}

	net := received.Sub(returned)
	if check.orientation == returnedMinusReceived {
		net = returned.Sub(received)
	}

	expected := txn.Amount
	if check.expected == expectTotal {
		expected = txn.TotalAmount
	}

	if net.Sub(expected).Abs().GreaterThan(cashTolerance) {
		return &apperrors.CashMismatchError{
			Received: received,
			Returned: returned,
			Net:      net,
			Expected: expected,
		}
	}
	return nil
}

func addBalanceChange(changes map[string]decimal.Decimal, accountID string, delta decimal.Decimal) {
	if delta.IsZero() {
		return
	}
	changes[accountID] = changes[accountID].Add(delta)
}

func accountSet(id *string) bool {
	return id != nil && *id != ""
}
