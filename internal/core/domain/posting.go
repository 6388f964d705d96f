package domain

import "github.com/shopspring/decimal"

// PostingDecision is the posting engine's verdict for one transaction: the
// signed balance deltas and physical note movements to apply, all within the
// same atomic unit as the transaction insert. No other code path mutates
// account balances.
type PostingDecision struct {
	BalanceChanges      map[string]decimal.Decimal    // accountID -> signed delta
	DenominationChanges map[string]DenominationChange // accountID -> note movements
}

// AccountIDs returns every account the decision touches.
func (d PostingDecision) AccountIDs() []string {
	seen := make(map[string]struct{}, len(d.BalanceChanges))
	ids := make([]string, 0, len(d.BalanceChanges))
	for id := range d.BalanceChanges {
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for id := range d.DenominationChanges {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// IsEmpty reports whether the decision moves no money at all.
func (d PostingDecision) IsEmpty() bool {
	for _, delta := range d.BalanceChanges {
		if !delta.IsZero() {
			return false
		}
	}
	for _, change := range d.DenominationChanges {
		if !change.IsZero() {
			return false
		}
	}
	return true
}
