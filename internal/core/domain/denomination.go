package domain

// Denominations maps a currency note's face value to the number of such notes.
// It is persisted as a JSONB object keyed by the note value's string form;
// encoding/json handles the integer-key round trip.
type Denominations map[int64]int64

// NoteValues is the fixed set of note face values the shop handles, ascending.
var NoteValues = []int64{1, 2, 5, 10, 20, 50, 100, 200, 500, 2000}

// Clone returns a copy of d. A nil map clones to an empty, non-nil map so
// callers can mutate the result safely.
func (d Denominations) Clone() Denominations {
	out := make(Denominations, len(d))
	for note, count := range d {
		out[note] = count
	}
	return out
}

// IsEmpty reports whether d carries no notes at all.
func (d Denominations) IsEmpty() bool {
	for _, count := range d {
		if count != 0 {
			return false
		}
	}
	return true
}

// DenominationChange describes the physical notes a posting moves through one
// account's inventory: Add is what the shop received, Subtract what it handed
// out. The same orientation applies to every transaction type.
type DenominationChange struct {
	Add      Denominations
	Subtract Denominations
}

// IsZero reports whether the change would leave an inventory untouched.
func (c DenominationChange) IsZero() bool {
	return c.Add.IsEmpty() && c.Subtract.IsEmpty()
}
