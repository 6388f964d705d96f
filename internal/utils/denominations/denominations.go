package denominations

import (
	"fmt"
	"sort"

	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Direction selects whether a delta adds notes to an inventory or removes them.
type Direction int

const (
	Add Direction = iota
	Subtract
)

// ShortfallWarning reports a subtraction that would have driven a note count
// negative. The physical inventory tracking is advisory, so the count is
// clamped to zero and the shortfall surfaced for reconciliation instead of
// failing the posting.
type ShortfallWarning struct {
	Note      int64
	Requested int64
	Available int64
}

func (w ShortfallWarning) String() string {
	return fmt.Sprintf("note %d: tried to remove %d, only %d in inventory", w.Note, w.Requested, w.Available)
}

// TotalValue sums face value x count over the map. Missing keys count as zero;
// a negative count or non-positive note value is a validation error, never
// silently clamped.
func TotalValue(d domain.Denominations) (decimal.Decimal, error) {
	total := decimal.Zero
	for note, count := range d {
		if note <= 0 {
			return decimal.Zero, fmt.Errorf("%w: invalid note value %d", apperrors.ErrValidation, note)
		}
		if count < 0 {
			return decimal.Zero, fmt.Errorf("%w: negative count %d for note %d", apperrors.ErrValidation, count, note)
		}
		total = total.Add(decimal.NewFromInt(note).Mul(decimal.NewFromInt(count)))
	}
	return total, nil
}

// ApplyDelta returns a new inventory with delta applied in the given
// direction. Subtractions clamp each count at zero and report a
// ShortfallWarning per clamped note. The input maps are not mutated.
func ApplyDelta(inventory, delta domain.Denominations, dir Direction) (domain.Denominations, []ShortfallWarning, error) {
	if _, err := TotalValue(delta); err != nil {
		return nil, nil, err
	}

	out := inventory.Clone()
	var warnings []ShortfallWarning

	// Deterministic order keeps warning output stable.
	notes := make([]int64, 0, len(delta))
	for note := range delta {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })

	for _, note := range notes {
		count := delta[note]
		if count == 0 {
			continue
		}
		switch dir {
		case Add:
			out[note] += count
		case Subtract:
			available := out[note]
			if count > available {
				warnings = append(warnings, ShortfallWarning{Note: note, Requested: count, Available: available})
				out[note] = 0
			} else {
				out[note] = available - count
			}
		default:
			return nil, nil, fmt.Errorf("%w: unknown direction %d", apperrors.ErrValidation, dir)
		}
	}
	return out, warnings, nil
}

// Net returns received minus returned as a currency value.
func Net(received, returned domain.Denominations) (decimal.Decimal, error) {
	in, err := TotalValue(received)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := TotalValue(returned)
	if err != nil {
		return decimal.Zero, err
	}
	return in.Sub(out), nil
}

// Merge accumulates src's counts into dst in place. Used by the dashboard to
// roll up per-transaction denomination maps.
func Merge(dst, src domain.Denominations) {
	for note, count := range src {
		dst[note] += count
	}
}
