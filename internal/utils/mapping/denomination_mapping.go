package mapping

import (
	"fmt"
	"strconv"

	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/models"
)

// ToDomainDenominations converts the stored string-keyed JSONB shape into the
// domain map. Unparseable keys are a validation error; the column is written
// only through this package, so in practice this guards hand-edited rows.
func ToDomainDenominations(m models.DenominationMap) (domain.Denominations, error) {
	out := make(domain.Denominations, len(m))
	for key, count := range m {
		note, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: denomination key %q is not a note value", apperrors.ErrValidation, key)
		}
		out[note] = count
	}
	return out, nil
}

// ToModelDenominations converts a domain map to the string-keyed storage shape.
func ToModelDenominations(d domain.Denominations) models.DenominationMap {
	out := make(models.DenominationMap, len(d))
	for note, count := range d {
		out[strconv.FormatInt(note, 10)] = count
	}
	return out
}
