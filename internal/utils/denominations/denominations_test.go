package denominations_test

import (
	"testing"

	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/utils/denominations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalValue(t *testing.T) {
	total, err := denominations.TotalValue(domain.Denominations{500: 2, 100: 3})
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(1300)), "expected 1300, got %s", total)
}

func TestTotalValue_Empty(t *testing.T) {
	total, err := denominations.TotalValue(nil)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestTotalValue_NegativeCountRejected(t *testing.T) {
	_, err := denominations.TotalValue(domain.Denominations{100: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTotalValue_InvalidNoteRejected(t *testing.T) {
	_, err := denominations.TotalValue(domain.Denominations{0: 5})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApplyDelta_Add(t *testing.T) {
	inv := domain.Denominations{500: 1}
	out, warnings, err := denominations.ApplyDelta(inv, domain.Denominations{500: 1, 100: 2}, denominations.Add)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.Denominations{500: 2, 100: 2}, out)
	// input untouched
	assert.Equal(t, domain.Denominations{500: 1}, inv)
}

func TestApplyDelta_Subtract(t *testing.T) {
	out, warnings, err := denominations.ApplyDelta(domain.Denominations{500: 3}, domain.Denominations{500: 2}, denominations.Subtract)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.Denominations{500: 1}, out)
}

func TestApplyDelta_SubtractClampsAndWarns(t *testing.T) {
	out, warnings, err := denominations.ApplyDelta(domain.Denominations{100: 1}, domain.Denominations{100: 3, 50: 1}, denominations.Subtract)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, int64(50), warnings[0].Note)
	assert.Equal(t, int64(100), warnings[1].Note)
	assert.Equal(t, int64(0), out[100])
	assert.Equal(t, int64(0), out[50])
}

func TestApplyDelta_NegativeDeltaRejected(t *testing.T) {
	_, _, err := denominations.ApplyDelta(domain.Denominations{}, domain.Denominations{100: -2}, denominations.Add)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNet(t *testing.T) {
	net, err := denominations.Net(domain.Denominations{500: 2}, domain.Denominations{200: 2})
	require.NoError(t, err)
	assert.True(t, net.Equal(decimal.NewFromInt(600)), "expected 600, got %s", net)
}

func TestMerge(t *testing.T) {
	dst := domain.Denominations{100: 1}
	denominations.Merge(dst, domain.Denominations{100: 2, 500: 1})
	assert.Equal(t, domain.Denominations{100: 3, 500: 1}, dst)
}
