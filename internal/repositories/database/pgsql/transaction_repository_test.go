package pgsql

import (
	"testing"
	"time"

	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransactionFilter_EmptyYieldsNoClause(t *testing.T) {
	where, args := buildTransactionFilter(domain.TransactionFilter{})
	assert.Empty(t, where, "an unfiltered query must be recognizable by its empty clause")
	assert.Empty(t, args)
}

func TestBuildTransactionFilter_EndDateInclusive(t *testing.T) {
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	where, args := buildTransactionFilter(domain.TransactionFilter{EndDate: &end})

	assert.Equal(t, "WHERE occurred_at < $1", where)
	require.Len(t, args, 1)
	assert.Equal(t, end.Add(24*time.Hour), args[0], "the whole end day is included")
}

func TestBuildTransactionFilter_AccountScopesToVisibleRows(t *testing.T) {
	where, args := buildTransactionFilter(domain.TransactionFilter{AccountID: "acc-1"})

	assert.Equal(t,
		"WHERE (inward_account_id = $1 OR outward_account_id = $1) AND is_hidden_from_account = FALSE",
		where)
	assert.Equal(t, []any{"acc-1"}, args)
}

func TestBuildTransactionFilter_ConjunctiveOrdering(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	where, args := buildTransactionFilter(domain.TransactionFilter{
		StartDate:   &start,
		Type:        domain.Expense,
		PaymentMode: domain.ModeCash,
		SearchText:  "recharge",
	})

	assert.Equal(t,
		"WHERE occurred_at >= $1 AND type = $2 AND payment_mode = $3"+
			" AND (client_name ILIKE $4 OR description ILIKE $4)",
		where)
	require.Len(t, args, 4)
	assert.Equal(t, "%recharge%", args[3])
}
