package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/models"
	"github.com/shopbook/shopbook_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository implements ports.ReportingRepository with read-only
// aggregation queries over the transactions table.
type PgxReportingRepository struct {
	BaseRepository
}

// NewPgxReportingRepository creates a new reporting repository.
func NewPgxReportingRepository(pool *pgxpool.Pool) ports.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// dayBounds returns the half-open [midnight, next midnight) window containing
// day, in day's location.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *PgxReportingRepository) SumAmountForTypeOnDay(ctx context.Context, txnType domain.TransactionType, day time.Time) (decimal.Decimal, error) {
	start, end := dayBounds(day)
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = $1 AND occurred_at >= $2 AND occurred_at < $3`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, string(txnType), start, end).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s amounts: %w", txnType, err)
	}
	return sum, nil
}

func (r *PgxReportingRepository) SumProfitOnDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	start, end := dayBounds(day)
	query := `
		SELECT COALESCE(SUM(profit), 0)
		FROM transactions
		WHERE type = $1 AND occurred_at >= $2 AND occurred_at < $3`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, string(domain.ServiceIncome), start, end).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum profit: %w", err)
	}
	return sum, nil
}

func (r *PgxReportingRepository) CountDistinctClientsOnDay(ctx context.Context, day time.Time) (int64, error) {
	start, end := dayBounds(day)
	query := `
		SELECT COUNT(DISTINCT client_name)
		FROM transactions
		WHERE client_name <> '' AND occurred_at >= $1 AND occurred_at < $2`

	var count int64
	if err := r.Pool.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountPending(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE status = $1`

	var count int64
	if err := r.Pool.QueryRow(ctx, query, string(domain.StatusPending)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending transactions: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) PendingBreakdown(ctx context.Context) ([]domain.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*)
		FROM transactions
		WHERE status = $1
		GROUP BY category
		ORDER BY COUNT(*) DESC, category`

	rows, err := r.Pool.Query(ctx, query, string(domain.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan pending breakdown: %w", err)
		}
		breakdown = append(breakdown, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending breakdown: %w", err)
	}
	return breakdown, nil
}

func (r *PgxReportingRepository) DailyIncomeSince(ctx context.Context, since time.Time) ([]domain.DailyIncome, error) {
	query := `
		SELECT date_trunc('day', occurred_at) AS day, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = $1 AND occurred_at >= $2
		GROUP BY day
		ORDER BY day`

	rows, err := r.Pool.Query(ctx, query, string(domain.ServiceIncome), since)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily income: %w", err)
	}
	defer rows.Close()

	series := make([]domain.DailyIncome, 0)
	for rows.Next() {
		var di domain.DailyIncome
		if err := rows.Scan(&di.Date, &di.Income); err != nil {
			return nil, fmt.Errorf("failed to scan daily income: %w", err)
		}
		series = append(series, di)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily income: %w", err)
	}
	return series, nil
}

func (r *PgxReportingRepository) DenominationFlowsOnDay(ctx context.Context, day time.Time) ([]domain.DenominationFlow, error) {
	start, end := dayBounds(day)
	query := `
		SELECT inward_denominations, outward_denominations
		FROM transactions
		WHERE payment_mode = $1 AND occurred_at >= $2 AND occurred_at < $3`

	rows, err := r.Pool.Query(ctx, query, string(domain.ModeCash), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query denomination flows: %w", err)
	}
	defer rows.Close()

	flows := make([]domain.DenominationFlow, 0)
	for rows.Next() {
		var inward, outward models.DenominationMap
		if err := rows.Scan(&inward, &outward); err != nil {
			return nil, fmt.Errorf("failed to scan denomination flow: %w", err)
		}
		in, err := mapping.ToDomainDenominations(inward)
		if err != nil {
			return nil, err
		}
		out, err := mapping.ToDomainDenominations(outward)
		if err != nil {
			return nil, err
		}
		flows = append(flows, domain.DenominationFlow{Inward: in, Outward: out})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate denomination flows: %w", err)
	}
	return flows, nil
}
