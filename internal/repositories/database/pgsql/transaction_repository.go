package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/models"
	"github.com/shopbook/shopbook_backend/internal/utils/denominations"
	"github.com/shopbook/shopbook_backend/internal/utils/mapping"
)

// maxPostingAttempts bounds retries of the posting transaction when it loses
// a serialization or deadlock conflict.
const maxPostingAttempts = 3

const transactionColumns = `transaction_id, type, payment_mode, category, description,
	client_name, client_phone,
	amount, cost_price, selling_price, profit, service_charges, total_amount,
	status, is_urgent, inward_account_id, outward_account_id,
	inward_denominations, outward_denominations, is_hidden_from_account,
	occurred_at, created_at, created_by, last_updated_at, last_updated_by`

// PgxTransactionRepository implements ports.TransactionRepository using pgx.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new transaction repository.
func NewPgxTransactionRepository(pool *pgxpool.Pool) ports.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveTransaction inserts the transaction and applies the posting decision in
// one database transaction. Account rows are locked up front so concurrent
// postings against the same accounts serialize; a lost conflict is retried a
// bounded number of times before surfacing ErrConflict.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, decision domain.PostingDecision) error {
	for attempt := 1; ; attempt++ {
		err := r.saveTransactionOnce(ctx, txn, decision)
		if err == nil {
			return nil
		}
		if !isRetryableTxError(err) {
			return err
		}
		if attempt >= maxPostingAttempts {
			return fmt.Errorf("posting for transaction %s lost %d concurrency conflicts: %w",
				txn.TransactionID, attempt, apperrors.ErrConflict)
		}
		slog.WarnContext(ctx, "retrying posting after concurrency conflict",
			"transactionID", txn.TransactionID, "attempt", attempt, "error", err)
	}
}

func (r *PgxTransactionRepository) saveTransactionOnce(ctx context.Context, txn domain.Transaction, decision domain.PostingDecision) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	m := mapping.ToModelTransaction(txn)
	insert := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
	_, err = tx.Exec(ctx, insert,
		m.TransactionID, m.Type, m.PaymentMode, m.Category, m.Description,
		m.ClientName, m.ClientPhone,
		m.Amount, m.CostPrice, m.SellingPrice, m.Profit, m.ServiceCharges, m.TotalAmount,
		m.Status, m.IsUrgent, m.InwardAccountID, m.OutwardAccountID,
		m.InwardDenominations, m.OutwardDenominations, m.IsHiddenFromAccount,
		m.OccurredAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := r.applyDecision(ctx, tx, txn, decision); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// applyDecision locks every touched account and writes its new balance and
// note inventory inside tx.
func (r *PgxTransactionRepository) applyDecision(ctx context.Context, tx pgx.Tx, txn domain.Transaction, decision domain.PostingDecision) error {
	ids := decision.AccountIDs()
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)

	locked, err := lockAccounts(ctx, tx, ids)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, id := range ids {
		m, ok := locked[id]
		if !ok {
			return fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
		}

		newBalance := m.Balance.Add(decision.BalanceChanges[id])
		newDenoms := m.Denominations

		if change, ok := decision.DenominationChanges[id]; ok && !change.IsZero() {
			current, err := mapping.ToDomainDenominations(m.Denominations)
			if err != nil {
				return fmt.Errorf("account %s has corrupt denominations: %w", id, err)
			}
			afterAdd, _, err := denominations.ApplyDelta(current, change.Add, denominations.Add)
			if err != nil {
				return err
			}
			after, warnings, err := denominations.ApplyDelta(afterAdd, change.Subtract, denominations.Subtract)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				slog.WarnContext(ctx, "note inventory shortfall, count clamped to zero",
					"transactionID", txn.TransactionID, "accountID", id, "shortfall", w.String())
			}
			if domain.AccountKind(m.Kind).IsCash() {
				if total, terr := denominations.TotalValue(after); terr == nil && !total.Equal(newBalance) {
					slog.WarnContext(ctx, "cash balance and note inventory diverge",
						"accountID", id, "balance", newBalance.String(), "inventoryValue", total.String())
				}
			}
			newDenoms = mapping.ToModelDenominations(after)
		}

		batch.Queue(`
			UPDATE accounts
			SET balance = $2, denominations = $3, last_updated_at = $4, last_updated_by = $5
			WHERE account_id = $1`,
			id, newBalance, newDenoms, txn.LastUpdatedAt, txn.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range ids {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to update account during posting: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close posting batch: %w", err)
	}
	return nil
}

// lockAccounts reads the touched accounts FOR UPDATE in a fixed order so
// concurrent postings cannot deadlock on lock acquisition order.
func lockAccounts(ctx context.Context, tx pgx.Tx, ids []string) (map[string]models.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	locked := make(map[string]models.Account, len(ids))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account: %w", err)
		}
		locked[m.AccountID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locked accounts: %w", err)
	}
	return locked, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	txn, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, userID string, now time.Time) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1
		RETURNING ` + transactionColumns

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, string(status), now, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	txn, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int) ([]domain.Transaction, error) {
	where, args := buildTransactionFilter(filter)
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT %s FROM transactions %s ORDER BY occurred_at DESC, created_at DESC LIMIT $%d`,
		transactionColumns, where, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	ms := make([]models.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms)
}

// DeleteTransactions removes the matching history rows. Posted balance and
// inventory effects are deliberately left in place.
func (r *PgxTransactionRepository) DeleteTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	where, args := buildTransactionFilter(filter)
	if where == "" {
		// Nothing narrows the DELETE; this wipes the whole history table.
		slog.WarnContext(ctx, "Deleting all transactions: no filters supplied")
	}
	query := `DELETE FROM transactions ` + where

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxTransactionRepository) HideTransactionsForAccount(ctx context.Context, accountID string) (int64, error) {
	query := `
		UPDATE transactions
		SET is_hidden_from_account = TRUE
		WHERE (inward_account_id = $1 OR outward_account_id = $1)
			AND is_hidden_from_account = FALSE`

	tag, err := r.Pool.Exec(ctx, query, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to hide account history: %w", err)
	}
	return tag.RowsAffected(), nil
}

// buildTransactionFilter renders the conjunctive WHERE clause for listing
// and bulk deletion. An empty filter yields an empty clause.
func buildTransactionFilter(filter domain.TransactionFilter) (string, []any) {
	conditions := make([]string, 0, 6)
	args := make([]any, 0, 8)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.StartDate != nil {
		add("occurred_at >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		// End date is inclusive at day granularity.
		add("occurred_at < $%d", filter.EndDate.Add(24*time.Hour))
	}
	if filter.Type != "" {
		add("type = $%d", string(filter.Type))
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.PaymentMode != "" {
		add("payment_mode = $%d", string(filter.PaymentMode))
	}
	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		conditions = append(conditions,
			fmt.Sprintf("(inward_account_id = $%d OR outward_account_id = $%d)", len(args), len(args)))
		conditions = append(conditions, "is_hidden_from_account = FALSE")
	}
	if filter.SearchText != "" {
		args = append(args, "%"+filter.SearchText+"%")
		conditions = append(conditions,
			fmt.Sprintf("(client_name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// scanTransaction reads one transactions row in transactionColumns order.
func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.Type, &m.PaymentMode, &m.Category, &m.Description,
		&m.ClientName, &m.ClientPhone,
		&m.Amount, &m.CostPrice, &m.SellingPrice, &m.Profit, &m.ServiceCharges, &m.TotalAmount,
		&m.Status, &m.IsUrgent, &m.InwardAccountID, &m.OutwardAccountID,
		&m.InwardDenominations, &m.OutwardDenominations, &m.IsHiddenFromAccount,
		&m.OccurredAt, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
