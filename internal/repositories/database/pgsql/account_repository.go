package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/models"
	"github.com/shopbook/shopbook_backend/internal/utils/mapping"
)

const accountColumns = `account_id, name, holder_name, kind, balance, initial_balance,
	low_balance_threshold, denominations, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxAccountRepository implements ports.AccountRepository using pgx.
type PgxAccountRepository struct {
	BaseRepository
}

// NewPgxAccountRepository creates a new account repository.
func NewPgxAccountRepository(pool *pgxpool.Pool) ports.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Name, m.HolderName, m.Kind, m.Balance, m.InitialBalance,
		m.LowBalanceThreshold, m.Denominations, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account %q: %w", account.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	account, err := mapping.ToDomainAccount(m)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE is_active = TRUE ORDER BY name`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		account, err := mapping.ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, holder_name = $3, kind = $4, balance = $5, initial_balance = $6,
			low_balance_threshold = $7, denominations = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE account_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Name, m.HolderName, m.Kind, m.Balance, m.InitialBalance,
		m.LowBalanceThreshold, m.Denominations,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account %q: %w", account.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1 AND is_active = TRUE`
	tag, err := r.Pool.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already inactive; disambiguate for the caller.
		if _, err := r.FindAccountByID(ctx, accountID); err != nil {
			return err
		}
		return fmt.Errorf("account %s already inactive: %w", accountID, apperrors.ErrValidation)
	}
	return nil
}

// scanAccount reads one accounts row in accountColumns order.
func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID, &m.Name, &m.HolderName, &m.Kind, &m.Balance, &m.InitialBalance,
		&m.LowBalanceThreshold, &m.Denominations, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
