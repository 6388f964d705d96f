package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) ports.RepositoryProvider {
	return ports.RepositoryProvider{
		Account:     NewPgxAccountRepository(pool),
		Transaction: NewPgxTransactionRepository(pool),
		Service:     NewPgxServiceRepository(pool),
		User:        NewPgxUserRepository(pool),
		Reporting:   NewPgxReportingRepository(pool),
	}
}
