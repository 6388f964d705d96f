package ports

import (
	"context"
	"time"

	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for fund accounts.
// Balance/denomination mutation during posting does NOT go through this
// interface; it happens inside TransactionRepository.SaveTransaction so the
// whole posting is one database transaction.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// TransactionRepository persists transactions and applies posting decisions.
type TransactionRepository interface {
	// SaveTransaction inserts the transaction row and applies the posting
	// decision's balance and denomination deltas atomically. Rows for every
	// touched account are locked for the duration; serialization failures are
	// retried a bounded number of times before surfacing ErrConflict.
	SaveTransaction(ctx context.Context, txn domain.Transaction, decision domain.PostingDecision) error

	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, userID string, now time.Time) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int) ([]domain.Transaction, error)
	DeleteTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error)
	HideTransactionsForAccount(ctx context.Context, accountID string) (int64, error)
}

// ServiceRepository persists the service catalog.
type ServiceRepository interface {
	SaveService(ctx context.Context, service domain.Service) error
	ListServices(ctx context.Context) ([]domain.Service, error)
	DeleteService(ctx context.Context, serviceID string) error
}

// UserRepository persists operator accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUserProfile(ctx context.Context, userID, username, fullName string, now time.Time) error
	UpdateUserPassword(ctx context.Context, userID, passwordHash string, now time.Time) error
	DeleteUser(ctx context.Context, userID string) error
}

// RepositoryProvider bundles all repositories for service construction.
type RepositoryProvider struct {
	Account     AccountRepository
	Transaction TransactionRepository
	Service     ServiceRepository
	User        UserRepository
	Reporting   ReportingRepository
}

// ReportingRepository serves the read-only dashboard projections. Reads are
// not transactionally isolated from concurrent postings.
type ReportingRepository interface {
	SumAmountForTypeOnDay(ctx context.Context, txnType domain.TransactionType, day time.Time) (decimal.Decimal, error)
	SumProfitOnDay(ctx context.Context, day time.Time) (decimal.Decimal, error)
	CountDistinctClientsOnDay(ctx context.Context, day time.Time) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	PendingBreakdown(ctx context.Context) ([]domain.CategoryCount, error)
	DailyIncomeSince(ctx context.Context, since time.Time) ([]domain.DailyIncome, error)
	DenominationFlowsOnDay(ctx context.Context, day time.Time) ([]domain.DenominationFlow, error)
}
