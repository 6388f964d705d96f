package ports

import (
	"context"
	"time"

	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/dto"
)

// AccountService manages fund accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error)
	SetDenominations(ctx context.Context, accountID string, denoms domain.Denominations, actorID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, actorID string) error
}

// PostingService is the posting decision table: given a validated transaction
// it returns the balance/denomination deltas to apply, or a
// validation/cash-mismatch error. It is pure; it never touches storage.
type PostingService interface {
	Decide(txn domain.Transaction) (domain.PostingDecision, error)
}

// TransactionService records transactions (deriving profit, total and status),
// posts them atomically, and serves the query/maintenance operations.
type TransactionService interface {
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, actorID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	SetStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	BulkDelete(ctx context.Context, filter domain.TransactionFilter) (int64, error)
	HideAccountHistory(ctx context.Context, accountID string) (int64, error)
}

// ReportingService computes the dashboard rollup. Pure projection, recomputed
// on every call.
type ReportingService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

// CatalogService manages the service catalog reference data.
type CatalogService interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest, actorID string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	DeleteService(ctx context.Context, serviceID string) error
}

// UserService manages operator accounts and credential checks.
type UserService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest, actorID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
	DeleteAdmin(ctx context.Context, userID string, actorID string) error
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error
	EnsureDefaultAdmin(ctx context.Context, username, password, fullName string) error
}

// TokenService issues access tokens for authenticated operators.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (token string, expiresAt time.Time, err error)
}

// ServiceContainer bundles all services for route registration.
type ServiceContainer struct {
	Account     AccountService
	Posting     PostingService
	Transaction TransactionService
	Reporting   ReportingService
	Catalog     CatalogService
	User        UserService
	Token       TokenService
}
