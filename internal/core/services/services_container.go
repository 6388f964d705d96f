package services

import (
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/pkg/config"
)

// NewServiceContainer wires all services against the given repositories.
func NewServiceContainer(cfg *config.Config, repos ports.RepositoryProvider) *ports.ServiceContainer {
	container := &ports.ServiceContainer{}

	container.Posting = NewPostingService()
	container.Account = NewAccountService(repos.Account)
	container.Transaction = NewTransactionService(repos.Transaction, repos.Account, container.Posting)
	container.Reporting = NewReportingService(repos.Reporting, repos.Account)
	container.Catalog = NewCatalogService(repos.Service)
	container.User = NewUserService(repos.User)
	container.Token = NewTokenService(cfg)

	return container
}
