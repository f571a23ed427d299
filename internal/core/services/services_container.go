package services

import (
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
	"github.com/SscSPs/simple_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The account service owns registry snapshots; the others build on it.
	container.Account = NewAccountService(repos.AccountRepo)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		container.Account,
		WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
	)

	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		container.Account,
		WithReportingPageSize(cfg.MaxPageSize),
	)

	return container
}
