package services

import (
	"context"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account, active or not.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves active accounts of the given types in code order.
	ListAccounts(ctx context.Context, types []domain.AccountType) ([]domain.Account, error)
}

// RegistrySvc builds chart-of-accounts snapshots for the ledger engine.
type RegistrySvc interface {
	// Registry loads the current chart of accounts into a fresh, immutable registry.
	Registry(ctx context.Context) (*ledger.Registry, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	RegistrySvc
}
