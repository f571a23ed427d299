package repositories

import (
	"context"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
)

// AccountReader is the account lookup collaborator. It returns accounts regardless of their
// active flag; activity is judged by the ledger registry.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByTypes retrieves accounts of the given types ordered by code.
	// An empty type list returns the whole chart of accounts.
	ListAccountsByTypes(ctx context.Context, types []domain.AccountType) ([]domain.Account, error)
}

// AccountWriter defines write operations used when loading the chart of accounts.
type AccountWriter interface {
	// UpsertAccounts inserts accounts or updates them by id, in one database transaction.
	UpsertAccounts(ctx context.Context, accounts []domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
