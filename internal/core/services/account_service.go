package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewAccountService creates a new account service reading from the given collaborator.
func NewAccountService(repo portsrepo.AccountReader) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, persistenceError("find account", err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, types []domain.AccountType) ([]domain.Account, error) {
	registry, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return registry.ListByType(types...), nil
}

// Registry loads the whole chart of accounts on every call so that a changed catalog is
// picked up without restarting.
func (s *accountService) Registry(ctx context.Context) (*ledger.Registry, error) {
	accounts, err := s.accountRepo.ListAccountsByTypes(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts")
		return nil, persistenceError("load chart of accounts", err)
	}

	registry, err := ledger.NewRegistry(accounts)
	if err != nil {
		s.LogError(ctx, err, "Chart of accounts is inconsistent", slog.Int("account_count", len(accounts)))
		return nil, err
	}
	s.LogDebug(ctx, "Chart of accounts loaded", slog.Int("account_count", registry.Len()))
	return registry, nil
}
