package pgsql

import (
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}

// NewAccountRepository exposes the account repository for chart-of-accounts seeding.
func NewAccountRepository(dbPool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return newPgxAccountRepository(dbPool)
}
