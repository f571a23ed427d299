package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
)

// SeedChartOfAccounts copies every account from source into target. The whole chart is
// checked by the registry first, so an inconsistent file never reaches the database.
func SeedChartOfAccounts(ctx context.Context, source portsrepo.AccountReader, target portsrepo.AccountWriter) (int, error) {
	base := BaseService{}

	accounts, err := source.ListAccountsByTypes(ctx, nil)
	if err != nil {
		base.LogError(ctx, err, "Failed to read chart of accounts source")
		return 0, err
	}
	if _, err := ledger.NewRegistry(accounts); err != nil {
		base.LogError(ctx, err, "Refusing to seed inconsistent chart of accounts")
		return 0, err
	}
	if err := target.UpsertAccounts(ctx, accounts); err != nil {
		base.LogError(ctx, err, "Failed to seed chart of accounts", slog.Int("account_count", len(accounts)))
		return 0, persistenceError("seed chart of accounts", err)
	}

	base.LogInfo(ctx, "Chart of accounts seeded", slog.Int("account_count", len(accounts)))
	return len(accounts), nil
}
