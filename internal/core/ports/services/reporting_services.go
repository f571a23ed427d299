package services

import (
	"context"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
)

// ReportingService defines operations for income/expense reports
type ReportingService interface {
	// Summary aggregates every transaction matching the filter.
	Summary(ctx context.Context, filter domain.TransactionFilter, granularity domain.Granularity) (*domain.LedgerSummary, error)

	// Monthly returns income, expense and balance per calendar month.
	Monthly(ctx context.Context, filter domain.TransactionFilter) ([]domain.MonthlyTotal, error)

	// AccountBalance returns the signed balance of one account over the filtered transactions.
	AccountBalance(ctx context.Context, accountID string, filter domain.TransactionFilter) (*domain.AccountBalance, error)
}
