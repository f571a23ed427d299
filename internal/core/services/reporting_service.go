package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	txReader    portsrepo.TransactionReader
	registrySvc portssvc.RegistrySvc
	pageSize    int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingPageSize sets how many transactions are fetched per query page.
func WithReportingPageSize(size int) ReportingServiceOption {
	return func(s *reportingService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(reader portsrepo.TransactionReader, registrySvc portssvc.RegistrySvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		txReader:    reader,
		registrySvc: registrySvc,
		pageSize:    100,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// collect pages through every transaction matching filter.
func (s *reportingService) collect(ctx context.Context, filter domain.TransactionFilter) ([]ledger.ValidatedTransaction, error) {
	filter.Limit = s.pageSize
	filter.NextToken = nil

	var all []ledger.ValidatedTransaction
	for {
		page, next, err := s.txReader.ListTransactions(ctx, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to read transactions for report", slog.Int("fetched", len(all)))
			return nil, persistenceError("read transactions", err)
		}
		all = append(all, page...)
		if next == nil || len(page) == 0 {
			return all, nil
		}
		filter.NextToken = next
	}
}

func (s *reportingService) load(ctx context.Context, filter domain.TransactionFilter) ([]ledger.ValidatedTransaction, *ledger.Aggregator, error) {
	registry, err := s.registrySvc.Registry(ctx)
	if err != nil {
		return nil, nil, err
	}
	txs, err := s.collect(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return txs, ledger.NewAggregator(registry), nil
}

// Summary aggregates the effective view: corrected transactions count once, through their
// replacement, whichever window or keyword the filter selects.
func (s *reportingService) Summary(ctx context.Context, filter domain.TransactionFilter, granularity domain.Granularity) (*domain.LedgerSummary, error) {
	filter.ExcludeCorrected = true
	txs, agg, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := agg.Aggregate(ledger.Effective(txs), granularity)
	if summary.UnclassifiedEntries > 0 {
		s.LogInfo(ctx, "Entries reference accounts missing from the chart of accounts",
			slog.Int("unclassified_entries", summary.UnclassifiedEntries))
	}

	s.LogInfo(ctx, "Summary report generated",
		slog.Int("transaction_count", summary.TransactionCount),
		slog.String("granularity", string(granularity)))
	return &summary, nil
}

func (s *reportingService) Monthly(ctx context.Context, filter domain.TransactionFilter) ([]domain.MonthlyTotal, error) {
	filter.ExcludeCorrected = true
	txs, agg, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	months := agg.MonthlyTotals(ledger.Effective(txs))
	s.LogInfo(ctx, "Monthly report generated", slog.Int("month_count", len(months)))
	return months, nil
}

// AccountBalance includes reversals and originals alike; they net out on the account.
func (s *reportingService) AccountBalance(ctx context.Context, accountID string, filter domain.TransactionFilter) (*domain.AccountBalance, error) {
	filter.ExcludeCorrected = false
	txs, agg, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	balance, err := agg.AccountBalance(txs, accountID)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}
