package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	"github.com/SscSPs/simple_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *ledger.Registry {
	t.Helper()
	r, err := ledger.NewRegistry(chartOfAccounts())
	require.NoError(t, err)
	return r
}

func TestReportingService_Summary_PagesAndCorrections(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	registrySvc := new(MockRegistrySvc)
	registrySvc.On("Registry", ctx).Return(newRegistry(t), nil)

	salary := storedTx("tx-1", "2024-05-01", "", "", entry(cashID, domain.Debit, 1000), entry(salaryID, domain.Credit, 1000))
	rent := storedTx("tx-2", "2024-05-03", "", "", entry(rentID, domain.Debit, 400), entry(cashID, domain.Credit, 400))
	reversal := storedTx("tx-3", "2024-05-10", domain.KindReversal, "tx-2", entry(rentID, domain.Credit, 400), entry(cashID, domain.Debit, 400))
	replacement := storedTx("tx-4", "2024-05-03", domain.KindReplacement, "tx-2", entry(rentID, domain.Debit, 300), entry(cashID, domain.Credit, 300))

	repo.On("ListTransactions", ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.NextToken == nil && f.Limit == 2
	})).Return([]ledger.ValidatedTransaction{salary, rent}, "page-2", nil).Once()
	repo.On("ListTransactions", ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.NextToken != nil && *f.NextToken == "page-2"
	})).Return([]ledger.ValidatedTransaction{reversal, replacement}, nil, nil).Once()

	svc := services.NewReportingService(repo, registrySvc, services.WithReportingPageSize(2))
	summary, err := svc.Summary(ctx, domain.TransactionFilter{}, domain.ByAccount)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), summary.TotalIncome)
	assert.Equal(t, int64(300), summary.TotalExpense)
	assert.Equal(t, int64(700), summary.Balance)
	assert.Equal(t, 2, summary.TransactionCount)
	repo.AssertExpectations(t)
}

func TestReportingService_Summary_WindowExcludesCorrectedOriginal(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	registrySvc := new(MockRegistrySvc)
	registrySvc.On("Registry", ctx).Return(newRegistry(t), nil)

	from, err := domain.ParseDate("2024-05-01")
	require.NoError(t, err)
	to, err := domain.ParseDate("2024-05-31")
	require.NoError(t, err)

	// The reversal was posted in June, outside the window.
	rent := storedTx("tx-2", "2024-05-03", "", "", entry(rentID, domain.Debit, 400), entry(cashID, domain.Credit, 400))
	replacement := storedTx("tx-4", "2024-05-03", domain.KindReplacement, "tx-2", entry(rentID, domain.Debit, 300), entry(cashID, domain.Credit, 300))

	repo.On("ListTransactions", ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.ExcludeCorrected && f.From != nil && f.From.String() == "2024-05-01" &&
			f.To != nil && f.To.String() == "2024-05-31"
	})).Return([]ledger.ValidatedTransaction{rent, replacement}, nil, nil).Once()

	summary, err := services.NewReportingService(repo, registrySvc).
		Summary(ctx, domain.TransactionFilter{From: &from, To: &to}, domain.ByAccount)

	require.NoError(t, err)
	assert.Equal(t, int64(300), summary.TotalExpense)
	assert.Equal(t, 1, summary.TransactionCount)
	repo.AssertExpectations(t)
}

func TestReportingService_Monthly(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	registrySvc := new(MockRegistrySvc)
	registrySvc.On("Registry", ctx).Return(newRegistry(t), nil)

	txs := []ledger.ValidatedTransaction{
		storedTx("tx-1", "2024-04-30", "", "", entry(cashID, domain.Debit, 1000), entry(salaryID, domain.Credit, 1000)),
		storedTx("tx-2", "2024-05-03", "", "", entry(rentID, domain.Debit, 400), entry(cashID, domain.Credit, 400)),
	}
	repo.On("ListTransactions", ctx, mock.Anything).Return(txs, nil, nil).Once()

	months, err := services.NewReportingService(repo, registrySvc).Monthly(ctx, domain.TransactionFilter{})

	require.NoError(t, err)
	assert.Equal(t, []domain.MonthlyTotal{
		{Month: "2024-04", Income: 1000, Balance: 1000},
		{Month: "2024-05", Expense: 400, Balance: -400},
	}, months)
}

func TestReportingService_AccountBalance(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	registrySvc := new(MockRegistrySvc)
	registrySvc.On("Registry", ctx).Return(newRegistry(t), nil)

	txs := []ledger.ValidatedTransaction{
		storedTx("tx-1", "2024-04-30", "", "", entry(cashID, domain.Debit, 1000), entry(salaryID, domain.Credit, 1000)),
		storedTx("tx-2", "2024-05-03", "", "", entry(rentID, domain.Debit, 400), entry(cashID, domain.Credit, 400)),
	}
	repo.On("ListTransactions", ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return !f.ExcludeCorrected
	})).Return(txs, nil, nil)
	svc := services.NewReportingService(repo, registrySvc)

	balance, err := svc.AccountBalance(ctx, cashID, domain.TransactionFilter{ExcludeCorrected: true})
	require.NoError(t, err)
	assert.Equal(t, int64(600), balance.Balance)

	_, err = svc.AccountBalance(ctx, "ghost", domain.TransactionFilter{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReportingService_ReadFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	registrySvc := new(MockRegistrySvc)
	registrySvc.On("Registry", ctx).Return(newRegistry(t), nil)
	repo.On("ListTransactions", ctx, mock.Anything).Return(nil, nil, assert.AnError).Once()

	_, err := services.NewReportingService(repo, registrySvc).Summary(ctx, domain.TransactionFilter{}, domain.ByAccount)

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}
