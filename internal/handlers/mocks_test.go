package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, types []domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) Registry(ctx context.Context) (*ledger.Registry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Registry), args.Error(1)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) Get(ctx context.Context, transactionID string) (*ledger.ValidatedTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ValidatedTransaction), args.Error(1)
}

func (m *MockTransactionService) List(ctx context.Context, filter domain.TransactionFilter) ([]ledger.ValidatedTransaction, *string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		next = &tokenVal
	}
	return args.Get(0).([]ledger.ValidatedTransaction), next, args.Error(2)
}

func (m *MockTransactionService) Validate(ctx context.Context, candidate domain.CandidateTransaction) (*ledger.ValidatedTransaction, error) {
	args := m.Called(ctx, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ValidatedTransaction), args.Error(1)
}

func (m *MockTransactionService) Create(ctx context.Context, candidate domain.CandidateTransaction) (*ledger.ValidatedTransaction, error) {
	args := m.Called(ctx, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ValidatedTransaction), args.Error(1)
}

func (m *MockTransactionService) Correct(ctx context.Context, transactionID string, req domain.CorrectionRequest) (*portssvc.CorrectionResult, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.CorrectionResult), args.Error(1)
}

func (m *MockTransactionService) Delete(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) Summary(ctx context.Context, filter domain.TransactionFilter, granularity domain.Granularity) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, filter, granularity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

func (m *MockReportingService) Monthly(ctx context.Context, filter domain.TransactionFilter) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

func (m *MockReportingService) AccountBalance(ctx context.Context, accountID string, filter domain.TransactionFilter) (*domain.AccountBalance, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

// --- Fixtures ---

func storedTx(id, date string, kind domain.TransactionKind, correctsID string, amount int64) *ledger.ValidatedTransaction {
	d, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	tx, err := ledger.Restore(ledger.StoredTransaction{
		ID:         id,
		CreatedAt:  time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
		Date:       d,
		Memo:       "memo " + id,
		Kind:       kind,
		CorrectsID: correctsID,
		Entries: []domain.JournalEntry{
			{AccountID: "acc-rent", Side: domain.Debit, Amount: amount},
			{AccountID: "acc-cash", Side: domain.Credit, Amount: amount},
		},
	})
	if err != nil {
		panic(err)
	}
	return &tx
}

// draftTx is a validated but not yet persisted transaction.
func draftTx(date string, amount int64) *ledger.ValidatedTransaction {
	registry, err := ledger.NewRegistry([]domain.Account{
		{AccountID: "acc-rent", Code: "6300", Name: "Rent", AccountType: domain.Expense, NormalBalance: domain.Debit, IsActive: true},
		{AccountID: "acc-cash", Code: "1000", Name: "Cash", AccountType: domain.Asset, NormalBalance: domain.Debit, IsActive: true},
	})
	if err != nil {
		panic(err)
	}
	tx, err := ledger.NewValidator(registry).Validate(domain.CandidateTransaction{
		Date: date,
		Memo: "draft",
		Entries: []domain.JournalEntry{
			{AccountID: "acc-rent", Side: domain.Debit, Amount: amount},
			{AccountID: "acc-cash", Side: domain.Credit, Amount: amount},
		},
	})
	if err != nil {
		panic(err)
	}
	return &tx
}
