package services_test

import (
	"context"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountReader ---
type MockAccountReader struct {
	mock.Mock
}

var _ portsrepo.AccountReader = (*MockAccountReader)(nil)

func (m *MockAccountReader) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) ListAccountsByTypes(ctx context.Context, types []domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*ledger.ValidatedTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ValidatedTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]ledger.ValidatedTransaction, *string, error) {
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

func (m *MockTransactionRepository) HasCorrections(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx ledger.ValidatedTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveCorrection(ctx context.Context, reversal, replacement ledger.ValidatedTransaction) error {
	args := m.Called(ctx, reversal, replacement)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock RegistrySvc ---
type MockRegistrySvc struct {
	mock.Mock
}

var _ portssvc.RegistrySvc = (*MockRegistrySvc)(nil)

func (m *MockRegistrySvc) Registry(ctx context.Context) (*ledger.Registry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Registry), args.Error(1)
}

// --- Fixtures ---

const (
	cashID   = "acc-cash"
	salaryID = "acc-salary"
	rentID   = "acc-rent"
	oldID    = "acc-old"
)

func chartOfAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: cashID, Code: "1000", Name: "Cash", AccountType: domain.Asset, NormalBalance: domain.Debit, IsActive: true},
		{AccountID: salaryID, Code: "4000", Name: "Salary", AccountType: domain.Revenue, NormalBalance: domain.Credit, IsActive: true},
		{AccountID: rentID, Code: "5000", Name: "Rent", AccountType: domain.Expense, NormalBalance: domain.Debit, IsActive: true},
		{AccountID: oldID, Code: "5900", Name: "Old", AccountType: domain.Expense, NormalBalance: domain.Debit, IsActive: false},
	}
}

func entry(accountID string, side domain.Side, amount int64) domain.JournalEntry {
	return domain.JournalEntry{AccountID: accountID, Side: side, Amount: amount}
}

func storedTx(id, date string, kind domain.TransactionKind, correctsID string, entries ...domain.JournalEntry) ledger.ValidatedTransaction {
	d, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	tx, err := ledger.Restore(ledger.StoredTransaction{
		ID:         id,
		Date:       d,
		Memo:       "memo " + id,
		Kind:       kind,
		CorrectsID: correctsID,
		Entries:    entries,
	})
	if err != nil {
		panic(err)
	}
	return tx
}

// --- Mock AccountWriter ---
type MockAccountWriter struct {
	mock.Mock
}

var _ portsrepo.AccountWriter = (*MockAccountWriter)(nil)

func (m *MockAccountWriter) UpsertAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}
