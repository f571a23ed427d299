package ledger_test

import (
	"testing"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	"github.com/stretchr/testify/require"
)

const (
	cashID     = "acc-cash"
	bankID     = "acc-bank"
	loanID     = "acc-loan"
	capitalID  = "acc-capital"
	salaryID   = "acc-salary"
	interestID = "acc-interest"
	rentID     = "acc-rent"
	foodID     = "acc-food"
	retiredID  = "acc-retired"
)

func testAccount(id, code, name string, t domain.AccountType, active bool) domain.Account {
	nb, _ := domain.NormalBalanceFor(t)
	return domain.Account{
		AccountID:     id,
		Code:          code,
		Name:          name,
		AccountType:   t,
		NormalBalance: nb,
		IsActive:      active,
	}
}

func testAccounts() []domain.Account {
	return []domain.Account{
		testAccount(cashID, "1000", "Cash", domain.Asset, true),
		testAccount(bankID, "1100", "Bank", domain.Asset, true),
		testAccount(loanID, "2000", "Loan", domain.Liability, true),
		testAccount(capitalID, "3000", "Owner Capital", domain.Equity, true),
		testAccount(salaryID, "4000", "Salary", domain.Revenue, true),
		testAccount(interestID, "4100", "Interest Income", domain.Revenue, true),
		testAccount(rentID, "5000", "Rent", domain.Expense, true),
		testAccount(foodID, "5100", "Food", domain.Expense, true),
		testAccount(retiredID, "5900", "Old Expense", domain.Expense, false),
	}
}

func newTestRegistry(t *testing.T) *ledger.Registry {
	t.Helper()
	r, err := ledger.NewRegistry(testAccounts())
	require.NoError(t, err)
	return r
}

func debit(accountID string, amount int64) domain.JournalEntry {
	return domain.JournalEntry{AccountID: accountID, Side: domain.Debit, Amount: amount}
}

func credit(accountID string, amount int64) domain.JournalEntry {
	return domain.JournalEntry{AccountID: accountID, Side: domain.Credit, Amount: amount}
}

func candidate(date string, entries ...domain.JournalEntry) domain.CandidateTransaction {
	return domain.CandidateTransaction{Date: date, Memo: "test", Entries: entries}
}

// mustValidate validates c and returns it with a persisted id.
func mustValidate(t *testing.T, v *ledger.Validator, id string, c domain.CandidateTransaction) ledger.ValidatedTransaction {
	t.Helper()
	tx, err := v.Validate(c)
	require.NoError(t, err)
	if id == "" {
		return tx
	}
	return tx.WithID(id, tx.Date().Time())
}

func validationErrors(t *testing.T, err error) domain.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	verrs, ok := err.(domain.ValidationErrors)
	require.True(t, ok, "expected domain.ValidationErrors, got %T", err)
	return verrs
}
