package domain

import "fmt"

// Granularity selects how income and expense entries are grouped.
type Granularity string

const (
	ByAccount     Granularity = "account"
	ByAccountType Granularity = "type"
)

// ParseGranularity parses a granularity, defaulting to ByAccount when empty.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "", ByAccount:
		return ByAccount, nil
	case ByAccountType:
		return ByAccountType, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// CategoryTotal is a derived, never-persisted sum for one category.
type CategoryTotal struct {
	Key         string      `json:"key"`   // account code, or account type for ByAccountType
	Label       string      `json:"label"` // display label
	AccountType AccountType `json:"accountType"`
	Total       int64       `json:"total"`
}

// LedgerSummary is the income/expense view over a set of transactions.
type LedgerSummary struct {
	IncomeByCategory    []CategoryTotal `json:"incomeByCategory"`
	ExpenseByCategory   []CategoryTotal `json:"expenseByCategory"`
	TotalIncome         int64           `json:"totalIncome"`
	TotalExpense        int64           `json:"totalExpense"`
	Balance             int64           `json:"balance"` // TotalIncome - TotalExpense, may be negative
	TransactionCount    int             `json:"transactionCount"`
	UnclassifiedEntries int             `json:"unclassifiedEntries"`
}

// MonthlyTotal is the income/expense/balance for one calendar month.
type MonthlyTotal struct {
	Month   string `json:"month"` // YYYY-MM
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Balance int64  `json:"balance"`
}

// AccountBalance is the signed balance of one account, positive on its normal side.
type AccountBalance struct {
	Account Account `json:"account"`
	Debits  int64   `json:"debits"`
	Credits int64   `json:"credits"`
	Balance int64   `json:"balance"`
}
