package dto

import (
	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/utils/money"
)

// SummaryParams defines query parameters for the income/expense summary.
type SummaryParams struct {
	Keyword     string `form:"keyword"`
	From        string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To          string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Granularity string `form:"granularity" binding:"omitempty,granularity"`
	Top         int    `form:"top,default=5" binding:"min=0,max=50"`
}

// Filter returns the transaction filter shared by every report.
func (p SummaryParams) Filter() (domain.TransactionFilter, error) {
	return ListTransactionsParams{Keyword: p.Keyword, From: p.From, To: p.To}.ToFilter()
}

// CategoryTotalResponse is one category of the summary.
type CategoryTotalResponse struct {
	domain.CategoryTotal
	TotalDisplay string `json:"totalDisplay"`
}

// SummaryResponse is the income/expense summary with display amounts.
type SummaryResponse struct {
	IncomeByCategory    []CategoryTotalResponse `json:"incomeByCategory"`
	ExpenseByCategory   []CategoryTotalResponse `json:"expenseByCategory"`
	TopExpenses         []CategoryTotalResponse `json:"topExpenses"`
	TotalIncome         int64                   `json:"totalIncome"`
	TotalExpense        int64                   `json:"totalExpense"`
	Balance             int64                   `json:"balance"`
	TotalIncomeDisplay  string                  `json:"totalIncomeDisplay"`
	TotalExpenseDisplay string                  `json:"totalExpenseDisplay"`
	BalanceDisplay      string                  `json:"balanceDisplay"`
	TransactionCount    int                     `json:"transactionCount"`
	UnclassifiedEntries int                     `json:"unclassifiedEntries"`
}

// ToSummaryResponse converts a ledger summary to its DTO. topExpenses is expected to be
// derived from summary.ExpenseByCategory.
func ToSummaryResponse(summary *domain.LedgerSummary, topExpenses []domain.CategoryTotal, f money.Formatter) SummaryResponse {
	return SummaryResponse{
		IncomeByCategory:    toCategoryResponses(summary.IncomeByCategory, f),
		ExpenseByCategory:   toCategoryResponses(summary.ExpenseByCategory, f),
		TopExpenses:         toCategoryResponses(topExpenses, f),
		TotalIncome:         summary.TotalIncome,
		TotalExpense:        summary.TotalExpense,
		Balance:             summary.Balance,
		TotalIncomeDisplay:  f.Display(summary.TotalIncome),
		TotalExpenseDisplay: f.Display(summary.TotalExpense),
		BalanceDisplay:      f.Display(summary.Balance),
		TransactionCount:    summary.TransactionCount,
		UnclassifiedEntries: summary.UnclassifiedEntries,
	}
}

func toCategoryResponses(totals []domain.CategoryTotal, f money.Formatter) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		out[i] = CategoryTotalResponse{CategoryTotal: t, TotalDisplay: f.Display(t.Total)}
	}
	return out
}

// MonthlyTotalResponse is one month of the monthly report.
type MonthlyTotalResponse struct {
	domain.MonthlyTotal
	BalanceDisplay string `json:"balanceDisplay"`
}

// MonthlyResponse lists months in ascending order.
type MonthlyResponse struct {
	Months []MonthlyTotalResponse `json:"months"`
}

// ToMonthlyResponse converts monthly totals to their DTO.
func ToMonthlyResponse(months []domain.MonthlyTotal, f money.Formatter) MonthlyResponse {
	out := make([]MonthlyTotalResponse, len(months))
	for i, m := range months {
		out[i] = MonthlyTotalResponse{MonthlyTotal: m, BalanceDisplay: f.Display(m.Balance)}
	}
	return MonthlyResponse{Months: out}
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	Account        AccountResponse `json:"account"`
	Debits         int64           `json:"debits"`
	Credits        int64           `json:"credits"`
	Balance        int64           `json:"balance"`
	BalanceDisplay string          `json:"balanceDisplay"`
}

// ToAccountBalanceResponse converts an account balance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance, f money.Formatter) AccountBalanceResponse {
	return AccountBalanceResponse{
		Account:        ToAccountResponse(&b.Account),
		Debits:         b.Debits,
		Credits:        b.Credits,
		Balance:        b.Balance,
		BalanceDisplay: f.Display(b.Balance),
	}
}
