package ledger

import (
	"fmt"
	"math"
	"sort"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
)

// AccountCatalog describes accounts for classification, including retired ones.
// *Registry implements it.
type AccountCatalog interface {
	Describe(accountID string) (domain.Account, bool)
}

// Aggregator derives income, expense and balance figures from validated transactions.
// It holds no mutable state; every method is a pure function of its arguments.
type Aggregator struct {
	accounts AccountCatalog
}

// NewAggregator creates an aggregator classifying entries through the given catalog.
func NewAggregator(accounts AccountCatalog) *Aggregator {
	return &Aggregator{accounts: accounts}
}

type contribution int

const (
	notCounted contribution = iota
	income
	expense
)

// classify is the single place where postings acquire business meaning: a credit to a
// revenue account is income, a debit to an expense account is expense, and everything
// else only moves balance-sheet positions.
func classify(e domain.JournalEntry, acc domain.Account) contribution {
	switch acc.AccountType {
	case domain.Revenue:
		if e.Side == domain.Credit {
			return income
		}
	case domain.Expense:
		if e.Side == domain.Debit {
			return expense
		}
	case domain.Asset, domain.Liability, domain.Equity:
	}
	return notCounted
}

// Aggregate computes the income/expense breakdown of txs. Categories are ordered by
// ascending account code (or account type). An empty input yields zero totals.
// Totals saturate at the int64 bounds instead of wrapping.
func (a *Aggregator) Aggregate(txs []ValidatedTransaction, granularity domain.Granularity) domain.LedgerSummary {
	incomeByKey := make(map[string]*domain.CategoryTotal)
	expenseByKey := make(map[string]*domain.CategoryTotal)
	summary := domain.LedgerSummary{TransactionCount: len(txs)}

	for _, tx := range txs {
		for _, e := range tx.entries {
			acc, ok := a.accounts.Describe(e.AccountID)
			if !ok {
				summary.UnclassifiedEntries++
				continue
			}

			var bucket map[string]*domain.CategoryTotal
			switch classify(e, acc) {
			case income:
				bucket = incomeByKey
			case expense:
				bucket = expenseByKey
			default:
				continue
			}

			key, label := categoryKey(acc, granularity)
			ct, exists := bucket[key]
			if !exists {
				ct = &domain.CategoryTotal{Key: key, Label: label, AccountType: acc.AccountType}
				bucket[key] = ct
			}
			ct.Total = saturatingAdd(ct.Total, e.Amount)
		}
	}

	summary.IncomeByCategory = sortedCategories(incomeByKey)
	summary.ExpenseByCategory = sortedCategories(expenseByKey)
	for _, ct := range summary.IncomeByCategory {
		summary.TotalIncome = saturatingAdd(summary.TotalIncome, ct.Total)
	}
	for _, ct := range summary.ExpenseByCategory {
		summary.TotalExpense = saturatingAdd(summary.TotalExpense, ct.Total)
	}
	summary.Balance = saturatingAdd(summary.TotalIncome, -summary.TotalExpense)
	return summary
}

func categoryKey(acc domain.Account, granularity domain.Granularity) (key, label string) {
	if granularity == domain.ByAccountType {
		return string(acc.AccountType), string(acc.AccountType)
	}
	return acc.Code, acc.Label()
}

func sortedCategories(m map[string]*domain.CategoryTotal) []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, 0, len(m))
	for _, ct := range m {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// MonthlyTotals buckets income and expense by the transaction's calendar month,
// in ascending month order.
func (a *Aggregator) MonthlyTotals(txs []ValidatedTransaction) []domain.MonthlyTotal {
	byMonth := make(map[string]*domain.MonthlyTotal)
	for _, tx := range txs {
		month := tx.date.Month()
		mt, ok := byMonth[month]
		if !ok {
			mt = &domain.MonthlyTotal{Month: month}
			byMonth[month] = mt
		}
		for _, e := range tx.entries {
			acc, ok := a.accounts.Describe(e.AccountID)
			if !ok {
				continue
			}
			switch classify(e, acc) {
			case income:
				mt.Income = saturatingAdd(mt.Income, e.Amount)
			case expense:
				mt.Expense = saturatingAdd(mt.Expense, e.Amount)
			}
		}
	}

	out := make([]domain.MonthlyTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		mt.Balance = saturatingAdd(mt.Income, -mt.Expense)
		out = append(out, *mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// TopCategories returns the n largest categories, ties broken by ascending key.
// The input slice is not reordered.
func TopCategories(totals []domain.CategoryTotal, n int) []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, len(totals))
	copy(out, totals)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Key < out[j].Key
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// AccountBalance computes the signed balance of one account over txs; the balance is
// positive when the account sits on its normal side.
func (a *Aggregator) AccountBalance(txs []ValidatedTransaction, accountID string) (domain.AccountBalance, error) {
	acc, ok := a.accounts.Describe(accountID)
	if !ok {
		return domain.AccountBalance{}, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}

	result := domain.AccountBalance{Account: acc}
	for _, tx := range txs {
		for _, e := range tx.entries {
			if e.AccountID != accountID {
				continue
			}
			switch e.Side {
			case domain.Debit:
				result.Debits = saturatingAdd(result.Debits, e.Amount)
			case domain.Credit:
				result.Credits = saturatingAdd(result.Credits, e.Amount)
			}
		}
	}

	switch acc.NormalBalance {
	case domain.Debit:
		result.Balance = saturatingAdd(result.Debits, -result.Credits)
	case domain.Credit:
		result.Balance = saturatingAdd(result.Credits, -result.Debits)
	}
	return result, nil
}

// Effective leaves each corrected transaction represented by its replacement only. It
// drops every transaction that a reversal or replacement in txs points at, and every
// reversal whose original is in txs. Reversals whose original is outside txs are kept;
// they carry no income or expense. Order is preserved.
func Effective(txs []ValidatedTransaction) []ValidatedTransaction {
	present := make(map[string]bool, len(txs))
	for _, tx := range txs {
		if tx.id != "" {
			present[tx.id] = true
		}
	}
	corrected := make(map[string]bool)
	for _, tx := range txs {
		switch tx.kind {
		case domain.KindReversal, domain.KindReplacement:
			if present[tx.correctsID] {
				corrected[tx.correctsID] = true
			}
		case domain.KindStandard:
		}
	}

	out := make([]ValidatedTransaction, 0, len(txs))
	for _, tx := range txs {
		if corrected[tx.id] {
			continue
		}
		if tx.kind == domain.KindReversal && corrected[tx.correctsID] {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// saturatingAdd is addChecked clamped to the int64 range.
func saturatingAdd(a, b int64) int64 {
	sum, err := addChecked(a, b)
	if err == nil {
		return sum
	}
	if b > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}
