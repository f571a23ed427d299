package domain

import (
	"fmt"
	"strings"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// AllAccountTypes lists every account type in chart order.
var AllAccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// ParseAccountType parses a case-insensitive account type name.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown account type %q", s)
	}
	return t, nil
}

// NormalBalance is the side on which increases to an account are recorded.
type NormalBalance = Side

// NormalBalanceFor returns the normal balance implied by an account type.
// asset/expense increase on the debit side, liability/equity/revenue on the credit side.
func NormalBalanceFor(t AccountType) (NormalBalance, error) {
	switch t {
	case Asset, Expense:
		return Debit, nil
	case Liability, Equity, Revenue:
		return Credit, nil
	}
	return "", fmt.Errorf("unknown account type %q", t)
}

// Account represents an entry of the chart of accounts.
// Journal entries reference accounts by ID only; they never own them.
type Account struct {
	AccountID     string        `json:"accountID"`
	Code          string        `json:"code"` // unique, stable (e.g. "1000")
	Name          string        `json:"name"`
	AccountType   AccountType   `json:"accountType"`
	NormalBalance NormalBalance `json:"normalBalance"`
	Description   string        `json:"description"`
	IsActive      bool          `json:"isActive"`
}

// CheckNormalBalance returns an error when the account's normal balance contradicts its type.
func (a Account) CheckNormalBalance() error {
	want, err := NormalBalanceFor(a.AccountType)
	if err != nil {
		return err
	}
	if a.NormalBalance != want {
		return fmt.Errorf("account %s (%s) is %s but has normal balance %s, expected %s",
			a.Code, a.AccountID, a.AccountType, a.NormalBalance, want)
	}
	return nil
}

// Label is the display label used for category breakdowns.
func (a Account) Label() string {
	if a.Code == "" {
		return a.Name
	}
	return a.Code + " " + a.Name
}
