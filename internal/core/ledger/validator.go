package ledger

import (
	"fmt"
	"unicode/utf8"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
)

// AccountLookup resolves an account id to an active account. *Registry implements it.
type AccountLookup interface {
	Lookup(accountID string) (domain.Account, error)
}

// Validator enforces the double-entry invariants over a candidate transaction.
type Validator struct {
	accounts AccountLookup
}

// NewValidator creates a validator resolving accounts through the given lookup.
func NewValidator(accounts AccountLookup) *Validator {
	return &Validator{accounts: accounts}
}

// Validate runs every check and returns all violations together as domain.ValidationErrors.
// Zero amounts are rejected, never dropped. Entries need not pair 1:1 across sides.
func (v *Validator) Validate(c domain.CandidateTransaction) (ValidatedTransaction, error) {
	var errs domain.ValidationErrors
	add := func(e domain.ValidationError) { errs = append(errs, e) }

	date, err := domain.ParseDate(c.Date)
	if err != nil {
		add(domain.ValidationError{
			Code:       domain.CodeDateInvalid,
			Field:      "date",
			EntryIndex: domain.NoEntry,
			Message:    err.Error(),
		})
	}

	if n := utf8.RuneCountInString(c.Memo); n > domain.MaxMemoLength {
		add(domain.ValidationError{
			Code:       domain.CodeMemoTooLong,
			Field:      "memo",
			EntryIndex: domain.NoEntry,
			Message:    fmt.Sprintf("memo is %d characters, at most %d allowed", n, domain.MaxMemoLength),
		})
	}

	kind := c.Kind
	if kind == "" {
		kind = domain.KindStandard
	}
	switch {
	case !kind.IsValid():
		add(domain.ValidationError{
			Code:       domain.CodeKindInvalid,
			Field:      "kind",
			EntryIndex: domain.NoEntry,
			Message:    fmt.Sprintf("unknown transaction kind %q", c.Kind),
		})
	case kind != domain.KindStandard && c.CorrectsID == "":
		add(domain.ValidationError{
			Code:       domain.CodeKindInvalid,
			Field:      "correctsID",
			EntryIndex: domain.NoEntry,
			Message:    fmt.Sprintf("a %s transaction must reference the transaction it corrects", kind),
		})
	}

	if len(c.Entries) < 2 {
		add(domain.ValidationError{
			Code:       domain.CodeTooFewEntries,
			Field:      "entries",
			EntryIndex: domain.NoEntry,
			Message:    fmt.Sprintf("a transaction needs at least two entries, got %d", len(c.Entries)),
		})
	}

	var (
		hasDebit, hasCredit bool
		debitTotal          int64
		creditTotal         int64
		overflow            bool
	)
	for i, e := range c.Entries {
		field := fmt.Sprintf("entries[%d]", i)

		switch e.Side {
		case domain.Debit:
			hasDebit = true
			if debitTotal, err = addChecked(debitTotal, e.Amount); err != nil {
				overflow = true
			}
		case domain.Credit:
			hasCredit = true
			if creditTotal, err = addChecked(creditTotal, e.Amount); err != nil {
				overflow = true
			}
		default:
			add(domain.ValidationError{
				Code:       domain.CodeSideInvalid,
				Field:      field + ".side",
				EntryIndex: i,
				AccountID:  e.AccountID,
				Message:    fmt.Sprintf("entry %d: side must be debit or credit, got %q", i, e.Side),
			})
		}

		if e.Amount <= 0 {
			add(domain.ValidationError{
				Code:       domain.CodeAmountNotPositive,
				Field:      field + ".amount",
				EntryIndex: i,
				AccountID:  e.AccountID,
				Message:    fmt.Sprintf("entry %d: amount must be positive, got %d", i, e.Amount),
			})
		}

		if _, err := v.accounts.Lookup(e.AccountID); err != nil {
			add(domain.ValidationError{
				Code:       domain.CodeAccountNotFound,
				Field:      field + ".accountID",
				EntryIndex: i,
				AccountID:  e.AccountID,
				Message:    fmt.Sprintf("entry %d: account %q not found or inactive", i, e.AccountID),
			})
		}

		if n := utf8.RuneCountInString(e.Memo); n > domain.MaxMemoLength {
			add(domain.ValidationError{
				Code:       domain.CodeMemoTooLong,
				Field:      field + ".memo",
				EntryIndex: i,
				AccountID:  e.AccountID,
				Message:    fmt.Sprintf("entry %d: memo is %d characters, at most %d allowed", i, n, domain.MaxMemoLength),
			})
		}
	}

	if !hasDebit {
		add(domain.ValidationError{
			Code:       domain.CodeMissingDebit,
			Field:      "entries",
			EntryIndex: domain.NoEntry,
			Message:    "a transaction needs at least one debit entry",
		})
	}
	if !hasCredit {
		add(domain.ValidationError{
			Code:       domain.CodeMissingCredit,
			Field:      "entries",
			EntryIndex: domain.NoEntry,
			Message:    "a transaction needs at least one credit entry",
		})
	}

	if overflow {
		add(domain.ValidationError{
			Code:       domain.CodeAmountOverflow,
			Field:      "entries",
			EntryIndex: domain.NoEntry,
			Message:    "entry amounts are too large to total",
		})
	} else if debitTotal != creditTotal {
		add(domain.ValidationError{
			Code:        domain.CodeUnbalanced,
			Field:       "entries",
			EntryIndex:  domain.NoEntry,
			Message:     fmt.Sprintf("debit total %d ≠ credit total %d", debitTotal, creditTotal),
			DebitTotal:  debitTotal,
			CreditTotal: creditTotal,
		})
	}

	if len(errs) > 0 {
		return ValidatedTransaction{}, errs
	}

	entries := make([]domain.JournalEntry, len(c.Entries))
	copy(entries, c.Entries)
	return ValidatedTransaction{
		date:       date,
		memo:       c.Memo,
		entries:    entries,
		total:      debitTotal,
		kind:       kind,
		correctsID: c.CorrectsID,
	}, nil
}
