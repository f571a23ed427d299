package ledger

import (
	"fmt"
	"time"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
)

// ValidatedTransaction is a transaction that passed every double-entry check. It is
// immutable: fields are unexported and accessors hand out copies, so one value can be shared
// across goroutines and aggregations without coordination.
type ValidatedTransaction struct {
	id         string
	createdAt  time.Time
	date       domain.Date
	memo       string
	entries    []domain.JournalEntry
	total      int64
	kind       domain.TransactionKind
	correctsID string
}

// ID is empty until the transaction has been persisted.
func (t ValidatedTransaction) ID() string { return t.id }

// CreatedAt is the persistence timestamp, zero until persisted.
func (t ValidatedTransaction) CreatedAt() time.Time { return t.createdAt }

func (t ValidatedTransaction) Date() domain.Date { return t.date }

func (t ValidatedTransaction) Memo() string { return t.memo }

func (t ValidatedTransaction) Kind() domain.TransactionKind { return t.kind }

// CorrectsID is the id of the transaction a reversal or replacement amends.
func (t ValidatedTransaction) CorrectsID() string { return t.correctsID }

// Entries returns a copy of the postings in insertion order.
func (t ValidatedTransaction) Entries() []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// EntryCount avoids copying when only the number of postings is needed.
func (t ValidatedTransaction) EntryCount() int { return len(t.entries) }

func (t ValidatedTransaction) DebitTotal() int64 { return t.total }

func (t ValidatedTransaction) CreditTotal() int64 { return t.total }

// IsPersisted reports whether the transaction carries a stored id.
func (t ValidatedTransaction) IsPersisted() bool { return t.id != "" }

// WithID returns a persisted copy; the receiver is unchanged.
func (t ValidatedTransaction) WithID(id string, createdAt time.Time) ValidatedTransaction {
	t.id = id
	t.createdAt = createdAt
	t.entries = t.Entries()
	return t
}

// Candidate converts the transaction back into validator input.
func (t ValidatedTransaction) Candidate() domain.CandidateTransaction {
	return domain.CandidateTransaction{
		Date:       t.date.String(),
		Memo:       t.memo,
		Entries:    t.Entries(),
		Kind:       t.kind,
		CorrectsID: t.correctsID,
	}
}

// StoredTransaction is what persistence adapters read back from storage.
type StoredTransaction struct {
	ID         string
	CreatedAt  time.Time
	Date       domain.Date
	Memo       string
	Kind       domain.TransactionKind
	CorrectsID string
	Entries    []domain.JournalEntry
}

// Restore rebuilds a stored transaction. It re-checks the structural double-entry rules but
// not account activity: accounts retired after posting must not invalidate history.
func Restore(s StoredTransaction) (ValidatedTransaction, error) {
	if s.ID == "" {
		return ValidatedTransaction{}, fmt.Errorf("%w: stored transaction has no id", apperrors.ErrValidation)
	}
	if len(s.Entries) < 2 {
		return ValidatedTransaction{}, fmt.Errorf("%w: stored transaction %s has %d entries", apperrors.ErrValidation, s.ID, len(s.Entries))
	}
	debits, credits, err := sideTotals(s.Entries)
	if err != nil {
		return ValidatedTransaction{}, fmt.Errorf("stored transaction %s: %w", s.ID, err)
	}
	if debits != credits || debits == 0 {
		return ValidatedTransaction{}, fmt.Errorf("%w: stored transaction %s is unbalanced (debit %d, credit %d)", apperrors.ErrValidation, s.ID, debits, credits)
	}
	kind := s.Kind
	if kind == "" {
		kind = domain.KindStandard
	}
	entries := make([]domain.JournalEntry, len(s.Entries))
	copy(entries, s.Entries)
	return ValidatedTransaction{
		id:         s.ID,
		createdAt:  s.CreatedAt,
		date:       s.Date,
		memo:       s.Memo,
		entries:    entries,
		total:      debits,
		kind:       kind,
		correctsID: s.CorrectsID,
	}, nil
}

// sideTotals sums positive amounts per side with overflow checking.
func sideTotals(entries []domain.JournalEntry) (debits, credits int64, err error) {
	for i, e := range entries {
		if e.Amount <= 0 {
			return 0, 0, fmt.Errorf("%w: entry %d has non-positive amount %d", apperrors.ErrValidation, i, e.Amount)
		}
		switch e.Side {
		case domain.Debit:
			if debits, err = addChecked(debits, e.Amount); err != nil {
				return 0, 0, err
			}
		case domain.Credit:
			if credits, err = addChecked(credits, e.Amount); err != nil {
				return 0, 0, err
			}
		default:
			return 0, 0, fmt.Errorf("%w: entry %d has unknown side %q", apperrors.ErrValidation, i, e.Side)
		}
	}
	return debits, credits, nil
}

var errOverflow = fmt.Errorf("%w: amount total overflows int64", apperrors.ErrValidation)

func addChecked(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, errOverflow
	}
	return sum, nil
}
