package ledger

import (
	"fmt"
	"time"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
)

// CorrectionPair is the reversal and replacement that together amend one transaction.
// Both halves are validated; they must be persisted as a single atomic unit.
type CorrectionPair struct {
	Reversal    ValidatedTransaction
	Replacement ValidatedTransaction
}

// CorrectionEngine amends posted transactions by reversal plus replacement. It never
// mutates or deletes the original.
type CorrectionEngine struct {
	validator *Validator
	now       func() time.Time
}

// CorrectionOption configures a CorrectionEngine.
type CorrectionOption func(*CorrectionEngine)

// WithClock overrides the clock used to date reversals.
func WithClock(now func() time.Time) CorrectionOption {
	return func(e *CorrectionEngine) {
		e.now = now
	}
}

// NewCorrectionEngine creates a correction engine validating through v.
func NewCorrectionEngine(v *Validator, options ...CorrectionOption) *CorrectionEngine {
	e := &CorrectionEngine{validator: v, now: time.Now}
	for _, option := range options {
		option(e)
	}
	return e
}

// Correct builds and validates the reversal and replacement for original. Violations of
// either half are returned together; field paths are prefixed "reversal." or "replacement.".
func (e *CorrectionEngine) Correct(original ValidatedTransaction, req domain.CorrectionRequest) (CorrectionPair, error) {
	var errs domain.ValidationErrors

	if !original.IsPersisted() {
		errs = append(errs, domain.ValidationError{
			Code:       domain.CodeOriginalNotCorrectable,
			Field:      "original",
			EntryIndex: domain.NoEntry,
			Message:    "only persisted transactions can be corrected",
		})
	}
	if original.Kind() == domain.KindReversal {
		errs = append(errs, domain.ValidationError{
			Code:       domain.CodeOriginalNotCorrectable,
			Field:      "original",
			EntryIndex: domain.NoEntry,
			Message:    fmt.Sprintf("transaction %s is a reversal and cannot itself be corrected", original.ID()),
		})
	}

	reversal, err := e.validator.Validate(e.reversalOf(original))
	if err != nil {
		errs = append(errs, prefixed(err, "reversal")...)
	}

	replacement, err := e.validator.Validate(e.replacementFor(original, req))
	if err != nil {
		errs = append(errs, prefixed(err, "replacement")...)
	}

	if len(errs) > 0 {
		return CorrectionPair{}, errs
	}
	return CorrectionPair{Reversal: reversal, Replacement: replacement}, nil
}

// reversalOf mirrors every entry of the original, dated today so the ledger shows when the
// correction was made.
func (e *CorrectionEngine) reversalOf(original ValidatedTransaction) domain.CandidateTransaction {
	entries := original.Entries()
	for i := range entries {
		entries[i] = entries[i].Reversed()
	}
	return domain.CandidateTransaction{
		Date:       domain.DateOf(e.now()).String(),
		Memo:       truncate(fmt.Sprintf("Reversal of %s: %s", original.ID(), original.Memo())),
		Entries:    entries,
		Kind:       domain.KindReversal,
		CorrectsID: original.ID(),
	}
}

func (e *CorrectionEngine) replacementFor(original ValidatedTransaction, req domain.CorrectionRequest) domain.CandidateTransaction {
	date := req.Date
	if date == "" {
		date = original.Date().String()
	}
	memo := req.Memo
	if memo == "" {
		memo = original.Memo()
	}
	if req.Note != "" {
		memo = truncate(fmt.Sprintf("%s [correction: %s]", memo, req.Note))
	}
	entries := make([]domain.JournalEntry, len(req.Entries))
	copy(entries, req.Entries)
	return domain.CandidateTransaction{
		Date:       date,
		Memo:       memo,
		Entries:    entries,
		Kind:       domain.KindReplacement,
		CorrectsID: original.ID(),
	}
}

func prefixed(err error, prefix string) domain.ValidationErrors {
	if verrs, ok := err.(domain.ValidationErrors); ok {
		return verrs.WithFieldPrefix(prefix)
	}
	return domain.ValidationErrors{{Field: prefix, EntryIndex: domain.NoEntry, Message: err.Error()}}
}

// truncate cuts s to the memo limit, counting characters rather than bytes.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= domain.MaxMemoLength {
		return s
	}
	return string(r[:domain.MaxMemoLength])
}
