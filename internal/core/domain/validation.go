package domain

import (
	"strings"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
)

// ValidationCode identifies the rule a candidate transaction violated.
type ValidationCode string

const (
	CodeDateInvalid            ValidationCode = "DATE_INVALID"
	CodeTooFewEntries          ValidationCode = "TOO_FEW_ENTRIES"
	CodeAmountNotPositive      ValidationCode = "AMOUNT_NOT_POSITIVE"
	CodeAccountNotFound        ValidationCode = "ACCOUNT_NOT_FOUND"
	CodeSideInvalid            ValidationCode = "SIDE_INVALID"
	CodeMissingDebit           ValidationCode = "MISSING_DEBIT"
	CodeMissingCredit          ValidationCode = "MISSING_CREDIT"
	CodeUnbalanced             ValidationCode = "UNBALANCED"
	CodeMemoTooLong            ValidationCode = "MEMO_TOO_LONG"
	CodeAmountOverflow         ValidationCode = "AMOUNT_OVERFLOW"
	CodeOriginalNotCorrectable ValidationCode = "ORIGINAL_NOT_CORRECTABLE"
	CodeKindInvalid            ValidationCode = "KIND_INVALID"
)

// NoEntry marks a ValidationError that applies to the whole transaction.
const NoEntry = -1

// ValidationError is one user-facing violation, attributable to a field or an entry.
type ValidationError struct {
	Code        ValidationCode `json:"code"`
	Field       string         `json:"field"`
	EntryIndex  int            `json:"entryIndex"`
	AccountID   string         `json:"accountID,omitempty"`
	Message     string         `json:"message"`
	DebitTotal  int64          `json:"debitTotal,omitempty"`
	CreditTotal int64          `json:"creditTotal,omitempty"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is the complete set of violations found in one validation run.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return apperrors.ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

// Is lets errors.Is(err, apperrors.ErrValidation) match a ValidationErrors value.
func (v ValidationErrors) Is(target error) bool {
	return target == apperrors.ErrValidation
}

// Has reports whether any error carries the given code.
func (v ValidationErrors) Has(code ValidationCode) bool {
	for _, e := range v {
		if e.Code == code {
			return true
		}
	}
	return false
}

// WithFieldPrefix returns a copy with every Field prefixed, e.g. "replacement.entries[0].amount".
func (v ValidationErrors) WithFieldPrefix(prefix string) ValidationErrors {
	out := make(ValidationErrors, len(v))
	for i, e := range v {
		if e.Field == "" {
			e.Field = prefix
		} else {
			e.Field = prefix + "." + e.Field
		}
		out[i] = e
	}
	return out
}
