package domain

import (
	"fmt"
	"strings"
)

// Side indicates whether a posting is a debit or a credit.
type Side string

const (
	Debit  Side = "debit"
	Credit Side = "credit"
)

// IsValid reports whether s is debit or credit.
func (s Side) IsValid() bool {
	return s == Debit || s == Credit
}

// Opposite flips debit to credit and vice versa.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

// ParseSide parses a case-insensitive side name.
func ParseSide(v string) (Side, error) {
	s := Side(strings.ToLower(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown side %q", v)
	}
	return s, nil
}

// MaxMemoLength is the maximum length, in characters, of transaction and entry memos.
const MaxMemoLength = 100

// JournalEntry is a single posting within a transaction. It has no lifecycle of its own.
type JournalEntry struct {
	AccountID string `json:"accountID"`
	Side      Side   `json:"side"`
	Amount    int64  `json:"amount"` // smallest currency unit, must be > 0
	Memo      string `json:"memo"`
}

// Reversed returns a copy of the entry posted on the opposite side.
func (e JournalEntry) Reversed() JournalEntry {
	e.Side = e.Side.Opposite()
	return e
}
