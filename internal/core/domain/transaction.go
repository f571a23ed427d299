package domain

// TransactionKind distinguishes ordinary postings from the two halves of a correction.
type TransactionKind string

const (
	KindStandard    TransactionKind = "standard"
	KindReversal    TransactionKind = "reversal"
	KindReplacement TransactionKind = "replacement"
)

// IsValid reports whether k is a known transaction kind.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindStandard, KindReversal, KindReplacement:
		return true
	}
	return false
}

// CandidateTransaction is unvalidated input for the validator. Date is kept as the raw
// string so that malformed dates can be reported instead of failing to decode.
type CandidateTransaction struct {
	Date       string          `json:"date"`
	Memo       string          `json:"memo"`
	Entries    []JournalEntry  `json:"entries"`
	Kind       TransactionKind `json:"kind,omitempty"`
	CorrectsID string          `json:"correctsID,omitempty"` // set on reversal/replacement halves
}

// TransactionFilter narrows the transactions returned by the query collaborator.
type TransactionFilter struct {
	Keyword   string
	From      *Date
	To        *Date
	Limit     int
	NextToken *string
	// ExcludeCorrected drops reversals and every transaction that a later reversal or
	// replacement points at, leaving the effective view used by income/expense reports.
	ExcludeCorrected bool
}
