package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	"github.com/SscSPs/simple_ledger/internal/utils/money"
)

// EntryRequest is one posting of a transaction request. Business rules (positive amounts,
// known accounts, valid sides) are reported by the ledger validator, not by binding.
type EntryRequest struct {
	AccountID string `json:"accountID"`
	Side      string `json:"side"`
	Amount    int64  `json:"amount"` // smallest currency unit
	Memo      string `json:"memo"`
}

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Date    string         `json:"date" example:"2024-05-01"`
	Memo    string         `json:"memo"`
	Entries []EntryRequest `json:"entries"`
}

// ToCandidate converts the request into an unvalidated ledger candidate.
func (r CreateTransactionRequest) ToCandidate() domain.CandidateTransaction {
	return domain.CandidateTransaction{
		Date:    r.Date,
		Memo:    r.Memo,
		Entries: toEntries(r.Entries),
		Kind:    domain.KindStandard,
	}
}

// CorrectTransactionRequest defines a correction of a posted transaction. Date and memo
// default to the original's when empty.
type CorrectTransactionRequest struct {
	Date    string         `json:"date,omitempty"`
	Memo    string         `json:"memo,omitempty"`
	Entries []EntryRequest `json:"entries"`
	Note    string         `json:"note,omitempty"`
}

// ToDomain converts the request into a correction request.
func (r CorrectTransactionRequest) ToDomain() domain.CorrectionRequest {
	return domain.CorrectionRequest{
		Date:    r.Date,
		Memo:    r.Memo,
		Entries: toEntries(r.Entries),
		Note:    r.Note,
	}
}

func toEntries(in []EntryRequest) []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(in))
	for i, e := range in {
		// the raw side is kept so the validator can report SIDE_INVALID with its index
		side := domain.Side(e.Side)
		if parsed, err := domain.ParseSide(e.Side); err == nil {
			side = parsed
		}
		out[i] = domain.JournalEntry{AccountID: e.AccountID, Side: side, Amount: e.Amount, Memo: e.Memo}
	}
	return out
}

// EntryResponse is one posting in a transaction response.
type EntryResponse struct {
	AccountID     string      `json:"accountID"`
	Side          domain.Side `json:"side"`
	Amount        int64       `json:"amount"`
	AmountDisplay string      `json:"amountDisplay"`
	Memo          string      `json:"memo,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID,omitempty"`
	Date          domain.Date            `json:"date"`
	Memo          string                 `json:"memo"`
	Kind          domain.TransactionKind `json:"kind"`
	CorrectsID    string                 `json:"correctsID,omitempty"`
	Total         int64                  `json:"total"`
	TotalDisplay  string                 `json:"totalDisplay"`
	Entries       []EntryResponse        `json:"entries"`
	CreatedAt     *time.Time             `json:"createdAt,omitempty"`
}

// ToTransactionResponse converts a validated transaction to its DTO.
func ToTransactionResponse(tx ledger.ValidatedTransaction, f money.Formatter) TransactionResponse {
	entries := tx.Entries()
	res := TransactionResponse{
		TransactionID: tx.ID(),
		Date:          tx.Date(),
		Memo:          tx.Memo(),
		Kind:          tx.Kind(),
		CorrectsID:    tx.CorrectsID(),
		Total:         tx.DebitTotal(),
		TotalDisplay:  f.Display(tx.DebitTotal()),
		Entries:       make([]EntryResponse, len(entries)),
	}
	for i, e := range entries {
		res.Entries[i] = EntryResponse{
			AccountID:     e.AccountID,
			Side:          e.Side,
			Amount:        e.Amount,
			AmountDisplay: f.Display(e.Amount),
			Memo:          e.Memo,
		}
	}
	if tx.IsPersisted() {
		createdAt := tx.CreatedAt()
		res.CreatedAt = &createdAt
	}
	return res
}

// ToTransactionResponses converts a slice of validated transactions.
func ToTransactionResponses(txs []ledger.ValidatedTransaction, f money.Formatter) []TransactionResponse {
	responses := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		responses[i] = ToTransactionResponse(tx, f)
	}
	return responses
}

// ValidateTransactionResponse is returned by a dry-run validation that succeeded.
type ValidateTransactionResponse struct {
	Valid       bool                `json:"valid"`
	Transaction TransactionResponse `json:"transaction"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Keyword   string `form:"keyword"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	NextToken string `form:"next_token"`
}

// ToFilter converts the query parameters to a transaction filter.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{Keyword: p.Keyword, Limit: p.Limit}
	if p.From != "" {
		from, err := domain.ParseDate(p.From)
		if err != nil {
			return filter, fmt.Errorf("invalid from date: %w", err)
		}
		filter.From = &from
	}
	if p.To != "" {
		to, err := domain.ParseDate(p.To)
		if err != nil {
			return filter, fmt.Errorf("invalid to date: %w", err)
		}
		filter.To = &to
	}
	if p.NextToken != "" {
		token := p.NextToken
		filter.NextToken = &token
	}
	return filter, nil
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// CorrectionResponse is returned once both halves of a correction are recorded.
type CorrectionResponse struct {
	Correction  domain.Correction   `json:"correction"`
	Reversal    TransactionResponse `json:"reversal"`
	Replacement TransactionResponse `json:"replacement"`
}

// ValidationErrorResponse lists every rule a transaction violated.
type ValidationErrorResponse struct {
	Error  string                  `json:"error"`
	Errors domain.ValidationErrors `json:"errors"`
}
