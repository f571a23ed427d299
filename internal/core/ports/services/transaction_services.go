package services

import (
	"context"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
)

// TransactionReaderSvc defines read operations for posted transactions
type TransactionReaderSvc interface {
	// Get retrieves a posted transaction by id.
	Get(ctx context.Context, transactionID string) (*ledger.ValidatedTransaction, error)

	// List retrieves a page of transactions matching the filter and the token for the next page.
	List(ctx context.Context, filter domain.TransactionFilter) ([]ledger.ValidatedTransaction, *string, error)
}

// TransactionWriterSvc defines operations that post or amend transactions
type TransactionWriterSvc interface {
	// Validate checks a candidate without persisting it.
	Validate(ctx context.Context, candidate domain.CandidateTransaction) (*ledger.ValidatedTransaction, error)

	// Create validates and persists a standard transaction.
	Create(ctx context.Context, candidate domain.CandidateTransaction) (*ledger.ValidatedTransaction, error)

	// Correct amends a posted transaction with a reversal and replacement pair.
	Correct(ctx context.Context, transactionID string, req domain.CorrectionRequest) (*CorrectionResult, error)

	// Delete removes a transaction that is not part of a correction chain.
	Delete(ctx context.Context, transactionID string) error
}

// CorrectionResult is an applied correction together with its two new transactions.
type CorrectionResult struct {
	Correction  domain.Correction
	Reversal    ledger.ValidatedTransaction
	Replacement ledger.ValidatedTransaction
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
