package repositories

import (
	"context"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
)

// TransactionReader is the query collaborator.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with all of its entries.
	FindTransactionByID(ctx context.Context, transactionID string) (*ledger.ValidatedTransaction, error)

	// ListTransactions retrieves transactions matching the filter, newest first, using
	// token-based pagination. It returns the page, a token for the next page, and an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]ledger.ValidatedTransaction, *string, error)

	// HasCorrections reports whether any reversal or replacement references the transaction.
	HasCorrections(ctx context.Context, transactionID string) (bool, error)
}

// TransactionWriter is the persistence collaborator. Every method is atomic: it either
// stores everything it was given or nothing.
type TransactionWriter interface {
	// SaveTransaction persists a transaction that already carries its id.
	SaveTransaction(ctx context.Context, tx ledger.ValidatedTransaction) error

	// SaveCorrection persists a reversal and its replacement as one unit.
	SaveCorrection(ctx context.Context, reversal, replacement ledger.ValidatedTransaction) error

	// DeleteTransaction removes a transaction and its entries.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
