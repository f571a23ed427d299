package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	"github.com/SscSPs/simple_ledger/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_RoundTrip(t *testing.T) {
	date, err := domain.ParseDate("2024-05-01")
	require.NoError(t, err)
	createdAt := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	original, err := ledger.Restore(ledger.StoredTransaction{
		ID:         "tx-2",
		CreatedAt:  createdAt,
		Date:       date,
		Memo:       "Reversal of tx-1: rent",
		Kind:       domain.KindReversal,
		CorrectsID: "tx-1",
		Entries: []domain.JournalEntry{
			{AccountID: "cash", Side: domain.Debit, Amount: 700, Memo: "refund"},
			{AccountID: "rent", Side: domain.Credit, Amount: 700},
		},
	})
	require.NoError(t, err)

	header := mapping.ToModelTransaction(original)
	rows := mapping.ToModelJournalEntries(original)

	require.NotNil(t, header.CorrectsID)
	assert.Equal(t, "tx-1", *header.CorrectsID)
	assert.Equal(t, int64(700), header.Amount)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[1].LineNo)
	assert.Equal(t, "credit", rows[1].Side)

	restored, err := ledger.Restore(mapping.ToStoredTransaction(header, rows))
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestToModelTransaction_StandardHasNoCorrectsID(t *testing.T) {
	date, _ := domain.ParseDate("2024-05-01")
	vt, err := ledger.Restore(ledger.StoredTransaction{
		ID:   "tx-1",
		Date: date,
		Kind: domain.KindStandard,
		Entries: []domain.JournalEntry{
			{AccountID: "rent", Side: domain.Debit, Amount: 1},
			{AccountID: "cash", Side: domain.Credit, Amount: 1},
		},
	})
	require.NoError(t, err)

	assert.Nil(t, mapping.ToModelTransaction(vt).CorrectsID)
}

func TestAccountMapping(t *testing.T) {
	acc := domain.Account{AccountID: "a", Code: "6300", Name: "Rent", AccountType: domain.Expense, NormalBalance: domain.Debit, IsActive: true}
	assert.Equal(t, acc, mapping.ToDomainAccount(mapping.ToModelAccount(acc)))
}
