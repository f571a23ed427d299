package mapping

import (
	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	"github.com/SscSPs/simple_ledger/internal/models"
)

// ToModelTransaction converts a persisted-ready transaction to its header row.
func ToModelTransaction(vt ledger.ValidatedTransaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   vt.ID(),
		TransactionDate: vt.Date().Time(),
		Memo:            vt.Memo(),
		Kind:            string(vt.Kind()),
		Amount:          vt.DebitTotal(),
		CreatedAt:       vt.CreatedAt(),
	}
	if id := vt.CorrectsID(); id != "" {
		m.CorrectsID = &id
	}
	return m
}

// ToModelJournalEntries converts the postings of vt to rows numbered in insertion order.
func ToModelJournalEntries(vt ledger.ValidatedTransaction) []models.JournalEntry {
	entries := vt.Entries()
	ms := make([]models.JournalEntry, len(entries))
	for i, e := range entries {
		ms[i] = models.JournalEntry{
			TransactionID: vt.ID(),
			LineNo:        i,
			AccountID:     e.AccountID,
			Side:          string(e.Side),
			Amount:        e.Amount,
			Memo:          e.Memo,
		}
	}
	return ms
}

// ToStoredTransaction rebuilds the input of ledger.Restore from a header row and its
// entry rows, which must already be in line order.
func ToStoredTransaction(m models.Transaction, entries []models.JournalEntry) ledger.StoredTransaction {
	s := ledger.StoredTransaction{
		ID:        m.TransactionID,
		CreatedAt: m.CreatedAt,
		Date:      domain.DateOf(m.TransactionDate),
		Memo:      m.Memo,
		Kind:      domain.TransactionKind(m.Kind),
		Entries:   make([]domain.JournalEntry, len(entries)),
	}
	if m.CorrectsID != nil {
		s.CorrectsID = *m.CorrectsID
	}
	for i, e := range entries {
		s.Entries[i] = domain.JournalEntry{
			AccountID: e.AccountID,
			Side:      domain.Side(e.Side),
			Amount:    e.Amount,
			Memo:      e.Memo,
		}
	}
	return s
}
