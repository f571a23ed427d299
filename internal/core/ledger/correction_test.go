package ledger_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*ledger.CorrectionEngine, *ledger.Validator, *ledger.Aggregator) {
	t.Helper()
	r := newTestRegistry(t)
	v := ledger.NewValidator(r)
	return ledger.NewCorrectionEngine(v, ledger.WithClock(func() time.Time { return fixedNow })), v, ledger.NewAggregator(r)
}

func TestCorrectionEngine_Correct(t *testing.T) {
	engine, v, agg := newTestEngine(t)

	original := mustValidate(t, v, "tx-1", domain.CandidateTransaction{
		Date:    "2024-03-05",
		Memo:    "March rent",
		Entries: []domain.JournalEntry{debit(rentID, 1000), credit(cashID, 1000)},
	})
	before := original.Entries()

	pair, err := engine.Correct(original, domain.CorrectionRequest{
		Entries: []domain.JournalEntry{debit(rentID, 900), credit(cashID, 900)},
		Note:    "landlord discount",
	})
	require.NoError(t, err)

	assert.Equal(t, before, original.Entries(), "original must not be mutated")
	assert.Equal(t, "tx-1", original.ID())

	rev := pair.Reversal
	assert.Equal(t, domain.KindReversal, rev.Kind())
	assert.Equal(t, "tx-1", rev.CorrectsID())
	assert.Equal(t, "2024-05-20", rev.Date().String())
	assert.Equal(t, "Reversal of tx-1: March rent", rev.Memo())
	revEntries := rev.Entries()
	require.Len(t, revEntries, 2)
	for i, e := range revEntries {
		assert.Equal(t, before[i].AccountID, e.AccountID)
		assert.Equal(t, before[i].Amount, e.Amount)
		assert.Equal(t, before[i].Side.Opposite(), e.Side)
	}

	rep := pair.Replacement
	assert.Equal(t, domain.KindReplacement, rep.Kind())
	assert.Equal(t, "tx-1", rep.CorrectsID())
	assert.Equal(t, "2024-03-05", rep.Date().String(), "replacement defaults to the original date")
	assert.Equal(t, "March rent [correction: landlord discount]", rep.Memo())
	assert.Equal(t, int64(900), rep.DebitTotal())

	// Balances net out: cash carries only the replacement's credit.
	all := []ledger.ValidatedTransaction{original, rev.WithID("tx-2", fixedNow), rep.WithID("tx-3", fixedNow)}
	cash, err := agg.AccountBalance(all, cashID)
	require.NoError(t, err)
	assert.Equal(t, int64(-900), cash.Balance)

	// The effective view reports the corrected figure.
	summary := agg.Aggregate(ledger.Effective(all), domain.ByAccount)
	assert.Equal(t, int64(900), summary.TotalExpense)
	assert.Equal(t, 1, summary.TransactionCount)
}

func TestCorrectionEngine_Correct_ExplicitDateAndMemo(t *testing.T) {
	engine, v, _ := newTestEngine(t)
	original := mustValidate(t, v, "tx-1", candidate("2024-03-05", debit(rentID, 1000), credit(cashID, 1000)))

	pair, err := engine.Correct(original, domain.CorrectionRequest{
		Date:    "2024-03-06",
		Memo:    "Rent, corrected",
		Entries: []domain.JournalEntry{debit(rentID, 1000), credit(bankID, 1000)},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-06", pair.Replacement.Date().String())
	assert.Equal(t, "Rent, corrected", pair.Replacement.Memo())
}

func TestCorrectionEngine_Correct_TruncatesMemos(t *testing.T) {
	engine, v, _ := newTestEngine(t)
	original := mustValidate(t, v, "tx-1", domain.CandidateTransaction{
		Date:    "2024-03-05",
		Memo:    strings.Repeat("é", domain.MaxMemoLength),
		Entries: []domain.JournalEntry{debit(rentID, 10), credit(cashID, 10)},
	})

	pair, err := engine.Correct(original, domain.CorrectionRequest{
		Entries: []domain.JournalEntry{debit(rentID, 20), credit(cashID, 20)},
		Note:    "typo",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxMemoLength, len([]rune(pair.Reversal.Memo())))
	assert.Equal(t, domain.MaxMemoLength, len([]rune(pair.Replacement.Memo())))
}

func TestCorrectionEngine_Correct_InvalidReplacement(t *testing.T) {
	engine, v, _ := newTestEngine(t)
	original := mustValidate(t, v, "tx-1", candidate("2024-03-05", debit(rentID, 1000), credit(cashID, 1000)))

	pair, err := engine.Correct(original, domain.CorrectionRequest{
		Entries: []domain.JournalEntry{debit(rentID, 1000), credit(cashID, 900), debit("ghost", 0)},
	})
	verrs := validationErrors(t, err)
	assert.Equal(t, ledger.CorrectionPair{}, pair)

	assert.True(t, verrs.Has(domain.CodeUnbalanced))
	assert.True(t, verrs.Has(domain.CodeAccountNotFound))
	assert.True(t, verrs.Has(domain.CodeAmountNotPositive))
	for _, e := range verrs {
		assert.True(t, strings.HasPrefix(e.Field, "replacement"), "field %q", e.Field)
	}
}

func TestCorrectionEngine_Correct_NotCorrectable(t *testing.T) {
	engine, v, _ := newTestEngine(t)

	t.Run("unpersisted", func(t *testing.T) {
		draft := mustValidate(t, v, "", candidate("2024-03-05", debit(rentID, 10), credit(cashID, 10)))
		_, err := engine.Correct(draft, domain.CorrectionRequest{
			Entries: []domain.JournalEntry{debit(rentID, 20), credit(cashID, 20)},
		})
		verrs := validationErrors(t, err)
		assert.True(t, verrs.Has(domain.CodeOriginalNotCorrectable))
	})

	t.Run("reversal", func(t *testing.T) {
		original := mustValidate(t, v, "tx-1", candidate("2024-03-05", debit(rentID, 10), credit(cashID, 10)))
		pair, err := engine.Correct(original, domain.CorrectionRequest{
			Entries: []domain.JournalEntry{debit(rentID, 20), credit(cashID, 20)},
		})
		require.NoError(t, err)

		reversal := pair.Reversal.WithID("tx-2", fixedNow)
		_, err = engine.Correct(reversal, domain.CorrectionRequest{
			Entries: []domain.JournalEntry{debit(rentID, 20), credit(cashID, 20)},
		})
		verrs := validationErrors(t, err)
		assert.True(t, verrs.Has(domain.CodeOriginalNotCorrectable))
	})
}

func TestCorrectionEngine_Correct_RetiredAccountBlocksReversal(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	date, _ := domain.ParseDate("2024-01-10")
	original, err := ledger.Restore(ledger.StoredTransaction{
		ID:      "tx-old",
		Date:    date,
		Memo:    "old",
		Entries: []domain.JournalEntry{debit(retiredID, 25), credit(cashID, 25)},
	})
	require.NoError(t, err)

	_, err = engine.Correct(original, domain.CorrectionRequest{
		Entries: []domain.JournalEntry{debit(rentID, 25), credit(cashID, 25)},
	})
	verrs := validationErrors(t, err)
	require.True(t, verrs.Has(domain.CodeAccountNotFound))
	assert.Equal(t, "reversal.entries[0].accountID", verrs[0].Field)
}
