package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrection_Lifecycle(t *testing.T) {
	c := domain.NewCorrection("tx-1")
	assert.Equal(t, domain.CorrectionPending, c.Status)

	err := c.Apply("rev", "rep")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict), "cannot skip Confirmed")

	require.NoError(t, c.Confirm())
	assert.Equal(t, domain.CorrectionConfirmed, c.Status)

	assert.Error(t, c.Apply("rev", ""), "both halves must be applied together")
	assert.Equal(t, domain.CorrectionConfirmed, c.Status)

	require.NoError(t, c.Apply("rev", "rep"))
	assert.Equal(t, domain.CorrectionApplied, c.Status)
	assert.Equal(t, "rev", c.ReversalID)
	assert.Equal(t, "rep", c.ReplacementID)

	assert.Error(t, c.Confirm())
}

func TestValidationErrors(t *testing.T) {
	errs := domain.ValidationErrors{
		{Code: domain.CodeTooFewEntries, Field: "entries", EntryIndex: domain.NoEntry, Message: "a transaction needs at least two entries"},
		{Code: domain.CodeAmountNotPositive, Field: "entries[0].amount", EntryIndex: 0, Message: "amount must be positive"},
	}

	var err error = errs
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
	assert.True(t, errs.Has(domain.CodeTooFewEntries))
	assert.False(t, errs.Has(domain.CodeUnbalanced))
	assert.Contains(t, err.Error(), "at least two entries")

	prefixed := errs.WithFieldPrefix("replacement")
	assert.Equal(t, "replacement.entries", prefixed[0].Field)
	assert.Equal(t, "entries", errs[0].Field, "prefixing must copy")
}
