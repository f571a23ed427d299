package domain

import (
	"fmt"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
)

// CorrectionStatus tracks a correction through Pending -> Confirmed -> Applied.
type CorrectionStatus string

const (
	CorrectionPending   CorrectionStatus = "PENDING"
	CorrectionConfirmed CorrectionStatus = "CONFIRMED"
	CorrectionApplied   CorrectionStatus = "APPLIED"
)

// CorrectionRequest is the user's proposed amendment of a posted transaction.
type CorrectionRequest struct {
	Date    string         `json:"date,omitempty"` // replacement date; defaults to the original's date
	Memo    string         `json:"memo,omitempty"` // replacement memo; defaults to the original's memo
	Entries []JournalEntry `json:"entries"`
	Note    string         `json:"note,omitempty"`
}

// Correction is the lifecycle record of one amendment. It never exposes a state in which
// only one of the reversal/replacement pair is applied.
type Correction struct {
	OriginalID    string           `json:"originalID"`
	Status        CorrectionStatus `json:"status"`
	ReversalID    string           `json:"reversalID,omitempty"`
	ReplacementID string           `json:"replacementID,omitempty"`
}

// NewCorrection starts a correction in the Pending state.
func NewCorrection(originalID string) *Correction {
	return &Correction{OriginalID: originalID, Status: CorrectionPending}
}

// Confirm moves a pending correction to Confirmed once both halves validated.
func (c *Correction) Confirm() error {
	if c.Status != CorrectionPending {
		return fmt.Errorf("%w: cannot confirm correction in state %s", apperrors.ErrConflict, c.Status)
	}
	c.Status = CorrectionConfirmed
	return nil
}

// Apply moves a confirmed correction to Applied once both halves are persisted together.
func (c *Correction) Apply(reversalID, replacementID string) error {
	if c.Status != CorrectionConfirmed {
		return fmt.Errorf("%w: cannot apply correction in state %s", apperrors.ErrConflict, c.Status)
	}
	if reversalID == "" || replacementID == "" {
		return fmt.Errorf("%w: both reversal and replacement ids are required", apperrors.ErrConflict)
	}
	c.ReversalID = reversalID
	c.ReplacementID = replacementID
	c.Status = CorrectionApplied
	return nil
}
