package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txRepo          portsrepo.TransactionRepositoryFacade
	registrySvc     portssvc.RegistrySvc
	now             func() time.Time
	newID           func() string
	defaultPageSize int
	maxPageSize     int
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithClock overrides the clock used for creation timestamps and reversal dates.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// WithIDGenerator overrides how transaction ids are generated.
func WithIDGenerator(newID func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = newID
	}
}

// WithPageSizes sets the default and maximum page sizes for List.
func WithPageSizes(defaultSize, maxSize int) TransactionServiceOption {
	return func(s *transactionService) {
		s.defaultPageSize = defaultSize
		s.maxPageSize = maxSize
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, registrySvc portssvc.RegistrySvc, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txRepo:          repo,
		registrySvc:     registrySvc,
		now:             time.Now,
		newID:           uuid.NewString,
		defaultPageSize: 20,
		maxPageSize:     100,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) Validate(ctx context.Context, candidate domain.CandidateTransaction) (*ledger.ValidatedTransaction, error) {
	registry, err := s.registrySvc.Registry(ctx)
	if err != nil {
		return nil, err
	}

	if errs := standardOnly(candidate); len(errs) > 0 {
		return nil, errs
	}

	validated, err := ledger.NewValidator(registry).Validate(candidate)
	if err != nil {
		s.LogDebug(ctx, "Transaction rejected", slog.String("error", err.Error()))
		return nil, err
	}
	return &validated, nil
}

// standardOnly rejects reversal and replacement kinds, which only the correction flow may create.
func standardOnly(candidate domain.CandidateTransaction) domain.ValidationErrors {
	if candidate.Kind == "" || candidate.Kind == domain.KindStandard {
		return nil
	}
	return domain.ValidationErrors{{
		Code:       domain.CodeKindInvalid,
		Field:      "kind",
		EntryIndex: domain.NoEntry,
		Message:    fmt.Sprintf("%s transactions can only be created by a correction", candidate.Kind),
	}}
}

func (s *transactionService) Create(ctx context.Context, candidate domain.CandidateTransaction) (*ledger.ValidatedTransaction, error) {
	validated, err := s.Validate(ctx, candidate)
	if err != nil {
		return nil, err
	}

	stored := validated.WithID(s.newID(), s.now().UTC())
	if err := s.txRepo.SaveTransaction(ctx, stored); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", stored.ID()))
		return nil, persistenceError("save transaction", err)
	}

	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", stored.ID()),
		slog.String("date", stored.Date().String()),
		slog.Int64("amount", stored.DebitTotal()),
		slog.Int("entry_count", stored.EntryCount()))
	return &stored, nil
}

func (s *transactionService) Get(ctx context.Context, transactionID string) (*ledger.ValidatedTransaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, persistenceError("find transaction", err)
	}
	return tx, nil
}

func (s *transactionService) List(ctx context.Context, filter domain.TransactionFilter) ([]ledger.ValidatedTransaction, *string, error) {
	if filter.Limit <= 0 {
		filter.Limit = s.defaultPageSize
	}
	if filter.Limit > s.maxPageSize {
		filter.Limit = s.maxPageSize
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, nil, fmt.Errorf("%w: 'to' date %s is before 'from' date %s", apperrors.ErrValidation, filter.To, filter.From)
	}

	txs, next, err := s.txRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("keyword", filter.Keyword))
		return nil, nil, persistenceError("list transactions", err)
	}
	return txs, next, nil
}

// Correct walks the correction through Pending, Confirmed and Applied. The pair is written
// in a single persistence call, so no caller ever sees only one half.
func (s *transactionService) Correct(ctx context.Context, transactionID string, req domain.CorrectionRequest) (*portssvc.CorrectionResult, error) {
	correction := domain.NewCorrection(transactionID)

	original, err := s.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	corrected, err := s.txRepo.HasCorrections(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check existing corrections", slog.String("transaction_id", transactionID))
		return nil, persistenceError("check existing corrections", err)
	}
	if corrected {
		return nil, fmt.Errorf("%w: transaction %s has already been corrected", apperrors.ErrConflict, transactionID)
	}

	registry, err := s.registrySvc.Registry(ctx)
	if err != nil {
		return nil, err
	}

	engine := ledger.NewCorrectionEngine(ledger.NewValidator(registry), ledger.WithClock(s.now))
	pair, err := engine.Correct(*original, req)
	if err != nil {
		s.LogDebug(ctx, "Correction rejected", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, err
	}
	if err := correction.Confirm(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	reversal := pair.Reversal.WithID(s.newID(), now)
	replacement := pair.Replacement.WithID(s.newID(), now)

	if err := s.txRepo.SaveCorrection(ctx, reversal, replacement); err != nil {
		s.LogError(ctx, err, "Failed to save correction",
			slog.String("transaction_id", transactionID),
			slog.String("reversal_id", reversal.ID()),
			slog.String("replacement_id", replacement.ID()))
		return nil, persistenceError("save correction", err)
	}
	if err := correction.Apply(reversal.ID(), replacement.ID()); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction corrected",
		slog.String("transaction_id", transactionID),
		slog.String("reversal_id", reversal.ID()),
		slog.String("replacement_id", replacement.ID()))
	return &portssvc.CorrectionResult{
		Correction:  *correction,
		Reversal:    reversal,
		Replacement: replacement,
	}, nil
}

func (s *transactionService) Delete(ctx context.Context, transactionID string) error {
	tx, err := s.Get(ctx, transactionID)
	if err != nil {
		return err
	}
	if tx.CorrectsID() != "" {
		return fmt.Errorf("%w: transaction %s is part of the correction of %s", apperrors.ErrConflict, transactionID, tx.CorrectsID())
	}

	corrected, err := s.txRepo.HasCorrections(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check existing corrections", slog.String("transaction_id", transactionID))
		return persistenceError("check existing corrections", err)
	}
	if corrected {
		return fmt.Errorf("%w: transaction %s has corrections and cannot be deleted", apperrors.ErrConflict, transactionID)
	}

	if err := s.txRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return persistenceError("delete transaction", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
