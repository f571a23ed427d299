// Package ledger holds the double-entry engine: the chart-of-accounts registry, the
// transaction validator, the aggregator and the correction engine. Everything here is a
// pure computation over immutable inputs; callers own all I/O.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
)

// Registry is a read-only snapshot of the chart of accounts.
type Registry struct {
	byID   map[string]domain.Account
	sorted []domain.Account // ascending code
}

// NewRegistry builds a registry from externally loaded accounts. Accounts with duplicate
// ids or codes, unknown types, or a normal balance contradicting their type are rejected.
func NewRegistry(accounts []domain.Account) (*Registry, error) {
	r := &Registry{
		byID:   make(map[string]domain.Account, len(accounts)),
		sorted: make([]domain.Account, 0, len(accounts)),
	}
	codes := make(map[string]string, len(accounts))

	var errs []error
	for _, acc := range accounts {
		if acc.AccountID == "" {
			errs = append(errs, fmt.Errorf("account %q has no id", acc.Code))
			continue
		}
		if _, dup := r.byID[acc.AccountID]; dup {
			errs = append(errs, fmt.Errorf("duplicate account id %s", acc.AccountID))
			continue
		}
		if other, dup := codes[acc.Code]; dup {
			errs = append(errs, fmt.Errorf("account code %s used by both %s and %s", acc.Code, other, acc.AccountID))
			continue
		}
		if err := acc.CheckNormalBalance(); err != nil {
			errs = append(errs, err)
			continue
		}
		codes[acc.Code] = acc.AccountID
		r.byID[acc.AccountID] = acc
		r.sorted = append(r.sorted, acc)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: invalid chart of accounts: %w", apperrors.ErrValidation, errors.Join(errs...))
	}

	sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i].Code < r.sorted[j].Code })
	return r, nil
}

// Lookup returns the active account with the given id, or apperrors.ErrNotFound.
func (r *Registry) Lookup(accountID string) (domain.Account, error) {
	acc, ok := r.byID[accountID]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	if !acc.IsActive {
		return domain.Account{}, fmt.Errorf("%w: account %s is inactive", apperrors.ErrNotFound, accountID)
	}
	return acc, nil
}

// Describe returns the account regardless of its active flag. Historical postings keep
// their classification after an account is retired.
func (r *Registry) Describe(accountID string) (domain.Account, bool) {
	acc, ok := r.byID[accountID]
	return acc, ok
}

// ListByType returns active accounts of the given types in ascending code order.
// With no types, every active account is returned.
func (r *Registry) ListByType(types ...domain.AccountType) []domain.Account {
	want := make(map[domain.AccountType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}

	out := make([]domain.Account, 0, len(r.sorted))
	for _, acc := range r.sorted {
		if !acc.IsActive {
			continue
		}
		if len(want) > 0 && !want[acc.AccountType] {
			continue
		}
		out = append(out, acc)
	}
	return out
}

// Len is the number of accounts in the snapshot, active or not.
func (r *Registry) Len() int {
	return len(r.sorted)
}
