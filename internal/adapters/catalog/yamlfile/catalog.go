// Package yamlfile reads the chart of accounts from a YAML file.
package yamlfile

import (
	"context"
	"fmt"
	"os"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// accountNamespace derives stable account ids from codes, so reseeding never duplicates rows.
var accountNamespace = uuid.MustParse("8f2b5a4e-1c0d-4a8e-9a6b-3c7d2e1f0a99")

type accountEntry struct {
	ID            string `yaml:"id"`
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	NormalBalance string `yaml:"normal_balance"`
	Description   string `yaml:"description"`
	Active        *bool  `yaml:"active"`
}

type catalogFile struct {
	Accounts []accountEntry `yaml:"accounts"`
}

// Catalog is an in-memory chart of accounts loaded from YAML.
type Catalog struct {
	accounts []domain.Account
	byID     map[string]domain.Account
}

var _ portsrepo.AccountReader = (*Catalog)(nil)

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart of accounts file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML. Account ids default to a UUID derived from the code,
// the normal balance defaults to the one implied by the type, and accounts are active
// unless marked otherwise.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	c := &Catalog{byID: make(map[string]domain.Account, len(file.Accounts))}
	for i, e := range file.Accounts {
		acc, err := e.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: accounts[%d]: %w", apperrors.ErrValidation, i, err)
		}
		if _, dup := c.byID[acc.AccountID]; dup {
			return nil, fmt.Errorf("%w: accounts[%d]: duplicate account id %s", apperrors.ErrValidation, i, acc.AccountID)
		}
		c.byID[acc.AccountID] = acc
		c.accounts = append(c.accounts, acc)
	}
	return c, nil
}

func (e accountEntry) toDomain() (domain.Account, error) {
	if e.Code == "" {
		return domain.Account{}, fmt.Errorf("code is required")
	}
	if e.Name == "" {
		return domain.Account{}, fmt.Errorf("account %s: name is required", e.Code)
	}
	accountType, err := domain.ParseAccountType(e.Type)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", e.Code, err)
	}

	normal, _ := domain.NormalBalanceFor(accountType)
	if e.NormalBalance != "" {
		if normal, err = domain.ParseSide(e.NormalBalance); err != nil {
			return domain.Account{}, fmt.Errorf("account %s: %w", e.Code, err)
		}
	}

	id := e.ID
	if id == "" {
		id = uuid.NewSHA1(accountNamespace, []byte(e.Code)).String()
	}
	active := true
	if e.Active != nil {
		active = *e.Active
	}

	acc := domain.Account{
		AccountID:     id,
		Code:          e.Code,
		Name:          e.Name,
		AccountType:   accountType,
		NormalBalance: normal,
		Description:   e.Description,
		IsActive:      active,
	}
	if err := acc.CheckNormalBalance(); err != nil {
		return domain.Account{}, err
	}
	return acc, nil
}

// FindAccountByID returns the account with the given id, active or not.
func (c *Catalog) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	acc, ok := c.byID[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

// ListAccountsByTypes returns the accounts of the given types in file order.
func (c *Catalog) ListAccountsByTypes(_ context.Context, types []domain.AccountType) ([]domain.Account, error) {
	want := make(map[domain.AccountType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	out := make([]domain.Account, 0, len(c.accounts))
	for _, acc := range c.accounts {
		if len(want) == 0 || want[acc.AccountType] {
			out = append(out, acc)
		}
	}
	return out, nil
}
