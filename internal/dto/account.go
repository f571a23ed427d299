package dto

import (
	"github.com/SscSPs/simple_ledger/internal/core/domain"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	NormalBalance domain.Side        `json:"normalBalance"`
	Description   string             `json:"description"`
	IsActive      bool               `json:"isActive"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Types []string `form:"type" binding:"omitempty,dive,accounttype"`
}

// AccountTypes converts the validated query values to account types.
func (p ListAccountsParams) AccountTypes() []domain.AccountType {
	if len(p.Types) == 0 {
		return nil
	}
	out := make([]domain.AccountType, 0, len(p.Types))
	for _, t := range p.Types {
		parsed, err := domain.ParseAccountType(t)
		if err == nil {
			out = append(out, parsed)
		}
	}
	return out
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Code:          acc.Code,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		NormalBalance: acc.NormalBalance,
		Description:   acc.Description,
		IsActive:      acc.IsActive,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
