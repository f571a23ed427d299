package models

// Account is a row of the accounts table.
type Account struct {
	AccountID     string `db:"account_id"`
	Code          string `db:"code"`
	Name          string `db:"name"`
	AccountType   string `db:"account_type"`
	NormalBalance string `db:"normal_balance"` // debit or credit, must agree with account_type
	Description   string `db:"description"`
	IsActive      bool   `db:"is_active"`
}
