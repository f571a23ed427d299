package models

import "time"

// Transaction is the header row of a recorded transaction.
type Transaction struct {
	TransactionID   string    `db:"transaction_id"`
	TransactionDate time.Time `db:"transaction_date"`
	Memo            string    `db:"memo"`
	Kind            string    `db:"kind"`
	CorrectsID      *string   `db:"corrects_id"` // Nullable; set only on reversal/replacement rows
	Amount          int64     `db:"amount"`      // debit total == credit total
	CreatedAt       time.Time `db:"created_at"`
}

// JournalEntry is one posting of a transaction. LineNo keeps insertion order.
type JournalEntry struct {
	TransactionID string `db:"transaction_id"`
	LineNo        int    `db:"line_no"`
	AccountID     string `db:"account_id"`
	Side          string `db:"side"`
	Amount        int64  `db:"amount"`
	Memo          string `db:"memo"`
}
