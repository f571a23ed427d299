package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	"github.com/SscSPs/simple_ledger/internal/models"
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/simple_ledger/internal/utils/mapping"
	"github.com/SscSPs/simple_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transactions and their entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `t.transaction_id, t.transaction_date, t.memo, t.kind, t.corrects_id, t.amount, t.created_at`

// SaveTransaction inserts a transaction and its entries in one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, vt ledger.ValidatedTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransaction(ctx, tx, vt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveCorrection inserts the reversal and the replacement together. A second reversal of the
// same original violates ux_transactions_single_reversal and is reported as ErrConflict.
func (r *PgxTransactionRepository) SaveCorrection(ctx context.Context, reversal, replacement ledger.ValidatedTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransaction(ctx, tx, reversal); err != nil {
		return err
	}
	if err := insertTransaction(ctx, tx, replacement); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertTransaction(ctx context.Context, tx pgx.Tx, vt ledger.ValidatedTransaction) error {
	if !vt.IsPersisted() {
		return apperrors.NewAppError(http.StatusInternalServerError, "transaction has no id", nil)
	}
	header := mapping.ToModelTransaction(vt)

	headerQuery := `
		INSERT INTO transactions (transaction_id, transaction_date, memo, kind, corrects_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, headerQuery,
		header.TransactionID,
		header.TransactionDate,
		header.Memo,
		header.Kind,
		header.CorrectsID,
		header.Amount,
		header.CreatedAt,
	)
	if err != nil {
		return mapConstraintError(err, "failed to insert transaction "+header.TransactionID)
	}

	entryQuery := `
		INSERT INTO journal_entries (transaction_id, line_no, account_id, side, amount, memo)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, e := range mapping.ToModelJournalEntries(vt) {
		batch.Queue(entryQuery, e.TransactionID, e.LineNo, e.AccountID, e.Side, e.Amount, e.Memo)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapConstraintError(err, "failed to insert entries for transaction "+header.TransactionID)
	}
	return nil
}

// FindTransactionByID retrieves a transaction and its entries.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*ledger.ValidatedTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.transaction_id = $1;`

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find transaction by ID "+transactionID, err)
	}
	header, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find transaction by ID "+transactionID, err)
	}

	txs, err := r.attachEntries(ctx, []models.Transaction{header})
	if err != nil {
		return nil, err
	}
	return &txs[0], nil
}

// ListTransactions retrieves transactions newest first using keyset pagination over
// (transaction_date, created_at, transaction_id).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]ledger.ValidatedTransaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	query, args, err := buildListQuery(filter, limit+1)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions", err)
	}
	headers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan transaction rows", err)
	}

	var nextToken *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{Date: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextToken = &token
	}
	if len(headers) == 0 {
		return []ledger.ValidatedTransaction{}, nil, nil
	}

	txs, err := r.attachEntries(ctx, headers)
	if err != nil {
		return nil, nil, err
	}
	return txs, nextToken, nil
}

// buildListQuery renders the filtered, keyset-paginated header query.
func buildListQuery(filter domain.TransactionFilter, fetchLimit int) (string, []any, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Keyword != "" {
		p := arg(likePattern(filter.Keyword))
		conditions = append(conditions, `(t.memo ILIKE `+p+` OR EXISTS (
			SELECT 1 FROM journal_entries je WHERE je.transaction_id = t.transaction_id AND je.memo ILIKE `+p+`))`)
	}
	if filter.From != nil {
		conditions = append(conditions, `t.transaction_date >= `+arg(filter.From.Time()))
	}
	if filter.To != nil {
		conditions = append(conditions, `t.transaction_date <= `+arg(filter.To.Time()))
	}
	if filter.ExcludeCorrected {
		conditions = append(conditions, `t.kind <> `+arg(string(domain.KindReversal)),
			`NOT EXISTS (SELECT 1 FROM transactions c WHERE c.corrects_id = t.transaction_id)`)
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeCursor(*filter.NextToken)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		conditions = append(conditions, fmt.Sprintf(`(t.transaction_date, t.created_at, t.transaction_id) < (%s, %s, %s)`,
			arg(cursor.Date), arg(cursor.CreatedAt), arg(cursor.ID)))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions t`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY t.transaction_date DESC, t.created_at DESC, t.transaction_id DESC LIMIT ` + arg(fetchLimit) + `;`
	return query, args, nil
}

// attachEntries loads the entries of every header in one query and rebuilds the transactions
// in header order.
func (r *PgxTransactionRepository) attachEntries(ctx context.Context, headers []models.Transaction) ([]ledger.ValidatedTransaction, error) {
	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}

	query := `
		SELECT transaction_id, line_no, account_id, side, amount, memo
		FROM journal_entries
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal entries", err)
	}
	entryRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan journal entry rows", err)
	}

	entries := make(map[string][]models.JournalEntry, len(headers))
	for _, e := range entryRows {
		entries[e.TransactionID] = append(entries[e.TransactionID], e)
	}

	out := make([]ledger.ValidatedTransaction, 0, len(headers))
	for _, h := range headers {
		vt, err := ledger.Restore(mapping.ToStoredTransaction(h, entries[h.TransactionID]))
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "stored transaction is corrupt", err)
		}
		out = append(out, vt)
	}
	return out, nil
}

// HasCorrections reports whether any transaction references transactionID as its original.
func (r *PgxTransactionRepository) HasCorrections(ctx context.Context, transactionID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE corrects_id = $1);`, transactionID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to check corrections of "+transactionID, err)
	}
	return exists, nil
}

// DeleteTransaction removes a transaction; its entries go with it through ON DELETE CASCADE.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return mapConstraintError(err, "failed to delete transaction "+transactionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

// likePattern escapes LIKE metacharacters and wraps keyword for a substring match.
func likePattern(keyword string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(keyword)) + "%"
}
