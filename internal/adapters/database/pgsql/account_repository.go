package pgsql

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/simple_ledger/internal/apperrors"
	"github.com/SscSPs/simple_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simple_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/simple_ledger/internal/models"
	"github.com/SscSPs/simple_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for the chart of accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, code, name, account_type, normal_balance, description, is_active`

// FindAccountByID retrieves an account by its ID, active or not.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find account by ID "+accountID, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find account by ID "+accountID, err)
	}
	acc := mapping.ToDomainAccount(row)
	return &acc, nil
}

// ListAccountsByTypes retrieves accounts of the given types ordered by code.
func (r *PgxAccountRepository) ListAccountsByTypes(ctx context.Context, types []domain.AccountType) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE cardinality($1::text[]) = 0 OR account_type = ANY($1::text[])
		ORDER BY code;
	`
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	rows, err := r.Pool.Query(ctx, query, typeNames)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query accounts", err)
	}
	accountRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan account rows", err)
	}
	accounts := mapping.ToDomainAccountSlice(accountRows)
	return accounts, nil
}

// UpsertAccounts inserts or updates accounts by id within a single database transaction.
func (r *PgxAccountRepository) UpsertAccounts(ctx context.Context, accounts []domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO accounts (account_id, code, name, account_type, normal_balance, description, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (account_id) DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			account_type = EXCLUDED.account_type,
			normal_balance = EXCLUDED.normal_balance,
			description = EXCLUDED.description,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		m := mapping.ToModelAccount(acc)
		batch.Queue(query,
			m.AccountID,
			m.Code,
			m.Name,
			m.AccountType,
			m.NormalBalance,
			m.Description,
			m.IsActive,
			now,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapConstraintError(err, "failed to upsert accounts")
	}
	return r.Commit(ctx, tx)
}
