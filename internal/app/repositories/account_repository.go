package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

var accountColumns = []string{
	"id", "user_id", "type", "provider", "provider_account_id",
	"refresh_token", "access_token", "expires_at", "token_type", "scope", "id_token",
}

// AccountRepository handles federated account links
type AccountRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanAccount(row pgx.CollectableRow) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(&a.ID, &a.UserID, &a.Type, &a.Provider, &a.ProviderAccountID,
		&a.RefreshToken, &a.AccessToken, &a.ExpiresAt, &a.TokenType, &a.Scope, &a.IDToken)
	return a, err
}

// Upsert links an account to a user. A second sign-in with the same provider
// account refreshes the stored tokens instead of failing.
func (r *AccountRepository) Upsert(ctx context.Context, account *models.Account) (*models.Account, error) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("accounts").
		Columns(accountColumns...).
		Values(account.ID, account.UserID, account.Type, account.Provider, account.ProviderAccountID,
			account.RefreshToken, account.AccessToken, account.ExpiresAt, account.TokenType, account.Scope, account.IDToken).
		Suffix(`ON CONFLICT ON CONSTRAINT accounts_provider_account_key DO UPDATE SET
			refresh_token = EXCLUDED.refresh_token,
			access_token = EXCLUDED.access_token,
			expires_at = EXCLUDED.expires_at,
			token_type = EXCLUDED.token_type,
			scope = EXCLUDED.scope,
			id_token = EXCLUDED.id_token
			RETURNING ` + strings.Join(accountColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert account query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error upserting account: %w", err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, scanAccount)
	if err != nil {
		logger.Error().Err(err).Str("provider", account.Provider).Msg("Error upserting account")
		return nil, fmt.Errorf("error upserting account: %w", err)
	}
	return stored, nil
}

// ListByUserID returns every account linked to a user
func (r *AccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("provider ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list accounts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, scanAccount)
	if err != nil {
		return nil, fmt.Errorf("error scanning accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAll removes every account
func (r *AccountRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, r.sb, "accounts")
}
