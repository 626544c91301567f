package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adsmaster-api/infrastructure/database/postgres"
	"github.com/vfg2006/adsmaster-api/internal/domain"
)

const accountsTable = "accounts a"

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

type AccountRepository interface {
	GetByGoogleAdsAccountID(ctx context.Context, googleAdsAccountID string) (*domain.Account, error)
	CreateIfNotExists(ctx context.Context, account *domain.Account) (bool, error)
	ListWithLastMetricDate(ctx context.Context) ([]*domain.AccountActivity, error)
}

type accountRepository struct {
	conn postgres.Queryer
}

func NewAccountRepository(conn postgres.Queryer) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// GetByGoogleAdsAccountID retorna nil, nil quando a conta ainda não existe
func (r *accountRepository) GetByGoogleAdsAccountID(ctx context.Context, googleAdsAccountID string) (*domain.Account, error) {
	accountSQL, args, err := squirrel.
		Select("a.id, a.google_ads_account_id, a.name, a.created_at").
		From(accountsTable).
		Where(squirrel.Eq{"a.google_ads_account_id": googleAdsAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc := &domain.Account{}
	err = r.conn.QueryRowContext(ctx, accountSQL, args...).Scan(
		&acc.ID,
		&acc.GoogleAdsAccountID,
		&acc.Name,
		&acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return acc, nil
}

// CreateIfNotExists insere a conta apenas se o id externo ainda não existir.
// Retorna false quando outra requisição criou a conta antes.
func (r *accountRepository) CreateIfNotExists(ctx context.Context, account *domain.Account) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "google_ads_account_id", "name").
		Values(account.ID, account.GoogleAdsAccountID, account.Name).
		Suffix("ON CONFLICT (google_ads_account_id) DO NOTHING RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, wrapDatabaseError(err)
	}

	return true, nil
}

// ListWithLastMetricDate lista todas as contas com a data da métrica mais recente, nil se nunca recebeu métricas
func (r *accountRepository) ListWithLastMetricDate(ctx context.Context) ([]*domain.AccountActivity, error) {
	query, args, err := squirrel.
		Select("a.id, a.google_ads_account_id, a.name, a.created_at, MAX(cm.date)").
		From(accountsTable).
		LeftJoin("campaign_metrics cm ON cm.account_id = a.id").
		GroupBy("a.id, a.google_ads_account_id, a.name, a.created_at").
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.AccountActivity, 0)
	for rows.Next() {
		activity := &domain.AccountActivity{}
		var lastDate sql.NullTime

		if err := rows.Scan(
			&activity.ID,
			&activity.GoogleAdsAccountID,
			&activity.Name,
			&activity.CreatedAt,
			&lastDate,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}

		if lastDate.Valid {
			d := dateOnly(lastDate.Time)
			activity.LastMetricDate = &d
		}

		accounts = append(accounts, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func wrapDatabaseError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}
