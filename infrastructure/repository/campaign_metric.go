package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adsmaster-api/infrastructure/database/postgres"
	"github.com/vfg2006/adsmaster-api/internal/domain"
)

const campaignMetricsTable = "campaign_metrics cm"

var campaignMetricColumns = []string{
	"account_id",
	"campaign_name",
	"date",
	"budget",
	"status",
	"impressions",
	"clicks",
	"cost",
	"conversions",
	"conversion_value",
	"profit",
	"search_absolute_top_impression_share",
	"search_top_impression_share",
	"search_impression_share",
	"target_cpa",
	"avg_target_cpa",
}

// colunas da chave natural não são reescritas no conflito
var campaignMetricKey = map[string]struct{}{
	"account_id":    {},
	"campaign_name": {},
	"date":          {},
}

const campaignMetricSelect = `cm.id, cm.account_id, cm.campaign_name, cm.date, cm.budget, cm.status,
	cm.impressions, cm.clicks, cm.cost, cm.conversions, cm.conversion_value, cm.profit,
	cm.search_absolute_top_impression_share, cm.search_top_impression_share, cm.search_impression_share,
	cm.target_cpa, cm.avg_target_cpa, cm.created_at, cm.updated_at`

//go:generate mockgen -source=campaign_metric.go -destination=mocks/campaign_metric.go -package=mocks

type CampaignMetricRepository interface {
	Upsert(ctx context.Context, metric *domain.CampaignMetric) (int64, error)
	ListBetween(ctx context.Context, since, until time.Time) ([]*domain.CampaignMetricView, error)
}

type campaignMetricRepository struct {
	conn postgres.Queryer
}

func NewCampaignMetricRepository(conn postgres.Queryer) CampaignMetricRepository {
	return &campaignMetricRepository{
		conn: conn,
	}
}

// Upsert grava a métrica substituindo todas as colunas de uma linha já existente para a mesma chave
func (r *campaignMetricRepository) Upsert(ctx context.Context, metric *domain.CampaignMetric) (int64, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_metrics").
		Columns(campaignMetricColumns...).
		Values(
			metric.AccountID,
			metric.CampaignName,
			metric.Date.Format(time.DateOnly),
			metric.Budget,
			metric.Status,
			metric.Impressions,
			metric.Clicks,
			metric.Cost,
			metric.Conversions,
			metric.ConversionValue,
			metric.Profit,
			metric.SearchAbsoluteTopImpressionShare,
			metric.SearchTopImpressionShare,
			metric.SearchImpressionShare,
			metric.TargetCPA,
			metric.AvgTargetCPA,
		).
		Suffix(upsertSuffix()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrapDatabaseError(err)
	}

	metric.ID = id
	return id, nil
}

func upsertSuffix() string {
	sets := make([]string, 0, len(campaignMetricColumns)+1)
	for _, col := range campaignMetricColumns {
		if _, isKey := campaignMetricKey[col]; isKey {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	sets = append(sets, "updated_at = NOW()")

	return "ON CONFLICT (account_id, campaign_name, date) DO UPDATE SET " +
		strings.Join(sets, ", ") +
		" RETURNING id"
}

// ListBetween lista as métricas com since <= data <= until, mais recentes primeiro e depois por nome de campanha
func (r *campaignMetricRepository) ListBetween(ctx context.Context, since, until time.Time) ([]*domain.CampaignMetricView, error) {
	query, args, err := squirrel.
		Select(campaignMetricSelect+", a.name, a.google_ads_account_id").
		From(campaignMetricsTable).
		Join("accounts a ON a.id = cm.account_id").
		Where(squirrel.GtOrEq{"cm.date": since.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"cm.date": until.Format(time.DateOnly)}).
		OrderBy("cm.date DESC", "cm.campaign_name ASC").
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

	metrics := make([]*domain.CampaignMetricView, 0)
	for rows.Next() {
		view := &domain.CampaignMetricView{Account: &domain.AccountRef{}}

		dest := append(metricDest(&view.CampaignMetric), &view.Account.Name, &view.Account.GoogleAdsAccountID)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a métrica: %w", err)
		}
		view.Date = dateOnly(view.Date)

		metrics = append(metrics, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return metrics, nil
}

func metricDest(m *domain.CampaignMetric) []interface{} {
	return []interface{}{
		&m.ID,
		&m.AccountID,
		&m.CampaignName,
		&m.Date,
		&m.Budget,
		&m.Status,
		&m.Impressions,
		&m.Clicks,
		&m.Cost,
		&m.Conversions,
		&m.ConversionValue,
		&m.Profit,
		&m.SearchAbsoluteTopImpressionShare,
		&m.SearchTopImpressionShare,
		&m.SearchImpressionShare,
		&m.TargetCPA,
		&m.AvgTargetCPA,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
