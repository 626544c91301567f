package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/adsmaster-api/infrastructure/repository"
	"github.com/vfg2006/adsmaster-api/internal/domain"
	"github.com/vfg2006/adsmaster-api/pkg/log"
	"github.com/vfg2006/adsmaster-api/pkg/utils"
)

const (
	DefaultDays = 1
	MaxDays     = 365
)

var (
	ErrInvalidDays  = fmt.Errorf("days deve estar entre 1 e %d", MaxDays)
	ErrFetchMetrics = errors.New("erro ao buscar métricas de campanha")
)

type Reader interface {
	GetDashboard(ctx context.Context, days int) (*domain.DashboardResponse, error)
}

type Service struct {
	metrics  repository.CampaignMetricRepository
	location *time.Location
	now      func() time.Time
}

func NewService(metrics repository.CampaignMetricRepository, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}

	return &Service{
		metrics:  metrics,
		location: location,
		now:      time.Now,
	}
}

// GetDashboard lista as métricas de hoje - (days-1) até hoje no fuso configurado, com totais e rótulos de risco
func (s *Service) GetDashboard(ctx context.Context, days int) (*domain.DashboardResponse, error) {
	if days < 1 || days > MaxDays {
		return nil, ErrInvalidDays
	}

	today := utils.StartOfDay(s.now(), s.location)
	filters := domain.NewDashboardFilters(days, today)
	since := today.AddDate(0, 0, -(days - 1))

	views, err := s.metrics.ListBetween(ctx, since, today)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("days", days).Error("Falha ao listar métricas do dashboard")
		return nil, fmt.Errorf("%w: %v", ErrFetchMetrics, err)
	}

	rows := make([]*domain.DashboardRow, 0, len(views))
	for _, view := range views {
		rows = append(rows, &domain.DashboardRow{
			CampaignMetricView: view,
			RowMetrics:         domain.CalculateRowMetrics(&view.CampaignMetric),
		})
	}

	return &domain.DashboardResponse{
		Filters: filters,
		Totals:  domain.SumTotals(views),
		Series:  domain.GroupByDate(views),
		Rows:    rows,
	}, nil
}
