package ingesting

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/adsmaster-api/infrastructure/repository"
	"github.com/vfg2006/adsmaster-api/internal/domain"
	"github.com/vfg2006/adsmaster-api/pkg/apiErrors"
	"github.com/vfg2006/adsmaster-api/pkg/log"
	"github.com/vfg2006/adsmaster-api/pkg/metrics"
)

type Ingester interface {
	Ingest(ctx context.Context, payload *domain.AdsWebhookPayload) (*domain.IngestionResult, error)
}

type Service struct {
	resolver *AccountResolver
	metrics  repository.CampaignMetricRepository
	observer *metrics.Metrics
}

func NewService(
	accountRepository repository.AccountRepository,
	campaignMetricRepository repository.CampaignMetricRepository,
	observer *metrics.Metrics,
) Ingester {
	return &Service{
		resolver: NewAccountResolver(accountRepository, observer),
		metrics:  campaignMetricRepository,
		observer: observer,
	}
}

// Ingest valida e normaliza antes de tocar no banco: payload rejeitado não cria conta nem métrica
func (s *Service) Ingest(ctx context.Context, payload *domain.AdsWebhookPayload) (*domain.IngestionResult, error) {
	startedAt := time.Now()

	metric, err := Normalize(payload)
	if err != nil {
		s.observer.ObserveIngestion(metrics.ResultValidationError, startedAt)
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"google_ads_account_id": strings.TrimSpace(payload.GoogleAdsAccountID),
		"campaign_name":         metric.CampaignName,
		"date":                  payload.Date,
	})

	accountID, err := s.resolver.Resolve(ctx, payload.GoogleAdsAccountID, payload.AccountName)
	if err != nil {
		s.observer.ObserveIngestion(metrics.ResultStorageError, startedAt)
		logger.WithError(err).Error("Falha ao resolver a conta do webhook")
		return nil, storageError(ErrResolveAccount, err)
	}
	metric.AccountID = accountID

	if _, err := s.metrics.Upsert(ctx, metric); err != nil {
		s.observer.ObserveIngestion(metrics.ResultStorageError, startedAt)
		logger.WithError(err).Error("Falha ao gravar a métrica da campanha")
		return nil, storageError(ErrUpsertMetric, err)
	}

	s.observer.ObserveUpsert(metric.Cost, metric.ConversionValue)
	s.observer.ObserveIngestion(metrics.ResultSuccess, startedAt)

	logger.WithField("profit", metric.Profit).Info("Métrica da campanha gravada")

	return &domain.IngestionResult{
		Success: true,
		Profit:  metric.Profit,
	}, nil
}

func storageError(base error, err error) *IngestionError {
	var ingestionErr *IngestionError
	if errors.As(err, &ingestionErr) {
		return ingestionErr
	}
	return NewIngestionError(base, apiErrors.ErrDatabaseOperation, err.Error())
}
