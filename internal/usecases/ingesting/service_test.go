package ingesting

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adsmaster-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adsmaster-api/internal/domain"
	"github.com/vfg2006/adsmaster-api/pkg/apiErrors"
	"github.com/vfg2006/adsmaster-api/pkg/log"
	"github.com/vfg2006/adsmaster-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	service  *Service
	accounts *mocks.MockAccountRepository
	metrics  *mocks.MockCampaignMetricRepository
	observer *metrics.Metrics
}

func newServiceFixture(t *testing.T) *serviceFixture {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	campaignMetrics := mocks.NewMockCampaignMetricRepository(ctrl)
	observer := metrics.New(prometheus.NewRegistry())

	svc := NewService(accounts, campaignMetrics, observer).(*Service)
	svc.resolver.generateID = func() (string, error) { return "ACC000000001", nil }

	return &serviceFixture{
		service:  svc,
		accounts: accounts,
		metrics:  campaignMetrics,
		observer: observer,
	}
}

func TestService_Ingest(t *testing.T) {
	ctx := context.Background()

	t.Run("grava a métrica e devolve o lucro", func(t *testing.T) {
		f := newServiceFixture(t)

		f.accounts.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(true, nil)
		f.metrics.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.CampaignMetric) (int64, error) {
				assert.Equal(t, "ACC000000001", m.AccountID)
				assert.Equal(t, "Search - Brand", m.CampaignName)
				assert.Equal(t, 150.0, m.Profit)
				return 1, nil
			})

		result, err := f.service.Ingest(ctx, validPayload())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 150.0, result.Profit)

		assert.Equal(t, 1.0, testutil.ToFloat64(f.observer.Ingestions.WithLabelValues(metrics.ResultSuccess)))
		assert.Equal(t, 1.0, testutil.ToFloat64(f.observer.AccountsCreated))
	})

	t.Run("reenvio do mesmo dia usa a conta existente", func(t *testing.T) {
		f := newServiceFixture(t)

		payload := validPayload()
		payload.Cost = domain.Num(80)
		payload.ConversionValue = domain.Num(200)

		f.accounts.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, nil)
		f.accounts.EXPECT().
			GetByGoogleAdsAccountID(gomock.Any(), "123-456-7890").
			Return(&domain.Account{ID: "EXISTING0001"}, nil)
		f.metrics.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.CampaignMetric) (int64, error) {
				assert.Equal(t, "EXISTING0001", m.AccountID)
				return 1, nil
			})

		result, err := f.service.Ingest(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, 120.0, result.Profit)
		assert.Equal(t, 0.0, testutil.ToFloat64(f.observer.AccountsCreated))
	})

	t.Run("payload inválido não toca no banco", func(t *testing.T) {
		f := newServiceFixture(t)

		payload := validPayload()
		payload.CampaignName = ""

		result, err := f.service.Ingest(ctx, payload)
		require.Error(t, err)
		assert.Nil(t, result)

		var ingestionErr *IngestionError
		require.True(t, errors.As(err, &ingestionErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, ingestionErr.Code)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.observer.Ingestions.WithLabelValues(metrics.ResultValidationError)))
	})

	t.Run("falha ao resolver a conta vira erro de persistência", func(t *testing.T) {
		f := newServiceFixture(t)

		f.accounts.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

		_, err := f.service.Ingest(ctx, validPayload())
		require.Error(t, err)

		var ingestionErr *IngestionError
		require.True(t, errors.As(err, &ingestionErr))
		assert.ErrorIs(t, err, ErrResolveAccount)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, ingestionErr.Code)
		assert.Contains(t, ingestionErr.Details, "connection refused")
	})

	t.Run("falha no upsert vira erro de persistência", func(t *testing.T) {
		f := newServiceFixture(t)

		f.accounts.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(true, nil)
		f.metrics.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))

		_, err := f.service.Ingest(ctx, validPayload())
		require.Error(t, err)

		var ingestionErr *IngestionError
		require.True(t, errors.As(err, &ingestionErr))
		assert.ErrorIs(t, err, ErrUpsertMetric)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, ingestionErr.Code)
		assert.Contains(t, ingestionErr.Details, "disk full")
		assert.Equal(t, 1.0, testutil.ToFloat64(f.observer.Ingestions.WithLabelValues(metrics.ResultStorageError)))
	})
}
