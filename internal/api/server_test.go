package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adsmaster-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adsmaster-api/internal/api/handler"
	"github.com/vfg2006/adsmaster-api/internal/config"
	"github.com/vfg2006/adsmaster-api/internal/usecases/dashboard"
	"github.com/vfg2006/adsmaster-api/internal/usecases/ingesting"
	"github.com/vfg2006/adsmaster-api/pkg/metrics"
	"github.com/vfg2006/adsmaster-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) *Server {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	campaignMetrics := mocks.NewMockCampaignMetricRepository(ctrl)
	observer := metrics.New(prometheus.NewRegistry())

	cfg := &config.Config{
		Server:  config.Server{Host: "127.0.0.1", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		Webhook: config.Webhook{APIKey: "chave"},
	}

	srv, err := New(
		cfg,
		nil,
		ingesting.NewService(accounts, campaignMetrics, observer),
		dashboard.NewService(campaignMetrics, nil),
		observer.Handler(),
		handler.CronJobServices{},
	)
	require.NoError(t, err)
	return srv
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	t.Run("healthcheck", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	})

	t.Run("webhook sem chave", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhooks/ads", strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("métricas prometheus", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "adsmaster_accounts_created_total")
	})

	t.Run("rota inexistente responde JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "RES_001")
	})

	t.Run("método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/webhooks/ads", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("cors para origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/webhooks/ads", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
