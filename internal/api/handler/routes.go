package handler

import (
	"net/http"

	"github.com/vfg2006/adsmaster-api/internal/api/handler/router"
	"github.com/vfg2006/adsmaster-api/internal/usecases/dashboard"
	"github.com/vfg2006/adsmaster-api/internal/usecases/ingesting"
	"github.com/vfg2006/adsmaster-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Webhooks(service ingesting.Ingester, apiKey string) []router.Route {
	return []router.Route{
		{
			Path:        "/api/webhooks/ads",
			Method:      http.MethodPost,
			Handler:     IngestAdsWebhook(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.APIKeyMiddleware(apiKey)},
		},
	}
}

func Dashboard(service dashboard.Reader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func CronJobs(services CronJobServices, apiKey string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.APIKeyMiddleware(apiKey)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.APIKeyMiddleware(apiKey)},
		},
	}
}
