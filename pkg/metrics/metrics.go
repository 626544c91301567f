package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adsmaster"

// Resultados possíveis de uma ingestão
const (
	ResultSuccess         = "success"
	ResultValidationError = "validation_error"
	ResultStorageError    = "storage_error"
)

// Metrics agrupa as métricas Prometheus da ingestão.
// Um *Metrics nil é válido e ignora todas as observações.
type Metrics struct {
	Ingestions        *prometheus.CounterVec
	IngestionLatency  prometheus.Histogram
	AccountsCreated   prometheus.Counter
	MetricUpserts     prometheus.Counter
	IngestedCost      prometheus.Counter
	IngestedConvValue prometheus.Counter
	StaleAccounts     prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registra as métricas no registry informado
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Ingestions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_ingestions_total",
				Help:      "Total de chamadas de ingestão processadas, por resultado",
			},
			[]string{"result"},
		),
		IngestionLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "webhook_ingestion_duration_seconds",
				Help:      "Duração do processamento de uma ingestão",
				Buckets:   prometheus.DefBuckets,
			},
		),
		AccountsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_created_total",
				Help:      "Contas criadas a partir de um google_ads_account_id inédito",
			},
		),
		MetricUpserts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "campaign_metric_upserts_total",
				Help:      "Métricas de campanha gravadas ou sobrescritas",
			},
		),
		IngestedCost: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingested_cost_total",
				Help:      "Soma dos custos recebidos (inclui reenvios do mesmo dia)",
			},
		),
		IngestedConvValue: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingested_conversion_value_total",
				Help:      "Soma dos valores de conversão recebidos (inclui reenvios do mesmo dia)",
			},
		),
		StaleAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stale_accounts",
				Help:      "Contas sem métricas recentes na última verificação",
			},
		),
		gatherer: reg,
	}
}

// Handler expõe as métricas no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveIngestion(result string, startedAt time.Time) {
	if m == nil {
		return
	}
	m.Ingestions.WithLabelValues(result).Inc()
	m.IngestionLatency.Observe(time.Since(startedAt).Seconds())
}

func (m *Metrics) ObserveAccountCreated() {
	if m == nil {
		return
	}
	m.AccountsCreated.Inc()
}

func (m *Metrics) ObserveUpsert(cost, conversionValue float64) {
	if m == nil {
		return
	}
	m.MetricUpserts.Inc()

	// Counters não aceitam valores negativos
	if cost > 0 {
		m.IngestedCost.Add(cost)
	}
	if conversionValue > 0 {
		m.IngestedConvValue.Add(conversionValue)
	}
}

func (m *Metrics) SetStaleAccounts(n int) {
	if m == nil {
		return
	}
	m.StaleAccounts.Set(float64(n))
}
