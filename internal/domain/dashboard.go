package domain

import (
	"sort"
	"time"

	"github.com/vfg2006/adsmaster-api/pkg/utils"
)

type RiskLabel string

const (
	RiskAbort     RiskLabel = "ABORT"
	RiskWarning   RiskLabel = "WARNING"
	RiskSpend     RiskLabel = "SPEND"
	RiskIdle      RiskLabel = "IDLE"
	RiskLoss      RiskLabel = "LOSS"
	RiskROIDrop   RiskLabel = "ROI DROP"
	RiskBrutalROI RiskLabel = "BRUTAL ROI"
	RiskProfit    RiskLabel = "PROFIT"
)

// Comissão assumida quando não há CPA desejado nem conversões
const defaultEstimatedCommission = 100.0

type DashboardFilters struct {
	Days      int    `json:"days"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DashboardTotals struct {
	Cost            float64 `json:"cost"`
	ConversionValue float64 `json:"conversion_value"`
	Profit          float64 `json:"profit"`
	Clicks          int64   `json:"clicks"`
	Impressions     int64   `json:"impressions"`
	Conversions     float64 `json:"conversions"`
	ROIPercent      float64 `json:"roi_percent"`
}

// RowMetrics são os indicadores calculados para cada linha da tabela
type RowMetrics struct {
	ClicksPerConversion float64   `json:"clicks_per_conversion"`
	AvgCPC              float64   `json:"avg_cpc"`
	CostPerConversion   float64   `json:"cost_per_conversion"`
	ROIPercent          float64   `json:"roi_percent"`
	EstimatedCommission float64   `json:"estimated_commission"`
	RiskLabel           RiskLabel `json:"risk_label"`
}

type DashboardRow struct {
	*CampaignMetricView
	RowMetrics
}

// DailyTotals é um ponto da série diária exibida no gráfico
type DailyTotals struct {
	Date            string  `json:"date"`
	Cost            float64 `json:"cost"`
	ConversionValue float64 `json:"conversion_value"`
	Profit          float64 `json:"profit"`
}

type DashboardResponse struct {
	Filters DashboardFilters `json:"filters"`
	Totals  DashboardTotals  `json:"totals"`
	Series  []DailyTotals    `json:"series"`
	Rows    []*DashboardRow  `json:"rows"`
}

// CalculateRowMetrics calcula os indicadores derivados e o rótulo de risco de uma métrica
func CalculateRowMetrics(m *CampaignMetric) RowMetrics {
	metrics := RowMetrics{}
	if m == nil {
		return metrics
	}

	if m.Conversions > 0 {
		metrics.ClicksPerConversion = utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / m.Conversions)
		metrics.CostPerConversion = utils.RoundWithTwoDecimalPlace(m.Cost / m.Conversions)
	}

	if m.Clicks > 0 {
		metrics.AvgCPC = utils.RoundWithTwoDecimalPlace(m.Cost / float64(m.Clicks))
	}

	roi := 0.0
	if m.Cost > 0 {
		roi = (m.Profit / m.Cost) * 100
	}
	metrics.ROIPercent = utils.RoundWithTwoDecimalPlace(roi)

	commission := EstimatedCommission(m)
	metrics.EstimatedCommission = utils.RoundWithTwoDecimalPlace(commission)
	metrics.RiskLabel = classifyRisk(m, commission, roi)

	return metrics
}

// EstimatedCommission usa o CPA desejado, depois o valor médio por conversão e por fim um padrão fixo
func EstimatedCommission(m *CampaignMetric) float64 {
	if m.TargetCPA > 0 {
		return m.TargetCPA
	}

	if m.Conversions > 0 {
		return m.ConversionValue / m.Conversions
	}

	return defaultEstimatedCommission
}

func classifyRisk(m *CampaignMetric, commission, roi float64) RiskLabel {
	if m.Conversions == 0 {
		switch {
		case commission > 0 && m.Cost > 0.7*commission:
			return RiskAbort
		case commission > 0 && m.Cost > 0.5*commission:
			return RiskWarning
		case m.Cost > 0:
			return RiskSpend
		default:
			return RiskIdle
		}
	}

	switch {
	case m.Profit < 0:
		return RiskLoss
	case m.Profit < 0.4*m.ConversionValue:
		return RiskROIDrop
	case roi > 100:
		return RiskBrutalROI
	default:
		return RiskProfit
	}
}

// SumTotals agrega as linhas exibidas no dashboard
func SumTotals(rows []*CampaignMetricView) DashboardTotals {
	totals := DashboardTotals{}

	for _, row := range rows {
		if row == nil {
			continue
		}

		totals.Cost += row.Cost
		totals.ConversionValue += row.ConversionValue
		totals.Profit += row.Profit
		totals.Clicks += row.Clicks
		totals.Impressions += row.Impressions
		totals.Conversions += row.Conversions
	}

	totals.Cost = utils.RoundWithTwoDecimalPlace(totals.Cost)
	totals.ConversionValue = utils.RoundWithTwoDecimalPlace(totals.ConversionValue)
	totals.Profit = utils.RoundWithTwoDecimalPlace(totals.Profit)
	totals.Conversions = utils.RoundWithTwoDecimalPlace(totals.Conversions)

	if totals.Cost > 0 {
		totals.ROIPercent = utils.RoundWithTwoDecimalPlace((totals.Profit / totals.Cost) * 100)
	}

	return totals
}

// GroupByDate soma custo, valor de conversão e lucro por dia, em ordem crescente de data
func GroupByDate(rows []*CampaignMetricView) []DailyTotals {
	byDate := make(map[string]*DailyTotals)
	for _, row := range rows {
		if row == nil {
			continue
		}

		key := row.Date.Format(time.DateOnly)
		day, ok := byDate[key]
		if !ok {
			day = &DailyTotals{Date: key}
			byDate[key] = day
		}

		day.Cost += row.Cost
		day.ConversionValue += row.ConversionValue
		day.Profit += row.Profit
	}

	series := make([]DailyTotals, 0, len(byDate))
	for _, day := range byDate {
		series = append(series, DailyTotals{
			Date:            day.Date,
			Cost:            utils.RoundWithTwoDecimalPlace(day.Cost),
			ConversionValue: utils.RoundWithTwoDecimalPlace(day.ConversionValue),
			Profit:          utils.RoundWithTwoDecimalPlace(day.Profit),
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

// NewDashboardFilters monta o intervalo [hoje - (days-1), hoje]
func NewDashboardFilters(days int, today time.Time) DashboardFilters {
	start := today.AddDate(0, 0, -(days - 1))

	return DashboardFilters{
		Days:      days,
		StartDate: start.Format(time.DateOnly),
		EndDate:   today.Format(time.DateOnly),
	}
}
