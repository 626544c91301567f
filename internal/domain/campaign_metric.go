package domain

import (
	"time"

	"github.com/vfg2006/adsmaster-api/pkg/utils"
)

const DefaultCampaignStatus = "UNKNOWN"

// CampaignMetric é a linha diária de uma campanha, única por (conta, campanha, data)
type CampaignMetric struct {
	ID                               int64     `json:"id"`
	AccountID                        string    `json:"account_id"`
	CampaignName                     string    `json:"campaign_name"`
	Date                             time.Time `json:"date"`
	Budget                           float64   `json:"budget"`
	Status                           string    `json:"status"`
	Impressions                      int64     `json:"impressions"`
	Clicks                           int64     `json:"clicks"`
	Cost                             float64   `json:"cost"`
	Conversions                      float64   `json:"conversions"`
	ConversionValue                  float64   `json:"conversion_value"`
	Profit                           float64   `json:"profit"`
	SearchAbsoluteTopImpressionShare float64   `json:"search_absolute_top_impression_share"`
	SearchTopImpressionShare         float64   `json:"search_top_impression_share"`
	SearchImpressionShare            float64   `json:"search_impression_share"`
	TargetCPA                        float64   `json:"target_cpa"`
	AvgTargetCPA                     float64   `json:"avg_target_cpa"`
	CreatedAt                        time.Time `json:"created_at"`
	UpdatedAt                        time.Time `json:"updated_at"`
}

// CampaignMetricView é a métrica lida pelo dashboard, com a conta dona
type CampaignMetricView struct {
	CampaignMetric
	Account *AccountRef `json:"account"`
}

// CalculateProfit deriva o lucro a partir de valores já arredondados em centavos
func CalculateProfit(conversionValue, cost float64) float64 {
	return utils.RoundWithTwoDecimalPlace(conversionValue - cost)
}
