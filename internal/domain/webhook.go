package domain

// AdsWebhookPayload é o corpo enviado pelo script do Google Ads.
// Um eventual campo "profit" é descartado: o lucro é sempre calculado no servidor.
type AdsWebhookPayload struct {
	GoogleAdsAccountID string `json:"google_ads_account_id"`
	AccountName        string `json:"account_name"`
	CampaignName       string `json:"campaign_name"`
	Date               string `json:"date"`
	Status             string `json:"status"`

	Budget                           OptionalNumber `json:"budget"`
	Impressions                      OptionalNumber `json:"impressions"`
	Clicks                           OptionalNumber `json:"clicks"`
	Cost                             OptionalNumber `json:"cost"`
	Conversions                      OptionalNumber `json:"conversions"`
	ConversionValue                  OptionalNumber `json:"conversion_value"`
	SearchAbsoluteTopImpressionShare OptionalNumber `json:"search_absolute_top_impression_share"`
	SearchTopImpressionShare         OptionalNumber `json:"search_top_impression_share"`
	SearchImpressionShare            OptionalNumber `json:"search_impression_share"`
	TargetCPA                        OptionalNumber `json:"target_cpa"`
	AvgTargetCPA                     OptionalNumber `json:"avg_target_cpa"`
}

type IngestionResult struct {
	Success bool    `json:"success"`
	Profit  float64 `json:"profit"`
}
