package domain

import (
	"time"
)

const fallbackAccountNamePrefix = "Conta - "

// Account é a conta do Google Ads conhecida internamente
type Account struct {
	ID                 string    `json:"id"`
	GoogleAdsAccountID string    `json:"google_ads_account_id"`
	Name               string    `json:"name"`
	CreatedAt          time.Time `json:"created_at"`
}

// AccountRef é a parte da conta exibida junto de cada métrica do dashboard
type AccountRef struct {
	Name               string `json:"name"`
	GoogleAdsAccountID string `json:"google_ads_account_id"`
}

// AccountActivity associa uma conta à data da métrica mais recente recebida
type AccountActivity struct {
	Account
	LastMetricDate *time.Time `json:"last_metric_date"`
}

// FallbackAccountName monta o nome usado quando o script não envia account_name
func FallbackAccountName(googleAdsAccountID string) string {
	return fallbackAccountNamePrefix + googleAdsAccountID
}
