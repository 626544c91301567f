package ingesting

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/adsmaster-api/internal/domain"
	"github.com/vfg2006/adsmaster-api/pkg/apiErrors"
	"github.com/vfg2006/adsmaster-api/pkg/utils"
)

const maxImpressionShare = 100

// Normalize valida o payload e monta a métrica tipada, ainda sem o id interno da conta.
// Campos numéricos ausentes viram zero; presentes e inválidos rejeitam o payload inteiro.
func Normalize(payload *domain.AdsWebhookPayload) (*domain.CampaignMetric, error) {
	if err := validateRequired(payload); err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		return nil, NewFieldError(ErrInvalidField, apiErrors.ErrInvalidFormat, "date", err.Error())
	}

	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = domain.DefaultCampaignStatus
	}

	f := &fieldReader{}
	metric := &domain.CampaignMetric{
		CampaignName: payload.CampaignName,
		Date:         date,
		Status:       status,

		Budget:          f.amount("budget", payload.Budget),
		Impressions:     f.count("impressions", payload.Impressions),
		Clicks:          f.count("clicks", payload.Clicks),
		Cost:            f.amount("cost", payload.Cost),
		Conversions:     f.quantity("conversions", payload.Conversions),
		ConversionValue: f.signedAmount("conversion_value", payload.ConversionValue),

		SearchAbsoluteTopImpressionShare: f.share("search_absolute_top_impression_share", payload.SearchAbsoluteTopImpressionShare),
		SearchTopImpressionShare:         f.share("search_top_impression_share", payload.SearchTopImpressionShare),
		SearchImpressionShare:            f.share("search_impression_share", payload.SearchImpressionShare),

		TargetCPA:    f.amount("target_cpa", payload.TargetCPA),
		AvgTargetCPA: f.amount("avg_target_cpa", payload.AvgTargetCPA),
	}
	if f.err != nil {
		return nil, f.err
	}

	metric.Profit = domain.CalculateProfit(metric.ConversionValue, metric.Cost)

	return metric, nil
}

func validateRequired(payload *domain.AdsWebhookPayload) error {
	required := []struct {
		field string
		value string
	}{
		{"google_ads_account_id", payload.GoogleAdsAccountID},
		{"campaign_name", payload.CampaignName},
		{"date", payload.Date},
	}

	missing := make([]string, 0, len(required))
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}

	if len(missing) > 0 {
		return NewFieldError(
			ErrMissingRequiredField,
			apiErrors.ErrMissingRequiredData,
			strings.Join(missing, ", "),
			"",
		)
	}

	return nil
}

// fieldReader guarda o primeiro erro encontrado e devolve zero para os campos seguintes
type fieldReader struct {
	err error
}

func (f *fieldReader) read(field string, n domain.OptionalNumber) (float64, bool) {
	if f.err != nil {
		return 0, false
	}

	switch n.State {
	case domain.NumberAbsent:
		return 0, false
	case domain.NumberInvalid:
		f.fail(field, fmt.Sprintf("valor não numérico %q", n.Raw))
		return 0, false
	}

	return n.Value, true
}

func (f *fieldReader) fail(field, details string) {
	f.err = NewFieldError(ErrInvalidField, apiErrors.ErrInvalidFormat, field, details)
}

// signedAmount aceita valores negativos, como ajustes de valor de conversão
func (f *fieldReader) signedAmount(field string, n domain.OptionalNumber) float64 {
	v, ok := f.read(field, n)
	if !ok {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(v)
}

func (f *fieldReader) amount(field string, n domain.OptionalNumber) float64 {
	v, ok := f.read(field, n)
	if !ok {
		return 0
	}
	if v < 0 {
		f.fail(field, "valor não pode ser negativo")
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(v)
}

func (f *fieldReader) quantity(field string, n domain.OptionalNumber) float64 {
	v, ok := f.read(field, n)
	if !ok {
		return 0
	}
	if v < 0 {
		f.fail(field, "valor não pode ser negativo")
		return 0
	}
	return v
}

func (f *fieldReader) count(field string, n domain.OptionalNumber) int64 {
	v := f.quantity(field, n)
	if f.err != nil {
		return 0
	}
	if v != math.Trunc(v) || v >= math.MaxInt64 {
		f.fail(field, "valor deve ser um número inteiro")
		return 0
	}
	return int64(v)
}

func (f *fieldReader) share(field string, n domain.OptionalNumber) float64 {
	v := f.quantity(field, n)
	if f.err != nil {
		return 0
	}
	if v > maxImpressionShare {
		f.fail(field, "percentual deve estar entre 0 e 100")
		return 0
	}
	return v
}
