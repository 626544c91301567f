package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/adsmaster-api/internal/domain"
	"github.com/vfg2006/adsmaster-api/internal/usecases/ingesting"
	"github.com/vfg2006/adsmaster-api/pkg/apiErrors"
	"github.com/vfg2006/adsmaster-api/pkg/log"
)

const maxWebhookBodyBytes = 1 << 20

// IngestAdsWebhook recebe a métrica diária de uma campanha enviada pelo script do Google Ads
func IngestAdsWebhook(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)

		var payload domain.AdsWebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("Corpo do webhook inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
			return
		}

		result, err := service.Ingest(r.Context(), &payload)
		if err != nil {
			var ingestionErr *ingesting.IngestionError
			if errors.As(err, &ingestionErr) {
				writeIngestionError(w, ingestionErr)
				return
			}

			logger.WithError(err).Error("Erro inesperado na ingestão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar métrica", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("Erro ao codificar resposta do webhook")
		}
	})
}

func writeIngestionError(w http.ResponseWriter, err *ingesting.IngestionError) {
	code := err.Code
	if code == "" {
		code = apiErrors.ErrInternalServer
	}

	switch {
	case errors.Is(err, ingesting.ErrMissingRequiredField):
		apiErrors.WriteError(w, code, "Campos obrigatórios ausentes", map[string]string{"fields": err.Field})
	case errors.Is(err, ingesting.ErrInvalidField):
		apiErrors.WriteError(w, code, "Campo com formato inválido", map[string]string{
			"field":  err.Field,
			"reason": err.Details,
		})
	default:
		apiErrors.WriteError(w, code, err.Err.Error(), err.Details)
	}
}
