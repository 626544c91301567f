package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/vfg2006/adsmaster-api/pkg/apiErrors"
	"github.com/vfg2006/adsmaster-api/pkg/log"
)

// APIKeyHeader é o header enviado pelo script do Google Ads
const APIKeyHeader = "X-Api-Key"

// APIKeyMiddleware compara o header X-Api-Key com a chave configurada.
// Uma chave configurada vazia rejeita todas as requisições.
func APIKeyMiddleware(expectedKey string) func(http.Handler) http.Handler {
	expected := []byte(strings.TrimSpace(expectedKey))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received := []byte(strings.TrimSpace(r.Header.Get(APIKeyHeader)))

			if len(expected) == 0 || len(received) == 0 || subtle.ConstantTimeCompare(received, expected) != 1 {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":               r.URL.Path,
					"api_key_length":     len(received),
					"api_key_configured": len(expected) > 0,
				}).Warn("Requisição rejeitada: chave de API ausente ou inválida")

				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
