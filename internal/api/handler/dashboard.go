package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/adsmaster-api/internal/usecases/dashboard"
	"github.com/vfg2006/adsmaster-api/pkg/apiErrors"
	"github.com/vfg2006/adsmaster-api/pkg/log"
)

func GetDashboard(service dashboard.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days := dashboard.DefaultDays
		if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", raw)
				return
			}
			days = parsed
		}

		resp, err := service.GetDashboard(r.Context(), days)
		if err != nil {
			if errors.Is(err, dashboard.ErrInvalidDays) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
