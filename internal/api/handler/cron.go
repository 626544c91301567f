package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adsmaster-api/pkg/apiErrors"
)

const (
	CronJobTypeFreshness = "freshness"
	CronJobTypeAll       = "all"
)

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices mapeia o tipo da rotina para o serviço que a executa
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s)+1)
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return append(types, CronJobTypeAll)
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAll:
			for _, job := range services {
				if job != nil {
					job.TriggerManualSync()
				}
			}
		default:
			job, ok := services[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
				return
			}
			if job == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de cron job não disponível", cronType)
				return
			}
			job.TriggerManualSync()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := make(map[string]any, len(services))
		for name, job := range services {
			if job == nil {
				status[name] = map[string]any{"enabled": false}
				continue
			}
			status[name] = job.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
