package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/furusato-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
	"github.com/vfg2006/furusato-dashboard-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePlatformDirectory = "platform-directory"
	CronJobTypeAll               = "all"
)

// CronJob é uma tarefa agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PlatformDirectorySyncService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.PlatformDirectorySyncService != nil {
		jobs[CronJobTypePlatformDirectory] = s.PlatformDirectorySyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.UserFromContext(r.Context()); ok {
			logger = logger.WithField("user", claims.UserEmail)
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		var triggered []string
		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				job.TriggerManualSync()
				triggered = append(triggered, name)
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
					"type": cronType,
				})
				return
			}
			job.TriggerManualSync()
			triggered = append(triggered, cronType)
		}

		logger.WithField("jobs", triggered).Info("cron: manual run triggered")

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message":   "Cron job iniciada",
			"triggered": triggered,
		})
	})
}

// GetCronStatus retorna o status de todas as cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, logger, http.StatusOK, status)
	})
}
