package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/log"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

const (
	CronJobTypeProjectionSnapshot = "projection-snapshot"
	CronJobTypeAll                = "all"
)

// SyncJob é o contrato dos agendadores disparáveis manualmente
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	ProjectionSnapshotSyncService SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := map[string]SyncJob{}
	if s.ProjectionSnapshotSyncService != nil {
		jobs[CronJobTypeProjectionSnapshot] = s.ProjectionSnapshotSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()
		started := []string{}

		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				if job.TriggerManualSync() {
					started = append(started, name)
				}
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: projection-snapshot, all", nil)
				return
			}
			if !job.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Cron job já está em execução", nil)
				return
			}
			started = append(started, cronType)
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		_ = utils.WriteJSON(w, http.StatusAccepted, map[string]any{
			"success": true,
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		_ = utils.WriteJSON(w, http.StatusOK, status)
	}
}
