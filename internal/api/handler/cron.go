package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
)

const (
	CronJobTypeCardSummary = "card-summary"
)

// ManualJob is a scheduled job that can also be started on demand
type ManualJob interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// CronJobServices holds the jobs reachable from the cron routes
type CronJobServices struct {
	CardSummaryReport ManualJob
}

// job returns the service registered for cronType and whether the type is known
func (s CronJobServices) job(cronType string) (ManualJob, bool) {
	switch cronType {
	case CronJobTypeCardSummary:
		return s.CardSummaryReport, true
	default:
		return nil, false
	}
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services.job(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Unknown cron job type. Accepted values: "+CronJobTypeCardSummary, nil)
			return
		}

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cron job service not available", nil)
			return
		}

		if !job.TriggerManualRun() {
			apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Cron job already running", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		job, ok := services.job(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Unknown cron job type. Accepted values: "+CronJobTypeCardSummary, nil)
			return
		}

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cron job service not available", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, job.GetStatus())
	}
}
