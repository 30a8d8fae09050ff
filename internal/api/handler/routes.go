package handler

import (
	"net/http"

	"github.com/vfg2006/ad-analyst-api/internal/api/handler/router"
	"github.com/vfg2006/ad-analyst-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analyst-api/internal/usecases/diagnosing"
	"github.com/vfg2006/ad-analyst-api/internal/usecases/snapshotting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analysis(service analyzing.Analyst) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ask",
			Method:  http.MethodPost,
			Handler: Ask(service),
		},
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: GetDailyOverview(service),
		},
	}
}

func Snapshots(snapshotService snapshotting.Snapshotter, analystService analyzing.Analyst) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshots",
			Method:  http.MethodPost,
			Handler: CreateSnapshot(snapshotService, analystService),
		},
		{
			Path:    "/v1/snapshots",
			Method:  http.MethodGet,
			Handler: ListSnapshots(snapshotService),
		},
	}
}

func Diagnostics(service diagnosing.Diagnoser) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/diagnostics",
			Method:  http.MethodGet,
			Handler: GetDiagnostics(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
