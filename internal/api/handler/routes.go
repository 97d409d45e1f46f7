package handler

import (
	"net/http"

	"github.com/vfg2006/furusato-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/authenticating"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/analytics/time-series",
			Method:  http.MethodGet,
			Handler: GetTimeSeries(service),
		},
		{
			Path:    "/v1/analytics/platforms",
			Method:  http.MethodGet,
			Handler: GetPlatformAnalysis(service),
		},
		{
			Path:    "/v1/analytics/customers",
			Method:  http.MethodGet,
			Handler: GetCustomerAnalysis(service),
		},
		{
			Path:    "/v1/analytics/products",
			Method:  http.MethodGet,
			Handler: GetProductAnalysis(service),
		},
		{
			Path:    "/v1/analytics/prefectures",
			Method:  http.MethodGet,
			Handler: GetPrefectureAnalysis(service),
		},
		{
			Path:    "/v1/analytics/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryAnalysis(service),
		},
		{
			Path:    "/v1/analytics/ltv",
			Method:  http.MethodGet,
			Handler: GetLTVAnalysis(service),
		},
		{
			Path:    "/v1/analytics/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
	}
}

func Sales(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodGet,
			Handler: GetSale(service),
		},
	}
}

func Platforms(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/platforms",
			Method:  http.MethodGet,
			Handler: ListPlatforms(service),
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
