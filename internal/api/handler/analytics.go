package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/furusato-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
)

type viewFunc[T any] func(ctx context.Context, filter *domain.FilterSpec) (T, error)

// analyticsView lê os filtros, chama a visão e devolve o resultado em JSON
func analyticsView[T any](name string, view viewFunc[T]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("view", name)

		filter, fieldErrs := parseFilter(r.URL.Query())
		if fieldErrs != nil {
			logger.WithField("errors", fieldErrs).Warn("analytics: invalid filter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtros inválidos", fieldErrs)
			return
		}

		result, err := view(r.Context(), filter)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}

func GetSummary(service analyzing.Analyzer) http.Handler {
	return analyticsView(analyzing.ViewSummary, service.Summary)
}

func GetTimeSeries(service analyzing.Analyzer) http.Handler {
	return analyticsView(analyzing.ViewTimeSeries, service.TimeSeries)
}

func GetPlatformAnalysis(service analyzing.Analyzer) http.Handler {
	return analyticsView(analyzing.ViewPlatforms, service.PlatformAnalysis)
}

func GetCustomerAnalysis(service analyzing.Analyzer) http.Handler {
	return analyticsView(analyzing.ViewCustomers, service.CustomerAnalysis)
}

func GetProductAnalysis(service analyzing.Analyzer) http.Handler {
	return analyticsView(analyzing.ViewProducts, service.ProductAnalysis)
}

func GetPrefectureAnalysis(service analyzing.Analyzer) http.Handler {
	return analyticsView(analyzing.ViewPrefectures, service.PrefectureAnalysis)
}

func GetCategoryAnalysis(service analyzing.Analyzer) http.Handler {
	return analyticsView(analyzing.ViewCategories, service.CategoryAnalysis)
}

// GetLTVAnalysis aceita os mesmos filtros das outras visões, mas o cálculo
// sempre considera todos os registros
func GetLTVAnalysis(service analyzing.Analyzer) http.Handler {
	return analyticsView(analyzing.ViewLTV, service.LTVAnalysis)
}

// GetOverview devolve todas as visões de uma vez. Visões com falha ficam nulas
// e aparecem em "errors"; só responde erro quando nenhuma visão foi calculada.
func GetOverview(service analyzing.Analyzer) http.Handler {
	return analyticsView("overview", service.Overview)
}
