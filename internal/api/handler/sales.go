package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/furusato-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
)

// ListSales pagina os registros brutos. Parâmetros: offset, limit e q (busca
// por código do pedido, cliente, produto ou prefeitura).
func ListSales(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, fieldErrs := parsePage(r.URL.Query())
		if fieldErrs != nil {
			logger.WithField("errors", fieldErrs).Warn("sales: invalid paging")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de paginação inválidos", fieldErrs)
			return
		}

		page, err := service.ListSales(r.Context(), params.Offset, params.Limit, params.Query)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, page)
	})
}

func GetSale(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro não fornecido", nil)
			return
		}

		sale, err := service.GetSale(r.Context(), id)
		if err != nil {
			writeServiceError(w, logger.WithField("sale_id", id), err)
			return
		}

		writeJSON(w, logger, http.StatusOK, sale)
	})
}
