package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/furusato-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("handler: failed to encode response")
	}
}

// writeServiceError traduz erros do analyzing para o código de API correspondente
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, analyzing.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Registro de venda não encontrado", nil)
	case errors.Is(err, analyzing.ErrInvalidPaging):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de paginação inválidos", nil)
	case analyzing.IsStoreError(err):
		logger.WithError(err).Error("handler: record store failure")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar a fonte de vendas", nil)
	default:
		logger.WithError(err).Error("handler: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
