package handler

import (
	"net/http"

	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
)

func ListPlatforms(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platforms, err := service.Platforms(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, platforms)
	})
}
