package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/furusato-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", fieldErrors(err, loginFieldName))
			return
		}

		resp, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, resp)
	})
}

func loginFieldName(field string) string {
	switch field {
	case "Email":
		return "email"
	case "Password":
		return "password"
	}
	return field
}

// handleLoginError usa o código carregado pelo AuthError quando disponível
func handleLoginError(w http.ResponseWriter, logger log.Logger, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error("login: failed")
		} else {
			logger.WithError(err).Warn("login: rejected")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case authenticating.IsCredentialsError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	default:
		logger.WithError(err).Error("login: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
