package airtabledomain

import (
	"fmt"
	"net/http"
)

// ErrorResponse cobre os dois formatos de erro do Airtable:
// {"error": {"type": "...", "message": "..."}} e {"error": "NOT_FOUND"}
type ErrorResponse struct {
	Error any `json:"error"`
}

// APIError é devolvido quando a API responde com status diferente de 2xx
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("airtable: status %d (%s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("airtable: status %d (%s)", e.StatusCode, e.Type)
}

// IsAuthError indica chave inválida ou sem permissão para a base
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited indica que o limite de 5 requisições por segundo foi excedido
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// NewAPIError monta o erro a partir do corpo já decodificado
func NewAPIError(statusCode int, body *ErrorResponse) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Type: http.StatusText(statusCode)}
	if body == nil {
		return apiErr
	}

	switch detail := body.Error.(type) {
	case string:
		apiErr.Type = detail
	case map[string]any:
		if t, ok := detail["type"].(string); ok && t != "" {
			apiErr.Type = t
		}
		if m, ok := detail["message"].(string); ok {
			apiErr.Message = m
		}
	}

	return apiErr
}
