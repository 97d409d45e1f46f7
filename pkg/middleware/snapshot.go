package middleware

import (
	"context"
	"net/http"
)

// SnapshotMiddleware anexa ao contexto de cada requisição o valor criado por
// attach, normalmente o snapshot de leitura do record store
func SnapshotMiddleware(attach func(context.Context) context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if attach == nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(attach(r.Context())))
		})
	}
}
