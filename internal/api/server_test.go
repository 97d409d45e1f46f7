package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
)

type stubAuthenticator struct{}

func (stubAuthenticator) LoginUser(string, string) (*domain.LoginResponse, error) {
	return nil, authenticating.ErrInvalidCredentials
}

func (stubAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	if token == "valid" {
		return &domain.Claims{UserEmail: "admin@example.com"}, nil
	}
	return nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, "AUTH_006", "")
}

func testConfig(authEnabled bool) *config.Config {
	return &config.Config{
		Server:    config.Server{AllowedOrigins: []string{"*"}},
		Auth:      config.Auth{Enabled: authEnabled},
		Analytics: config.Analytics{RequestSnapshot: true},
	}
}

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		authOn     bool
		path       string
		token      string
		setup      func(m *mocks.MockAnalyzer)
		wantStatus int
	}{
		{
			name:       "healthcheck é público",
			authOn:     true,
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "analytics exige token",
			authOn:     true,
			path:       "/v1/analytics/summary",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "analytics com token válido",
			authOn: true,
			path:   "/v1/analytics/summary",
			token:  "valid",
			setup: func(m *mocks.MockAnalyzer) {
				m.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(&domain.SalesSummary{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "autenticação desabilitada",
			authOn: false,
			path:   "/v1/platforms",
			setup: func(m *mocks.MockAnalyzer) {
				m.EXPECT().Platforms(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Platform, error) {
					return []domain.Platform{}, nil
				})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "rota inexistente",
			authOn:     false,
			path:       "/v1/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := mocks.NewMockAnalyzer(ctrl)
			if tt.setup != nil {
				tt.setup(analyzer)
			}

			h := NewHandler(testConfig(tt.authOn), analyzer, stubAuthenticator{}, nil)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
