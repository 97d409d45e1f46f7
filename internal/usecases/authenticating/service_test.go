package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/pkg/apiErrors"
)

func newTestService(t *testing.T) *Service {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh@"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(&config.Config{Auth: config.Auth{
		Enabled:      true,
		Secret:       "test-secret",
		Email:        "Admin@Example.com",
		PasswordHash: string(hash),
		TokenTTL:     time.Hour,
	}})
}

func TestService_LoginUser(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "Credenciais corretas", email: " admin@example.com ", password: "s3nh@"},
		{name: "Senha incorreta", email: "admin@example.com", password: "errada", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "Email incorreto", email: "other@example.com", password: "s3nh@", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "Campos vazios", email: "", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.True(t, IsCredentialsError(err))
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)

			claims, err := svc.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, "admin@example.com", claims.UserEmail)
			assert.Len(t, claims.ID, tokenIDLength)
			assert.Equal(t, resp.ExpiresAt, claims.ExpiresAt.Unix())
		})
	}
}

func TestService_LoginUser_NotConfigured(t *testing.T) {
	svc := NewService(&config.Config{})

	_, err := svc.LoginUser("admin@example.com", "x")

	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}

func TestService_ValidateToken(t *testing.T) {
	svc := newTestService(t)

	t.Run("Token expirado", func(t *testing.T) {
		issued := time.Now().Add(-2 * time.Hour)
		svc.now = func() time.Time { return issued }
		resp, err := svc.LoginUser("admin@example.com", "s3nh@")
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateToken(resp.Token)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		other := newTestService(t)
		other.cfg.Auth.Secret = "another"
		resp, err := other.LoginUser("admin@example.com", "s3nh@")
		require.NoError(t, err)

		_, err = svc.ValidateToken(resp.Token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, apiErrors.ErrInvalidToken, authErr.Code)
	})
}
