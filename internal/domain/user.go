package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações carregadas no token do dashboard
type Claims struct {
	UserEmail string `json:"email"`
	jwt.RegisteredClaims
}

// LoginRequest é o corpo esperado em POST /v1/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
