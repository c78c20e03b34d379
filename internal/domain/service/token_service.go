package service

import (
	"time"

	"painel/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of the API access token.
// Tenant is the issuing tenant; requests must carry the same tenant header.
type Claims struct {
	Tenant      entity.TenantID `json:"tenant"`
	Username    string          `json:"usuario"`
	Role        entity.Role     `json:"papel"`
	Permissions []string        `json:"permissoes"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating access tokens.
type TokenService interface {
	// GenerateToken creates a signed access token bound to the account's tenant.
	GenerateToken(account *entity.Account) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
