package middleware

import (
	"strings"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	"painel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware validates bearer tokens and enforces permissions.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate accepts only tokens issued for the admitted tenant whose account still exists
// and is not blocked. Role and permissions come from the stored account, not the token.
// It must run after TenantMiddleware.RequireTenant.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		accountID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		if claims.Tenant != deliverycontext.GetTenant(c) {
			return errors.WithStack(domainerrors.ErrTenantMismatch)
		}

		profile, err := m.authUC.Me(c.Request().Context(), claims.Tenant, accountID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) || errors.Is(err, domainerrors.ErrAccountBlocked) {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}

			return err
		}

		current := *claims
		current.Username = profile.Username
		current.Role = profile.Role
		current.Permissions = profile.Permissions.ToStrings()
		deliverycontext.SetClaims(c, &current)

		return next(c)
	}
}

// RequirePermission rejects callers whose account does not hold every required permission.
// It must run after Authenticate.
func (m *AuthMiddleware) RequirePermission(required ...entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetClaims(c)
			if claims == nil {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}

			if !service.Can(claims.Role, entity.PermissionsFromStrings(claims.Permissions), required...) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetAccountID returns the subject of the validated token.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
