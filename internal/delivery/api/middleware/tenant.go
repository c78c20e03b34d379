package middleware

import (
	"net/http"

	"painel/config"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultTenantHeader = "X-Subdomain"

// TenantMiddleware admits a request only when its tenant header names an active tenant.
type TenantMiddleware struct {
	registry usecase.RegistryUsecase
	header   string
}

// NewTenantMiddleware is the constructor for TenantMiddleware.
func NewTenantMiddleware(registry usecase.RegistryUsecase, cfg *config.Config) *TenantMiddleware {
	header := defaultTenantHeader
	if cfg.Tenant != nil && cfg.Tenant.Header != "" {
		header = cfg.Tenant.Header
	}

	return &TenantMiddleware{registry: registry, header: http.CanonicalHeaderKey(header)}
}

// RequireTenant stores the admitted tenant for the handlers.
func (m *TenantMiddleware) RequireTenant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(m.header)
		if raw == "" {
			return errors.WithStack(domainerrors.ErrTenantMissing)
		}

		id, ok := entity.ParseTenantID(raw)
		if !ok {
			return errors.WithStack(domainerrors.ErrTenantNotFound)
		}

		if _, err := m.registry.ActiveTenant(c.Request().Context(), id); err != nil {
			return err
		}

		deliverycontext.SetTenant(c, id)

		return next(c)
	}
}
