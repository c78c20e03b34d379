package impl

import (
	"context"
	"log/slog"
	"net/http"

	"painel/config"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/usecase"
)

// DefaultTenantHeader carries the tenant on every API call.
const DefaultTenantHeader = "X-Subdomain"

// headerComposer implements the HeaderComposer interface.
type headerComposer struct {
	binder usecase.SessionBinder
	header string
	logger *slog.Logger
}

// NewHeaderComposer is the constructor for headerComposer.
func NewHeaderComposer(cfg *config.Config, binder usecase.SessionBinder, logger *slog.Logger) usecase.HeaderComposer {
	header := DefaultTenantHeader
	if cfg.Tenant != nil && cfg.Tenant.Header != "" {
		header = cfg.Tenant.Header
	}

	return &headerComposer{
		binder: binder,
		header: http.CanonicalHeaderKey(header),
		logger: logger,
	}
}

// Compose returns fresh headers for one request.
func (hc *headerComposer) Compose(ctx context.Context, authenticated bool) http.Header {
	log := deliverycontext.GetLoggerOrDefault(ctx, hc.logger)
	binding := hc.binder.Binding(ctx)
	headers := make(http.Header)

	if binding.Tenant.IsZero() {
		log.Warn("No tenant selected, request goes out without tenant header", slog.String("header", hc.header))
	} else {
		headers.Set(hc.header, binding.Tenant.String())
	}

	if !authenticated {
		return headers
	}

	if binding.IsAuthenticated() {
		headers.Set("Authorization", "Bearer "+binding.Token)
	} else if binding.Token != "" {
		log.Debug("Withholding token issued for another tenant",
			slog.String("tenant", binding.Tenant.String()),
			slog.String("issuing_tenant", binding.IssuingTenant.String()),
		)
	}

	return headers
}

// TenantHeader returns the canonical tenant header name.
func (hc *headerComposer) TenantHeader() string {
	return hc.header
}
