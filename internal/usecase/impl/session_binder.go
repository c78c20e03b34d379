package impl

import (
	"context"
	"log/slog"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	"painel/internal/domain/repository"
	"painel/internal/usecase"
)

// sessionBinder implements the SessionBinder interface. Nothing is cached: every call reads the store.
type sessionBinder struct {
	tenants usecase.TenantUsecase
	store   repository.StateStore
	logger  *slog.Logger
}

// NewSessionBinder is the constructor for sessionBinder.
func NewSessionBinder(tenants usecase.TenantUsecase, store repository.StateStore, logger *slog.Logger) usecase.SessionBinder {
	return &sessionBinder{
		tenants: tenants,
		store:   store,
		logger:  logger,
	}
}

// Binding pairs the current tenant with the stored token and its issuing tenant.
func (b *sessionBinder) Binding(ctx context.Context) entity.SessionBinding {
	log := deliverycontext.GetLoggerOrDefault(ctx, b.logger)

	tenant, err := b.tenants.CurrentTenant(ctx)
	if err != nil {
		log.Warn("Binding read tenant as absent", slog.Any("error", err))
		tenant = ""
	}

	binding := entity.SessionBinding{
		Tenant:        tenant,
		Token:         b.read(ctx, log, repository.KeyAuthToken),
		IssuingTenant: entity.TenantID(b.read(ctx, log, repository.KeyAuthTenant)),
	}

	switch {
	case binding.Token == "" || binding.Tenant.IsZero():
		binding.Status = entity.BindingAnonymous
	case binding.IssuingTenant != binding.Tenant:
		binding.Status = entity.BindingStale
	default:
		binding.Status = entity.BindingAuthenticated
	}

	return binding
}

// IsAuthenticated reports token present AND tenant present AND issuing tenant == tenant.
func (b *sessionBinder) IsAuthenticated(ctx context.Context) bool {
	return b.Binding(ctx).IsAuthenticated()
}

func (b *sessionBinder) read(ctx context.Context, log *slog.Logger, key string) string {
	v, ok, err := b.store.Get(ctx, key)
	if err != nil {
		log.Warn("Binding read key as absent", slog.String("key", key), slog.Any("error", err))

		return ""
	}
	if !ok {
		return ""
	}

	return v
}
