package persistence

import (
	"context"
	"log/slog"
	"time"

	"painel/config"
	"painel/internal/domain/entity"
	"painel/internal/domain/lifecycle"
	"painel/internal/domain/repository"
	"painel/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SeedParams defines the required parameters
type SeedParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Tenants  repository.TenantRepository
	Accounts repository.AccountRepository
	Hasher   service.PasswordHasher
}

// RegisterSeed seeds the demo tenant and its administrator when the API starts.
func RegisterSeed(params SeedParams) {
	if params.Config.Seed == nil || !params.Config.Seed.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return Seed(ctx, params.Config.Seed, params.Tenants, params.Accounts, params.Hasher, params.Logger)
		},
	})
}

// Seed creates the configured tenant and administrator unless they already exist.
func Seed(
	ctx context.Context,
	cfg *config.SeedConfig,
	tenants repository.TenantRepository,
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) error {
	id, ok := entity.ParseTenantID(cfg.Tenant)
	if !ok {
		return errors.Errorf("invalid seed tenant %q", cfg.Tenant)
	}

	_, err := tenants.FindBySubdomain(ctx, id)
	switch {
	case errors.Is(err, repository.ErrTenantNotFound):
		tenant := &entity.TenantSummary{Subdomain: id, Name: cfg.TenantName, Active: true}
		if err := tenants.Create(ctx, tenant); err != nil {
			return errors.Wrap(err, "failed to seed tenant")
		}
		logger.Info("Seeded tenant", slog.String("tenant", id.String()))
	case err != nil:
		return errors.Wrap(err, "failed to look up seed tenant")
	}

	_, err = accounts.FindByUsername(ctx, id, cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to look up seed administrator")
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed password")
	}

	now := time.Now().UTC()
	admin := &entity.Account{
		ID:           uuid.New(),
		Tenant:       id,
		Name:         "Administrador",
		Username:     cfg.AdminUsername,
		Role:         entity.RoleAdmin,
		Permissions:  entity.DefaultPermissions(entity.RoleAdmin),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := accounts.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to seed administrator")
	}
	logger.Info("Seeded administrator", slog.String("tenant", id.String()), slog.String("username", admin.Username))

	return nil
}
