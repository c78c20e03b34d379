package impl

import (
	"context"
	"log/slog"

	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/repository"
	"painel/internal/usecase"

	"github.com/pkg/errors"
)

// registryService implements the RegistryUsecase interface.
type registryService struct {
	tenants repository.TenantRepository
	logger  *slog.Logger
}

// NewRegistryService is the constructor for registryService.
func NewRegistryService(tenants repository.TenantRepository, logger *slog.Logger) usecase.RegistryUsecase {
	return &registryService{tenants: tenants, logger: logger}
}

func (srv *registryService) ListTenants(ctx context.Context) ([]*entity.TenantSummary, error) {
	tenants, err := srv.tenants.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	return tenants, nil
}

func (srv *registryService) GetTenant(ctx context.Context, id entity.TenantID) (*entity.TenantSummary, error) {
	tenant, err := srv.tenants.FindBySubdomain(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTenantNotFound)
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}

	return tenant, nil
}

func (srv *registryService) ActiveTenant(ctx context.Context, id entity.TenantID) (*entity.TenantSummary, error) {
	tenant, err := srv.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tenant.Active {
		return nil, errors.WithStack(domainerrors.ErrTenantNotFound)
	}

	return tenant, nil
}
