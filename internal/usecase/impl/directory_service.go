package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	"painel/internal/usecase"

	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	directory service.DirectoryGateway
	tenants   usecase.TenantUsecase
	session   usecase.SessionUsecase
	logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	directory service.DirectoryGateway,
	tenants usecase.TenantUsecase,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		directory: directory,
		tenants:   tenants,
		session:   session,
		logger:    logger,
	}
}

// ListTenants returns the tenant directory.
func (srv *directoryService) ListTenants(ctx context.Context) ([]*entity.TenantSummary, error) {
	tenants, err := srv.directory.ListTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	return tenants, nil
}

// SelectTenant verifies raw against the directory before switching to it.
func (srv *directoryService) SelectTenant(ctx context.Context, raw string) (*entity.TenantSummary, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	id, ok := entity.ParseTenantID(raw)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("identificador de município inválido: " + raw))
	}

	summary, err := srv.directory.GetTenant(ctx, id)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusNotFound {
			return nil, errors.WithStack(domainerrors.ErrTenantNotFound.WithDetails(id.String()))
		}

		return nil, errors.Wrap(err, "failed to verify tenant")
	}
	if !summary.Active {
		return nil, errors.WithStack(domainerrors.ErrTenantNotFound.WithDetails(id.String() + " está inativo"))
	}

	if err := srv.session.SwitchTenant(ctx, id); err != nil {
		return nil, err
	}
	if err := srv.tenants.RememberTenant(ctx, summary); err != nil {
		log.Warn("Failed to record recent tenant", slog.Any("error", err))
	}

	return summary, nil
}
