package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/repository"
	"painel/internal/domain/service"
	"painel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	tenants  repository.TenantRepository
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	tenants repository.TenantRepository,
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		tenants:  tenants,
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials inside tenant. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, tenant entity.TenantID, creds entity.Credentials) (*entity.LoginResult, error) {
	summary, err := srv.tenants.FindBySubdomain(ctx, tenant)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTenantNotFound)
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}
	if !summary.Active {
		return nil, errors.WithStack(domainerrors.ErrTenantNotFound)
	}

	account, err := srv.accounts.FindByUsername(ctx, tenant, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info("Login for unknown user", slog.String("tenant", tenant.String()))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(creds.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login with wrong password",
			slog.String("tenant", tenant.String()),
			slog.String("account_id", account.ID.String()),
		)

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if account.Blocked {
		return nil, errors.WithStack(domainerrors.ErrAccountBlocked)
	}

	token, expiresAt, err := srv.tokens.GenerateToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Login succeeded",
		slog.String("tenant", tenant.String()),
		slog.String("account_id", account.ID.String()),
	)

	return &entity.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      account.Profile(),
	}, nil
}

// Me returns the current profile of a token's subject.
func (srv *authService) Me(ctx context.Context, tenant entity.TenantID, accountID uuid.UUID) (*entity.UserProfile, error) {
	account, err := srv.accounts.FindByID(ctx, tenant, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return nil, errors.Wrap(err, "failed to find account")
	}
	if account.Blocked {
		return nil, errors.WithStack(domainerrors.ErrAccountBlocked)
	}

	return account.Profile(), nil
}
