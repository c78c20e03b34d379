package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/repository"
	"painel/internal/domain/service"
	"painel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(accounts repository.AccountRepository, hasher service.PasswordHasher, logger *slog.Logger) usecase.AccountUsecase {
	return &accountService{accounts: accounts, hasher: hasher, logger: logger}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) List(ctx context.Context, tenant entity.TenantID, query entity.ListQuery) (*entity.Page[*entity.Account], error) {
	query = query.Normalize()

	items, total, err := srv.accounts.List(ctx, tenant, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &entity.Page[*entity.Account]{Items: items, Page: query.Page, Limit: query.Limit, Total: total}, nil
}

func (srv *accountService) Get(ctx context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accounts.FindByID(ctx, tenant, id)
	if err != nil {
		return nil, mapAccountError(err, "failed to find account")
	}

	return account, nil
}

// Create requires a password; the role's default permissions apply when none are given.
func (srv *accountService) Create(ctx context.Context, tenant entity.TenantID, input entity.AccountInput) (*entity.Account, error) {
	if input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("senha é obrigatória"))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := time.Now().UTC()
	account := &entity.Account{
		ID:           uuid.New(),
		Tenant:       tenant,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyAccountInput(account, input)

	if err := srv.accounts.Create(ctx, account); err != nil {
		return nil, mapAccountError(err, "failed to create account")
	}
	srv.log(ctx).Info("Account created",
		slog.String("tenant", tenant.String()),
		slog.String("account_id", account.ID.String()),
		slog.String("role", account.Role.String()),
	)

	return account, nil
}

// Update changes profile fields. The password is never changed here.
func (srv *accountService) Update(ctx context.Context, tenant entity.TenantID, id uuid.UUID, input entity.AccountInput) (*entity.Account, error) {
	account, err := srv.accounts.FindByID(ctx, tenant, id)
	if err != nil {
		return nil, mapAccountError(err, "failed to find account")
	}

	applyAccountInput(account, input)
	account.UpdatedAt = time.Now().UTC()

	if err := srv.accounts.Update(ctx, account); err != nil {
		return nil, mapAccountError(err, "failed to update account")
	}

	return account, nil
}

func (srv *accountService) Delete(ctx context.Context, tenant entity.TenantID, actor, id uuid.UUID) error {
	if actor == id {
		return errors.WithStack(domainerrors.ErrSelfLockout)
	}
	if err := srv.accounts.Delete(ctx, tenant, id); err != nil {
		return mapAccountError(err, "failed to delete account")
	}
	srv.log(ctx).Info("Account deleted", slog.String("tenant", tenant.String()), slog.String("account_id", id.String()))

	return nil
}

func (srv *accountService) ResetPassword(ctx context.Context, tenant entity.TenantID, id uuid.UUID, reset entity.PasswordReset) error {
	account, err := srv.accounts.FindByID(ctx, tenant, id)
	if err != nil {
		return mapAccountError(err, "failed to find account")
	}

	hash, err := srv.hasher.Hash(reset.Password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	account.PasswordHash = hash
	account.UpdatedAt = time.Now().UTC()

	if err := srv.accounts.Update(ctx, account); err != nil {
		return mapAccountError(err, "failed to reset password")
	}
	srv.log(ctx).Info("Password reset", slog.String("tenant", tenant.String()), slog.String("account_id", id.String()))

	return nil
}

func (srv *accountService) SetBlocked(ctx context.Context, tenant entity.TenantID, actor, id uuid.UUID, blocked bool) (*entity.Account, error) {
	if blocked && actor == id {
		return nil, errors.WithStack(domainerrors.ErrSelfLockout)
	}

	account, err := srv.accounts.FindByID(ctx, tenant, id)
	if err != nil {
		return nil, mapAccountError(err, "failed to find account")
	}
	if account.Blocked == blocked {
		return account, nil
	}

	account.Blocked = blocked
	account.UpdatedAt = time.Now().UTC()
	if err := srv.accounts.Update(ctx, account); err != nil {
		return nil, mapAccountError(err, "failed to update account")
	}
	srv.log(ctx).Info("Account block changed",
		slog.String("tenant", tenant.String()),
		slog.String("account_id", id.String()),
		slog.Bool("blocked", blocked),
	)

	return account, nil
}

func applyAccountInput(account *entity.Account, input entity.AccountInput) {
	account.Name = input.Name
	account.Username = input.Username
	account.Email = input.Email
	account.Role = input.Role

	perms := entity.PermissionsFromStrings(input.Permissions.ToStrings())
	if len(perms) == 0 {
		perms = entity.DefaultPermissions(input.Role)
	}
	account.Permissions = perms
}

func mapAccountError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.WithStack(domainerrors.ErrAccountNotFound)
	case errors.Is(err, repository.ErrAccountDuplicated):
		return errors.WithStack(domainerrors.ErrAccountAlreadyExists)
	default:
		return errors.Wrap(err, message)
	}
}
