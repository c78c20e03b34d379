package impl

import (
	"context"
	"log/slog"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	"painel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	binder   usecase.SessionBinder
	session  usecase.SessionUsecase
	people   service.PeopleGateway
	accounts service.AccountGateway
	logger   *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	binder usecase.SessionBinder,
	session usecase.SessionUsecase,
	people service.PeopleGateway,
	accounts service.AccountGateway,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		binder:   binder,
		session:  session,
		people:   people,
		accounts: accounts,
		logger:   logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Allowed reports whether the cached profile holds every required permission.
func (srv *dashboardService) Allowed(ctx context.Context, required ...entity.Permission) bool {
	if !srv.binder.IsAuthenticated(ctx) {
		return false
	}

	return service.CanProfile(srv.session.StoredUser(ctx), required...)
}

// guard admits a call only for an authenticated binding whose profile holds required.
func (srv *dashboardService) guard(ctx context.Context, required ...entity.Permission) error {
	binding := srv.binder.Binding(ctx)

	switch binding.Status {
	case entity.BindingStale:
		if err := srv.session.Logout(ctx); err != nil {
			srv.log(ctx).Error("Failed to log out stale session", slog.Any("error", err))
		}

		return errors.WithStack(domainerrors.ErrStaleSession)
	case entity.BindingAnonymous:
		if binding.Tenant.IsZero() {
			return errors.WithStack(domainerrors.ErrTenantMissing)
		}

		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	profile := srv.session.StoredUser(ctx)
	if profile == nil {
		var err error
		if profile, err = srv.session.RefreshProfile(ctx); err != nil {
			return err
		}
	}

	if !service.CanProfile(profile, required...) {
		srv.log(ctx).Info("Capability check denied",
			slog.String("role", profile.Role.String()),
			slog.Any("required", required),
		)

		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// observe invalidates the session when the backend answered 401.
func (srv *dashboardService) observe(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if domainerrors.IsUnauthorized(err) {
		if invErr := srv.session.Invalidate(ctx); invErr != nil {
			srv.log(ctx).Error("Failed to invalidate session", slog.Any("error", invErr))
		}
	}

	return err
}

func (srv *dashboardService) ListPeople(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Person], error) {
	if err := srv.guard(ctx, entity.PermPeopleRead); err != nil {
		return nil, err
	}
	page, err := srv.people.ListPeople(ctx, query.Normalize())

	return page, srv.observe(ctx, err)
}

func (srv *dashboardService) GetPerson(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	if err := srv.guard(ctx, entity.PermPeopleRead); err != nil {
		return nil, err
	}
	person, err := srv.people.GetPerson(ctx, id)

	return person, srv.observe(ctx, err)
}

func (srv *dashboardService) CreatePerson(ctx context.Context, input entity.PersonInput) (*entity.Person, error) {
	if err := srv.guard(ctx, entity.PermPeopleWrite); err != nil {
		return nil, err
	}
	person, err := srv.people.CreatePerson(ctx, input)

	return person, srv.observe(ctx, err)
}

func (srv *dashboardService) UpdatePerson(ctx context.Context, id uuid.UUID, input entity.PersonInput) (*entity.Person, error) {
	if err := srv.guard(ctx, entity.PermPeopleWrite); err != nil {
		return nil, err
	}
	person, err := srv.people.UpdatePerson(ctx, id, input)

	return person, srv.observe(ctx, err)
}

func (srv *dashboardService) DeletePerson(ctx context.Context, id uuid.UUID) error {
	if err := srv.guard(ctx, entity.PermPeopleWrite); err != nil {
		return err
	}

	return srv.observe(ctx, srv.people.DeletePerson(ctx, id))
}

func (srv *dashboardService) ListAccounts(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Account], error) {
	if err := srv.guard(ctx, entity.PermAccountsRead); err != nil {
		return nil, err
	}
	page, err := srv.accounts.ListAccounts(ctx, query.Normalize())

	return page, srv.observe(ctx, err)
}

func (srv *dashboardService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if err := srv.guard(ctx, entity.PermAccountsRead); err != nil {
		return nil, err
	}
	account, err := srv.accounts.GetAccount(ctx, id)

	return account, srv.observe(ctx, err)
}

func (srv *dashboardService) CreateAccount(ctx context.Context, input entity.AccountInput) (*entity.Account, error) {
	if err := srv.guard(ctx, entity.PermAccountsWrite); err != nil {
		return nil, err
	}
	account, err := srv.accounts.CreateAccount(ctx, input)

	return account, srv.observe(ctx, err)
}

func (srv *dashboardService) UpdateAccount(ctx context.Context, id uuid.UUID, input entity.AccountInput) (*entity.Account, error) {
	if err := srv.guard(ctx, entity.PermAccountsWrite); err != nil {
		return nil, err
	}
	account, err := srv.accounts.UpdateAccount(ctx, id, input)

	return account, srv.observe(ctx, err)
}

func (srv *dashboardService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := srv.guard(ctx, entity.PermAccountsWrite); err != nil {
		return err
	}

	return srv.observe(ctx, srv.accounts.DeleteAccount(ctx, id))
}

func (srv *dashboardService) ResetPassword(ctx context.Context, id uuid.UUID, reset entity.PasswordReset) error {
	if err := srv.guard(ctx, entity.PermAccountsResetPw); err != nil {
		return err
	}

	return srv.observe(ctx, srv.accounts.ResetPassword(ctx, id, reset))
}

func (srv *dashboardService) BlockAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if err := srv.guard(ctx, entity.PermAccountsBlock); err != nil {
		return nil, err
	}
	account, err := srv.accounts.BlockAccount(ctx, id)

	return account, srv.observe(ctx, err)
}

func (srv *dashboardService) UnblockAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if err := srv.guard(ctx, entity.PermAccountsBlock); err != nil {
		return nil, err
	}
	account, err := srv.accounts.UnblockAccount(ctx, id)

	return account, srv.observe(ctx, err)
}
