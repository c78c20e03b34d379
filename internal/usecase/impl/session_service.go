package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/repository"
	"painel/internal/domain/service"
	"painel/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tenants  usecase.TenantUsecase
	binder   usecase.SessionBinder
	store    repository.StateStore
	auth     service.AuthGateway
	validate *validator.Validate
	logger   *slog.Logger

	refresh singleflight.Group
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	tenants usecase.TenantUsecase,
	binder usecase.SessionBinder,
	store repository.StateStore,
	auth service.AuthGateway,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		tenants:  tenants,
		binder:   binder,
		store:    store,
		auth:     auth,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates against the current tenant. Nothing is persisted unless the backend accepts.
func (srv *sessionService) Login(ctx context.Context, creds entity.Credentials) (*entity.UserProfile, error) {
	tenant, err := srv.tenants.CurrentTenant(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve tenant")
	}
	if tenant.IsZero() {
		return nil, errors.WithStack(domainerrors.ErrTenantMissing)
	}

	if err := srv.validate.Struct(creds); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("usuário e senha são obrigatórios"))
	}

	srv.log(ctx).Info("Logging in", slog.String("tenant", tenant.String()), slog.String("username", creds.Username))

	result, err := srv.auth.Login(ctx, tenant, creds)
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("tenant", tenant.String()), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}
	if result == nil || result.Token == "" || result.User == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "login response without token or user")
	}

	profile := *result.User
	if profile.Tenant.IsZero() {
		profile.Tenant = tenant
	}
	if profile.Tenant != tenant {
		return nil, errors.WithStack(domainerrors.ErrTenantMismatch)
	}

	if err := srv.persist(ctx, tenant, result.Token, &profile); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Logged in",
		slog.String("tenant", tenant.String()),
		slog.String("username", profile.Username),
		slog.String("role", profile.Role.String()),
	)

	return &profile, nil
}

// persist writes the token last so observers never see a token without its tenant marker.
func (srv *sessionService) persist(ctx context.Context, tenant entity.TenantID, token string, profile *entity.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return errors.WithStack(err)
	}

	writes := []struct{ key, value string }{
		{repository.KeyAuthTenant, tenant.String()},
		{repository.KeyUserData, string(data)},
		{repository.KeyAuthToken, token},
	}
	for _, w := range writes {
		if err := srv.store.Set(ctx, w.key, w.value); err != nil {
			if rollbackErr := srv.store.Delete(ctx, repository.SessionKeys...); rollbackErr != nil {
				srv.log(ctx).Error("Failed to roll back partial session", slog.Any("error", rollbackErr))
			}

			return errors.Wrapf(err, "failed to persist %s", w.key)
		}
	}

	return nil
}

// Logout removes the session. The tenant selection survives.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.store.Delete(ctx, repository.SessionKeys...); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	srv.log(ctx).Info("Logged out")

	return nil
}

// StoredToken returns the persisted token.
func (srv *sessionService) StoredToken(ctx context.Context) (string, bool) {
	token, ok, err := srv.store.Get(ctx, repository.KeyAuthToken)
	if err != nil {
		srv.log(ctx).Warn("Failed to read token", slog.Any("error", err))

		return "", false
	}

	return token, ok && token != ""
}

// StoredUser returns the cached profile when it belongs to the current tenant.
func (srv *sessionService) StoredUser(ctx context.Context) *entity.UserProfile {
	binding := srv.binder.Binding(ctx)
	if binding.Tenant.IsZero() || binding.IssuingTenant != binding.Tenant {
		return nil
	}

	raw, ok, err := srv.store.Get(ctx, repository.KeyUserData)
	if err != nil || !ok || raw == "" {
		return nil
	}

	var profile entity.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		srv.log(ctx).Warn("Discarding corrupt cached profile", slog.Any("error", err))

		return nil
	}
	if !profile.Tenant.IsZero() && profile.Tenant != binding.Tenant {
		return nil
	}

	return &profile
}

// RefreshProfile re-fetches and persists the profile. Concurrent calls share one request.
func (srv *sessionService) RefreshProfile(ctx context.Context) (*entity.UserProfile, error) {
	binding := srv.binder.Binding(ctx)

	switch binding.Status {
	case entity.BindingStale:
		srv.log(ctx).Info("Stale session, logging out",
			slog.String("tenant", binding.Tenant.String()),
			slog.String("issuing_tenant", binding.IssuingTenant.String()),
		)
		if err := srv.Logout(ctx); err != nil {
			return nil, err
		}

		return nil, errors.WithStack(domainerrors.ErrStaleSession)
	case entity.BindingAnonymous:
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	// the shared fetch outlives any single caller; each caller only stops waiting
	fetchCtx := context.WithoutCancel(ctx)
	results := srv.refresh.DoChan(binding.Tenant.String()+"\x00"+binding.Token, func() (any, error) {
		return srv.fetchProfile(fetchCtx, binding)
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "profile refresh abandoned")
	case res := <-results:
		if res.Shared {
			srv.log(ctx).Debug("Profile refresh shared with a concurrent caller")
		}
		if res.Err != nil {
			return nil, res.Err
		}

		profile := *res.Val.(*entity.UserProfile)

		return &profile, nil
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (srv *sessionService) fetchProfile(ctx context.Context, binding entity.SessionBinding) (*entity.UserProfile, error) {
	profile, err := srv.auth.FetchProfile(ctx)
	if err == nil && profile != nil && !profile.Tenant.IsZero() && profile.Tenant != binding.Tenant {
		err = domainerrors.ErrTenantMismatch
	}
	if err == nil && profile == nil {
		err = errors.New("empty profile")
	}
	if err != nil && isCancellation(err) {
		// an interrupted request says nothing about the token
		return nil, errors.Wrap(err, "profile refresh interrupted")
	}
	if err != nil {
		srv.log(ctx).Warn("Profile refresh failed, logging out", slog.Any("error", err))
		if logoutErr := srv.Logout(ctx); logoutErr != nil {
			srv.log(ctx).Error("Failed to log out after refresh failure", slog.Any("error", logoutErr))
		}

		return nil, errors.WithStack(domainerrors.ErrProfileFetchFailure.WithDetails(err.Error()))
	}

	if profile.Tenant.IsZero() {
		profile.Tenant = binding.Tenant
	}

	// the session may have changed while the request was in flight
	if current := srv.binder.Binding(ctx); current.Token != binding.Token || current.Tenant != binding.Tenant {
		return nil, errors.WithStack(domainerrors.ErrStaleSession)
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := srv.store.Set(ctx, repository.KeyUserData, string(data)); err != nil {
		return nil, errors.Wrap(err, "failed to persist profile")
	}

	return profile, nil
}

// Invalidate destroys the session after a 401.
func (srv *sessionService) Invalidate(ctx context.Context) error {
	srv.log(ctx).Warn("Backend rejected the session token, logging out")

	return srv.Logout(ctx)
}

// SwitchTenant selects id and drops the profile cached for the previous tenant.
// The token stays, so the binding turns stale until the user logs in again.
func (srv *sessionService) SwitchTenant(ctx context.Context, id entity.TenantID) error {
	id, ok := entity.ParseTenantID(id.String())
	if !ok {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("identificador de município inválido"))
	}

	current, err := srv.tenants.CurrentTenant(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to resolve tenant")
	}
	if current == id {
		return nil
	}

	if err := srv.tenants.SetTenant(ctx, id); err != nil {
		return err
	}
	if err := srv.store.Delete(ctx, repository.KeyUserData); err != nil {
		return errors.Wrap(err, "failed to drop cached profile")
	}

	srv.log(ctx).Info("Tenant switched", slog.String("from", current.String()), slog.String("to", id.String()))

	return nil
}
