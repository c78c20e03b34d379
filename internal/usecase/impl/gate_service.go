package impl

import (
	"context"
	"log/slog"

	"painel/config"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	"painel/internal/usecase"

	"github.com/pkg/errors"
)

// DefaultMaxNavigationAttempts bounds redirect attempts when nothing is configured.
const DefaultMaxNavigationAttempts = 3

// gateService implements the GateUsecase interface.
type gateService struct {
	tenants   usecase.TenantUsecase
	binder    usecase.SessionBinder
	session   usecase.SessionUsecase
	navigator service.Navigator
	logger    *slog.Logger

	maxAttempts   int
	loginPath     string
	dashboardPath string
}

// NewGateService is the constructor for gateService.
func NewGateService(
	cfg *config.Config,
	tenants usecase.TenantUsecase,
	binder usecase.SessionBinder,
	session usecase.SessionUsecase,
	navigator service.Navigator,
	logger *slog.Logger,
) usecase.GateUsecase {
	srv := &gateService{
		tenants:       tenants,
		binder:        binder,
		session:       session,
		navigator:     navigator,
		logger:        logger,
		maxAttempts:   DefaultMaxNavigationAttempts,
		loginPath:     "/login",
		dashboardPath: "/dashboard",
	}

	if nc := cfg.Navigation; nc != nil {
		if nc.MaxAttempts > 0 {
			srv.maxAttempts = nc.MaxAttempts
		}
		if nc.LoginPath != "" {
			srv.loginPath = nc.LoginPath
		}
		if nc.DashboardPath != "" {
			srv.dashboardPath = nc.DashboardPath
		}
	}

	return srv
}

func (srv *gateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Evaluate leaves CheckingAuth for Authenticated only when the binding, the tenant and the
// cached profile all agree. Refresh failures have already logged the user out.
func (srv *gateService) Evaluate(ctx context.Context, refresh bool) (entity.GateDecision, error) {
	decision := entity.GateDecision{State: entity.GateCheckingAuth}

	if refresh && srv.binder.IsAuthenticated(ctx) {
		if _, err := srv.session.RefreshProfile(ctx); err != nil {
			srv.log(ctx).Info("Profile refresh during auth check failed", slog.Any("error", err))
		}
	}

	binding := srv.binder.Binding(ctx)
	profile := srv.session.StoredUser(ctx)
	decision.Tenant = binding.Tenant

	target := srv.loginPath
	decision.State = entity.GateUnauthenticated
	if binding.IsAuthenticated() && !binding.Tenant.IsZero() && profile != nil {
		decision.State = entity.GateAuthenticated
		decision.Profile = profile
		target = srv.dashboardPath
	}

	u, err := srv.tenants.BuildURL(ctx, target, "")
	if err != nil {
		return decision, errors.Wrap(err, "failed to build gate target")
	}
	decision.Target = u

	srv.log(ctx).Debug("Auth check finished",
		slog.String("state", string(decision.State)),
		slog.String("status", string(binding.Status)),
		slog.String("target", u),
	)

	return decision, nil
}

// Navigate escalates through the navigator's primitives, one attempt each, until the
// target is reached or the attempt budget runs out.
func (srv *gateService) Navigate(ctx context.Context, decision entity.GateDecision) (entity.NavigationResult, error) {
	result := entity.NavigationResult{State: decision.State, Target: decision.Target}
	primitives := srv.navigator.Primitives()

	for attempt := 0; attempt < srv.maxAttempts && len(primitives) > 0; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}

		// the most forceful primitive is repeated when the budget exceeds the list
		primitive := primitives[min(attempt, len(primitives)-1)]

		err := primitive.Go(ctx, decision.Target)
		arrived := err == nil && srv.navigator.Arrived(ctx, decision.Target)
		result.Attempts = append(result.Attempts, entity.NavigationAttempt{
			Primitive: primitive.Name(),
			Arrived:   arrived,
			Err:       err,
		})

		srv.log(ctx).Debug("Navigation attempt",
			slog.Int("attempt", attempt+1),
			slog.String("primitive", primitive.Name()),
			slog.Bool("arrived", arrived),
			slog.Any("error", err),
		)

		if arrived {
			return result, nil
		}
	}

	result.State = entity.GateManualFallback
	srv.log(ctx).Warn("Navigation stalled, manual fallback",
		slog.String("target", decision.Target),
		slog.Int("attempts", len(result.Attempts)),
	)

	return result, errors.WithStack(domainerrors.ErrNavigationStall.WithDetails(decision.Target))
}
