package usecase

import (
	"context"
	"net/http"

	"painel/internal/domain/entity"
)

// SessionBinder computes the tenant/token pairing. It is re-evaluated on every call and never fails;
// storage errors read as an absent value.
type SessionBinder interface {
	Binding(ctx context.Context) entity.SessionBinding
	IsAuthenticated(ctx context.Context) bool
}

// HeaderComposer builds the headers of every outgoing API call.
type HeaderComposer interface {
	// Compose always carries the tenant when one is resolved. The bearer token is added only
	// when authenticated is requested and the binding is authenticated.
	Compose(ctx context.Context, authenticated bool) http.Header

	// TenantHeader is the name of the tenant header.
	TenantHeader() string
}

// SessionUsecase owns the persisted session.
type SessionUsecase interface {
	// Login authenticates against the current tenant and persists the session on success.
	Login(ctx context.Context, creds entity.Credentials) (*entity.UserProfile, error)

	// Logout removes the session but keeps the tenant selection.
	Logout(ctx context.Context) error

	// StoredToken returns the persisted token, if any.
	StoredToken(ctx context.Context) (string, bool)

	// StoredUser returns the cached profile, or nil when it belongs to another tenant.
	StoredUser(ctx context.Context) *entity.UserProfile

	// RefreshProfile re-fetches the profile of an authenticated session. Any failure logs out.
	RefreshProfile(ctx context.Context) (*entity.UserProfile, error)

	// Invalidate destroys the session after the backend rejected its token.
	Invalidate(ctx context.Context) error

	// SwitchTenant selects another tenant, dropping the cached profile of the previous one.
	SwitchTenant(ctx context.Context, id entity.TenantID) error
}

// DirectoryUsecase browses the tenant directory and performs tenant selection.
type DirectoryUsecase interface {
	ListTenants(ctx context.Context) ([]*entity.TenantSummary, error)

	// SelectTenant verifies that raw names an active tenant, switches to it and records it as recent.
	SelectTenant(ctx context.Context, raw string) (*entity.TenantSummary, error)
}

// GateUsecase decides between the login flow and the dashboard and drives navigation there.
type GateUsecase interface {
	Evaluate(ctx context.Context, refresh bool) (entity.GateDecision, error)

	// Navigate tries each navigation primitive until one arrives. When none does, the result is
	// GateManualFallback together with ErrNavigationStall.
	Navigate(ctx context.Context, decision entity.GateDecision) (entity.NavigationResult, error)
}
