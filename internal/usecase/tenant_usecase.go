// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"net/url"

	"painel/internal/domain/entity"
)

// MaxRecentTenants bounds the recent-tenant list.
const MaxRecentTenants = 5

// TenantUsecase resolves which tenant every request targets.
type TenantUsecase interface {
	// SetTenant overwrites the persisted selection. Setting the current value again is a no-op.
	SetTenant(ctx context.Context, id entity.TenantID) error

	// CurrentTenant returns the selected tenant, or "" when only the default is available.
	CurrentTenant(ctx context.Context) (entity.TenantID, error)

	// Resolve runs the full resolution order, including the default.
	Resolve(ctx context.Context) (entity.TenantResolution, error)

	// ClearTenant removes the persisted selection.
	ClearTenant(ctx context.Context) error

	// BuildURL returns a navigable URL for path that embeds the tenant. A non-empty
	// override replaces the current tenant.
	BuildURL(ctx context.Context, path string, override entity.TenantID) (string, error)

	// SetLocation sets the location hints are derived from.
	SetLocation(u *url.URL)

	// Location returns the current location.
	Location() *url.URL

	// RememberTenant pushes a tenant to the front of the recent list.
	RememberTenant(ctx context.Context, summary *entity.TenantSummary) error

	// RecentTenants returns the recent list, most recent first.
	RecentTenants(ctx context.Context) ([]*entity.TenantSummary, error)

	// ForgetRecentTenants clears the recent list.
	ForgetRecentTenants(ctx context.Context) error
}
