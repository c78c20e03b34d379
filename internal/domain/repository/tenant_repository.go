package repository

import (
	"context"
	"errors"

	"painel/internal/domain/entity"
)

var (
	// ErrTenantNotFound is returned when no tenant has the requested subdomain.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrTenantDuplicated is returned when the subdomain is already taken.
	ErrTenantDuplicated = errors.New("tenant already exists")
)

// TenantRepository defines the persistence operations for the tenant directory.
type TenantRepository interface {
	// List returns every tenant, active or not, ordered by name.
	List(ctx context.Context) ([]*entity.TenantSummary, error)

	// FindBySubdomain retrieves a single tenant.
	FindBySubdomain(ctx context.Context, subdomain entity.TenantID) (*entity.TenantSummary, error)

	// Create persists a new tenant.
	Create(ctx context.Context, tenant *entity.TenantSummary) error
}
