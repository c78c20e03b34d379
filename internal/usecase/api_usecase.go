package usecase

import (
	"context"

	"painel/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthUsecase authenticates accounts on the API side.
type AuthUsecase interface {
	// Login checks credentials inside tenant and issues a token bound to it.
	Login(ctx context.Context, tenant entity.TenantID, creds entity.Credentials) (*entity.LoginResult, error)

	// Me loads the current profile of the token's subject.
	Me(ctx context.Context, tenant entity.TenantID, accountID uuid.UUID) (*entity.UserProfile, error)
}

// RegistryUsecase serves the tenant directory on the API side.
type RegistryUsecase interface {
	ListTenants(ctx context.Context) ([]*entity.TenantSummary, error)
	GetTenant(ctx context.Context, id entity.TenantID) (*entity.TenantSummary, error)

	// ActiveTenant returns the tenant only when it exists and is active.
	ActiveTenant(ctx context.Context, id entity.TenantID) (*entity.TenantSummary, error)
}

// PersonUsecase is the people CRUD inside one tenant.
type PersonUsecase interface {
	List(ctx context.Context, tenant entity.TenantID, query entity.ListQuery) (*entity.Page[*entity.Person], error)
	Get(ctx context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Person, error)
	Create(ctx context.Context, tenant entity.TenantID, input entity.PersonInput) (*entity.Person, error)
	Update(ctx context.Context, tenant entity.TenantID, id uuid.UUID, input entity.PersonInput) (*entity.Person, error)
	Delete(ctx context.Context, tenant entity.TenantID, id uuid.UUID) error
}

// AccountUsecase administers system accounts inside one tenant. actor is the account performing
// the change; it may not block or delete itself.
type AccountUsecase interface {
	List(ctx context.Context, tenant entity.TenantID, query entity.ListQuery) (*entity.Page[*entity.Account], error)
	Get(ctx context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Account, error)
	Create(ctx context.Context, tenant entity.TenantID, input entity.AccountInput) (*entity.Account, error)
	Update(ctx context.Context, tenant entity.TenantID, id uuid.UUID, input entity.AccountInput) (*entity.Account, error)
	Delete(ctx context.Context, tenant entity.TenantID, actor, id uuid.UUID) error
	ResetPassword(ctx context.Context, tenant entity.TenantID, id uuid.UUID, reset entity.PasswordReset) error
	SetBlocked(ctx context.Context, tenant entity.TenantID, actor, id uuid.UUID, blocked bool) (*entity.Account, error)
}
