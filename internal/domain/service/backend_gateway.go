// Package service defines interfaces for core, stateless domain logic and for the
// external collaborators the application talks to.
package service

import (
	"context"

	"painel/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthGateway is the authentication endpoint of the backend as seen by the dashboard.
type AuthGateway interface {
	// Login sends credentials for the given tenant. A rejection is returned as *errors.AuthError.
	Login(ctx context.Context, tenant entity.TenantID, creds entity.Credentials) (*entity.LoginResult, error)

	// FetchProfile loads the profile of the currently bound session.
	FetchProfile(ctx context.Context) (*entity.UserProfile, error)
}

// DirectoryGateway lists and verifies tenants.
type DirectoryGateway interface {
	ListTenants(ctx context.Context) ([]*entity.TenantSummary, error)
	GetTenant(ctx context.Context, id entity.TenantID) (*entity.TenantSummary, error)
}

// PeopleGateway is the people CRUD of the backend.
type PeopleGateway interface {
	ListPeople(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Person], error)
	GetPerson(ctx context.Context, id uuid.UUID) (*entity.Person, error)
	CreatePerson(ctx context.Context, input entity.PersonInput) (*entity.Person, error)
	UpdatePerson(ctx context.Context, id uuid.UUID, input entity.PersonInput) (*entity.Person, error)
	DeletePerson(ctx context.Context, id uuid.UUID) error
}

// AccountGateway is the system-account administration of the backend.
type AccountGateway interface {
	ListAccounts(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Account], error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	CreateAccount(ctx context.Context, input entity.AccountInput) (*entity.Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, input entity.AccountInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	ResetPassword(ctx context.Context, id uuid.UUID, reset entity.PasswordReset) error
	BlockAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	UnblockAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
