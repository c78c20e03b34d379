package usecase

import (
	"context"

	"painel/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase is the authenticated, capability-checked view of the backend used by the
// dashboard shell. A 401 from the backend invalidates the session.
type DashboardUsecase interface {
	// Allowed reports whether the cached profile holds every required permission.
	Allowed(ctx context.Context, required ...entity.Permission) bool

	ListPeople(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Person], error)
	GetPerson(ctx context.Context, id uuid.UUID) (*entity.Person, error)
	CreatePerson(ctx context.Context, input entity.PersonInput) (*entity.Person, error)
	UpdatePerson(ctx context.Context, id uuid.UUID, input entity.PersonInput) (*entity.Person, error)
	DeletePerson(ctx context.Context, id uuid.UUID) error

	ListAccounts(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Account], error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	CreateAccount(ctx context.Context, input entity.AccountInput) (*entity.Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, input entity.AccountInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	ResetPassword(ctx context.Context, id uuid.UUID, reset entity.PasswordReset) error
	BlockAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	UnblockAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
