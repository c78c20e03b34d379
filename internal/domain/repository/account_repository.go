package repository

import (
	"context"
	"errors"

	"painel/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account does not exist inside the tenant.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountDuplicated is returned when the username is taken inside the tenant.
	ErrAccountDuplicated = errors.New("account already exists")
)

// AccountRepository defines the persistence operations for system accounts.
// Usernames are unique per tenant, not globally.
type AccountRepository interface {
	List(ctx context.Context, tenant entity.TenantID, query entity.ListQuery) ([]*entity.Account, int, error)
	FindByID(ctx context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Account, error)
	FindByUsername(ctx context.Context, tenant entity.TenantID, username string) (*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, tenant entity.TenantID, id uuid.UUID) error
}
