package repository

import (
	"context"
	"errors"

	"painel/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrPersonNotFound is returned when a person does not exist inside the tenant.
	ErrPersonNotFound = errors.New("person not found")
	// ErrPersonDuplicated is returned when the CPF is already registered inside the tenant.
	ErrPersonDuplicated = errors.New("person already exists")
)

// PersonRepository defines the persistence operations for people. Every call is scoped to a tenant.
type PersonRepository interface {
	List(ctx context.Context, tenant entity.TenantID, query entity.ListQuery) ([]*entity.Person, int, error)
	FindByID(ctx context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Person, error)
	Create(ctx context.Context, person *entity.Person) error
	Update(ctx context.Context, person *entity.Person) error
	Delete(ctx context.Context, tenant entity.TenantID, id uuid.UUID) error
}
