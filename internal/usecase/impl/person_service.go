package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/repository"
	"painel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// personService implements the PersonUsecase interface.
type personService struct {
	people repository.PersonRepository
	logger *slog.Logger
}

// NewPersonService is the constructor for personService.
func NewPersonService(people repository.PersonRepository, logger *slog.Logger) usecase.PersonUsecase {
	return &personService{people: people, logger: logger}
}

func (srv *personService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *personService) List(ctx context.Context, tenant entity.TenantID, query entity.ListQuery) (*entity.Page[*entity.Person], error) {
	query = query.Normalize()

	items, total, err := srv.people.List(ctx, tenant, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list people")
	}

	return &entity.Page[*entity.Person]{Items: items, Page: query.Page, Limit: query.Limit, Total: total}, nil
}

func (srv *personService) Get(ctx context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Person, error) {
	person, err := srv.people.FindByID(ctx, tenant, id)
	if err != nil {
		return nil, mapPersonError(err, "failed to find person")
	}

	return person, nil
}

func (srv *personService) Create(ctx context.Context, tenant entity.TenantID, input entity.PersonInput) (*entity.Person, error) {
	now := time.Now().UTC()
	person := &entity.Person{
		ID:        uuid.New(),
		Tenant:    tenant,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyPersonInput(person, input)

	if err := srv.people.Create(ctx, person); err != nil {
		return nil, mapPersonError(err, "failed to create person")
	}
	srv.log(ctx).Info("Person created", slog.String("tenant", tenant.String()), slog.String("person_id", person.ID.String()))

	return person, nil
}

func (srv *personService) Update(ctx context.Context, tenant entity.TenantID, id uuid.UUID, input entity.PersonInput) (*entity.Person, error) {
	person, err := srv.people.FindByID(ctx, tenant, id)
	if err != nil {
		return nil, mapPersonError(err, "failed to find person")
	}

	applyPersonInput(person, input)
	person.UpdatedAt = time.Now().UTC()

	if err := srv.people.Update(ctx, person); err != nil {
		return nil, mapPersonError(err, "failed to update person")
	}

	return person, nil
}

func (srv *personService) Delete(ctx context.Context, tenant entity.TenantID, id uuid.UUID) error {
	if err := srv.people.Delete(ctx, tenant, id); err != nil {
		return mapPersonError(err, "failed to delete person")
	}
	srv.log(ctx).Info("Person deleted", slog.String("tenant", tenant.String()), slog.String("person_id", id.String()))

	return nil
}

func applyPersonInput(person *entity.Person, input entity.PersonInput) {
	person.Name = input.Name
	person.CPF = input.CPF
	person.BirthDate = input.BirthDate
	person.Phone = input.Phone
	person.Email = input.Email
	person.Address = input.Address
}

func mapPersonError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrPersonNotFound):
		return errors.WithStack(domainerrors.ErrPersonNotFound)
	case errors.Is(err, repository.ErrPersonDuplicated):
		return errors.WithStack(domainerrors.ErrPersonAlreadyExists)
	default:
		return errors.Wrap(err, message)
	}
}
