package postgres

import (
	"context"

	"painel/internal/domain/entity"
	"painel/internal/domain/repository"
	"painel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// personRepository implements repository.PersonRepository using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

func (repo *personRepository) scoped(ctx context.Context, tenant entity.TenantID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.PersonModel{}).Where("tenant = ?", tenant.String())
}

func (repo *personRepository) List(ctx context.Context, tenant entity.TenantID, query entity.ListQuery) ([]*entity.Person, int, error) {
	page, count := paginate(repo.scoped(ctx, tenant), query, "name", "cpf", "email")

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count people")
	}

	var rows []*model.PersonModel
	if err := page.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list people")
	}

	people := make([]*entity.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, toPersonDomain(row))
	}

	return people, int(total), nil
}

func (repo *personRepository) FindByID(ctx context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Person, error) {
	var row model.PersonModel
	if err := repo.scoped(ctx, tenant).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person")
	}

	return toPersonDomain(&row), nil
}

func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	if err := repo.db.WithContext(ctx).Create(fromPersonDomain(person)).Error; err != nil {
		return mapWriteError(err, repository.ErrPersonDuplicated, "failed to create person")
	}

	return nil
}

func (repo *personRepository) Update(ctx context.Context, person *entity.Person) error {
	row := fromPersonDomain(person)
	result := repo.scoped(ctx, person.Tenant).Where("id = ?", person.ID).Select("*").Omit("id", "tenant", "created_at").Updates(row)
	if result.Error != nil {
		return mapWriteError(result.Error, repository.ErrPersonDuplicated, "failed to update person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

func (repo *personRepository) Delete(ctx context.Context, tenant entity.TenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("tenant = ? AND id = ?", tenant.String(), id).Delete(&model.PersonModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

func toPersonDomain(row *model.PersonModel) *entity.Person {
	return &entity.Person{
		ID:        row.ID,
		Tenant:    entity.TenantID(row.Tenant),
		Name:      row.Name,
		CPF:       row.CPF,
		BirthDate: row.BirthDate,
		Phone:     row.Phone,
		Email:     row.Email,
		Address:   row.Address,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func fromPersonDomain(person *entity.Person) *model.PersonModel {
	return &model.PersonModel{
		ID:        person.ID,
		Tenant:    person.Tenant.String(),
		Name:      person.Name,
		CPF:       person.CPF,
		BirthDate: person.BirthDate,
		Phone:     person.Phone,
		Email:     person.Email,
		Address:   person.Address,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}
}
