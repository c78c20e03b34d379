package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"painel/internal/domain/entity"
	"painel/internal/domain/repository"

	"github.com/google/uuid"
)

// PersonRepository implements repository.PersonRepository in memory.
type PersonRepository struct {
	mu     sync.RWMutex
	people map[uuid.UUID]entity.Person
}

var _ repository.PersonRepository = (*PersonRepository)(nil)

// NewPersonRepository creates an empty PersonRepository.
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{people: make(map[uuid.UUID]entity.Person)}
}

func (repo *PersonRepository) List(_ context.Context, tenant entity.TenantID, query entity.ListQuery) ([]*entity.Person, int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var found []*entity.Person
	for _, p := range repo.people {
		if p.Tenant == tenant && matches(query.Search, p.Name, p.CPF, p.Email) {
			found = append(found, &p)
		}
	}
	slices.SortFunc(found, func(a, b *entity.Person) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID.String(), b.ID.String()))
	})

	start, end := window(query, len(found))

	return found[start:end], len(found), nil
}

func (repo *PersonRepository) FindByID(_ context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	p, ok := repo.people[id]
	if !ok || p.Tenant != tenant {
		return nil, repository.ErrPersonNotFound
	}

	return &p, nil
}

func (repo *PersonRepository) Create(_ context.Context, person *entity.Person) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.duplicated(person) {
		return repository.ErrPersonDuplicated
	}
	repo.people[person.ID] = *person

	return nil
}

func (repo *PersonRepository) Update(_ context.Context, person *entity.Person) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	current, ok := repo.people[person.ID]
	if !ok || current.Tenant != person.Tenant {
		return repository.ErrPersonNotFound
	}
	if repo.duplicated(person) {
		return repository.ErrPersonDuplicated
	}
	updated := *person
	updated.CreatedAt = current.CreatedAt
	repo.people[person.ID] = updated

	return nil
}

func (repo *PersonRepository) Delete(_ context.Context, tenant entity.TenantID, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	p, ok := repo.people[id]
	if !ok || p.Tenant != tenant {
		return repository.ErrPersonNotFound
	}
	delete(repo.people, id)

	return nil
}

// duplicated reports another person of the same tenant with the same CPF. Callers hold the lock.
func (repo *PersonRepository) duplicated(person *entity.Person) bool {
	for id, p := range repo.people {
		if id != person.ID && p.Tenant == person.Tenant && p.CPF == person.CPF {
			return true
		}
	}

	return false
}
