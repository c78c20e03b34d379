package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"painel/internal/domain/entity"
	"painel/internal/domain/repository"

	"github.com/google/uuid"
)

// AccountRepository implements repository.AccountRepository in memory.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]entity.Account
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates an empty AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[uuid.UUID]entity.Account)}
}

func (repo *AccountRepository) List(_ context.Context, tenant entity.TenantID, query entity.ListQuery) ([]*entity.Account, int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var found []*entity.Account
	for _, a := range repo.accounts {
		if a.Tenant == tenant && matches(query.Search, a.Name, a.Username, a.Email) {
			found = append(found, clone(a))
		}
	}
	slices.SortFunc(found, func(x, y *entity.Account) int {
		return cmp.Or(cmp.Compare(x.Name, y.Name), cmp.Compare(x.Username, y.Username))
	})

	start, end := window(query, len(found))

	return found[start:end], len(found), nil
}

func (repo *AccountRepository) FindByID(_ context.Context, tenant entity.TenantID, id uuid.UUID) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	a, ok := repo.accounts[id]
	if !ok || a.Tenant != tenant {
		return nil, repository.ErrAccountNotFound
	}

	return clone(a), nil
}

func (repo *AccountRepository) FindByUsername(_ context.Context, tenant entity.TenantID, username string) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, a := range repo.accounts {
		if a.Tenant == tenant && strings.EqualFold(a.Username, username) {
			return clone(a), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (repo *AccountRepository) Create(_ context.Context, account *entity.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.duplicated(account) {
		return repository.ErrAccountDuplicated
	}
	repo.accounts[account.ID] = *clone(*account)

	return nil
}

func (repo *AccountRepository) Update(_ context.Context, account *entity.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	current, ok := repo.accounts[account.ID]
	if !ok || current.Tenant != account.Tenant {
		return repository.ErrAccountNotFound
	}
	if repo.duplicated(account) {
		return repository.ErrAccountDuplicated
	}
	updated := *clone(*account)
	updated.CreatedAt = current.CreatedAt
	repo.accounts[account.ID] = updated

	return nil
}

func (repo *AccountRepository) Delete(_ context.Context, tenant entity.TenantID, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	a, ok := repo.accounts[id]
	if !ok || a.Tenant != tenant {
		return repository.ErrAccountNotFound
	}
	delete(repo.accounts, id)

	return nil
}

// duplicated reports another account of the same tenant with the same username. Callers hold the lock.
func (repo *AccountRepository) duplicated(account *entity.Account) bool {
	for id, a := range repo.accounts {
		if id != account.ID && a.Tenant == account.Tenant && strings.EqualFold(a.Username, account.Username) {
			return true
		}
	}

	return false
}

func clone(a entity.Account) *entity.Account {
	a.Permissions = slices.Clone(a.Permissions)

	return &a
}
