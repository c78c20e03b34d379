// Package memory keeps the API repositories in process memory. It serves the demo API
// when no database is configured, and the tests.
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

// TenantRepository implements repository.TenantRepository in memory.
type TenantRepository struct {
	mu      sync.RWMutex
	tenants map[entity.TenantID]entity.TenantSummary
}

var _ repository.TenantRepository = (*TenantRepository)(nil)

// NewTenantRepository creates an empty TenantRepository.
func NewTenantRepository() *TenantRepository {
	return &TenantRepository{tenants: make(map[entity.TenantID]entity.TenantSummary)}
}

func (repo *TenantRepository) List(_ context.Context) ([]*entity.TenantSummary, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.TenantSummary, 0, len(repo.tenants))
	for _, t := range repo.tenants {
		out = append(out, &t)
	}
	slices.SortFunc(out, func(a, b *entity.TenantSummary) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return out, nil
}

func (repo *TenantRepository) FindBySubdomain(_ context.Context, subdomain entity.TenantID) (*entity.TenantSummary, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	t, ok := repo.tenants[subdomain]
	if !ok {
		return nil, repository.ErrTenantNotFound
	}

	return &t, nil
}

func (repo *TenantRepository) Create(_ context.Context, tenant *entity.TenantSummary) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.tenants[tenant.Subdomain]; ok {
		return repository.ErrTenantDuplicated
	}
	if tenant.ID == "" {
		tenant.ID = uuid.NewString()
	}
	repo.tenants[tenant.Subdomain] = *tenant

	return nil
}
