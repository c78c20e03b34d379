package memory

import (
	"context"
	"fmt"
	"testing"

	"painel/internal/domain/entity"
	"painel/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTenantRepository()

	require.NoError(t, repo.Create(ctx, &entity.TenantSummary{Subdomain: "praia", Name: "Praia Grande", Active: true}))
	demo := &entity.TenantSummary{Subdomain: "demo", Name: "Município Demonstração", Active: true}
	require.NoError(t, repo.Create(ctx, demo))
	assert.NotEmpty(t, demo.ID)

	assert.ErrorIs(t, repo.Create(ctx, &entity.TenantSummary{Subdomain: "demo"}), repository.ErrTenantDuplicated)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.TenantID("demo"), list[0].Subdomain)

	got, err := repo.FindBySubdomain(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, demo, got)

	_, err = repo.FindBySubdomain(ctx, "atlantida")
	assert.ErrorIs(t, err, repository.ErrTenantNotFound)
}

func TestPersonRepository_TenantIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepository()

	person := &entity.Person{ID: uuid.New(), Tenant: "demo", Name: "Maria", CPF: "12345678901"}
	require.NoError(t, repo.Create(ctx, person))

	// the same CPF may exist in another tenant
	require.NoError(t, repo.Create(ctx, &entity.Person{ID: uuid.New(), Tenant: "praia", Name: "Maria", CPF: "12345678901"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Person{ID: uuid.New(), Tenant: "demo", CPF: "12345678901"}), repository.ErrPersonDuplicated)

	_, err := repo.FindByID(ctx, "praia", person.ID)
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "praia", person.ID), repository.ErrPersonNotFound)

	updated := *person
	updated.Name = "Maria Souza"
	require.NoError(t, repo.Update(ctx, &updated))
	got, err := repo.FindByID(ctx, "demo", person.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", got.Name)

	// returned values are copies
	got.Name = "changed"
	again, err := repo.FindByID(ctx, "demo", person.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", again.Name)

	require.NoError(t, repo.Delete(ctx, "demo", person.ID))
	_, err = repo.FindByID(ctx, "demo", person.ID)
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestPersonRepository_ListSearchAndPages(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepository()

	for i := range 25 {
		require.NoError(t, repo.Create(ctx, &entity.Person{
			ID:     uuid.New(),
			Tenant: "demo",
			Name:   fmt.Sprintf("Pessoa %02d", i),
			CPF:    fmt.Sprintf("%011d", i),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Person{ID: uuid.New(), Tenant: "demo", Name: "João Silva", CPF: "99999999999", Email: "joao@exemplo.com"}))

	tests := []struct {
		name      string
		query     entity.ListQuery
		wantLen   int
		wantTotal int
		first     string
	}{
		{name: "first page", query: entity.ListQuery{Page: 1, Limit: 10}, wantLen: 10, wantTotal: 26, first: "João Silva"},
		{name: "last page", query: entity.ListQuery{Page: 3, Limit: 10}, wantLen: 6, wantTotal: 26, first: "Pessoa 19"},
		{name: "past the end", query: entity.ListQuery{Page: 9, Limit: 10}, wantLen: 0, wantTotal: 26},
		{name: "search by name ignores case", query: entity.ListQuery{Search: "JOÃO"}, wantLen: 1, wantTotal: 1, first: "João Silva"},
		{name: "search by email", query: entity.ListQuery{Search: "exemplo.com"}, wantLen: 1, wantTotal: 1, first: "João Silva"},
		{name: "search by cpf", query: entity.ListQuery{Search: "00000000024"}, wantLen: 1, wantTotal: 1, first: "Pessoa 24"},
		{name: "defaults", query: entity.ListQuery{}, wantLen: entity.DefaultPageLimit, wantTotal: 26, first: "João Silva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.List(ctx, "demo", tt.query)
			require.NoError(t, err)
			assert.Len(t, items, tt.wantLen)
			assert.Equal(t, tt.wantTotal, total)
			if tt.first != "" {
				require.NotEmpty(t, items)
				assert.Equal(t, tt.first, items[0].Name)
			}
		})
	}

	items, total, err := repo.List(ctx, "praia", entity.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	admin := &entity.Account{
		ID:          uuid.New(),
		Tenant:      "demo",
		Name:        "Administrador",
		Username:    "admin",
		Role:        entity.RoleAdmin,
		Permissions: entity.DefaultPermissions(entity.RoleAdmin),
	}
	require.NoError(t, repo.Create(ctx, admin))
	require.NoError(t, repo.Create(ctx, &entity.Account{ID: uuid.New(), Tenant: "praia", Username: "admin"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Account{ID: uuid.New(), Tenant: "demo", Username: "ADMIN"}), repository.ErrAccountDuplicated)

	got, err := repo.FindByUsername(ctx, "demo", "Admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	got.Permissions[0] = "CHANGED"
	again, err := repo.FindByID(ctx, "demo", admin.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPermissions(entity.RoleAdmin), again.Permissions)

	_, err = repo.FindByUsername(ctx, "demo", "ninguem")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	other := &entity.Account{ID: uuid.New(), Tenant: "demo", Name: "Operador", Username: "operador"}
	require.NoError(t, repo.Create(ctx, other))
	other.Username = "admin"
	assert.ErrorIs(t, repo.Update(ctx, other), repository.ErrAccountDuplicated)

	items, total, err := repo.List(ctx, "demo", entity.ListQuery{Search: "oper"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "operador", items[0].Username)

	require.NoError(t, repo.Delete(ctx, "demo", other.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "demo", other.ID), repository.ErrAccountNotFound)
}
