package impl

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"painel/config"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/repository"
	"painel/internal/infra/storage"
	mockRepo "painel/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTenantService(t *testing.T, tc *config.TenantConfig, store repository.StateStore) *tenantService {
	t.Helper()

	srv, err := NewTenantService(&config.Config{Tenant: tc}, store, newDiscardLogger())
	require.NoError(t, err)

	return srv.(*tenantService)
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)

	return u
}

func TestNewTenantService_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		tc   *config.TenantConfig
	}{
		{name: "unknown strategy", tc: &config.TenantConfig{Strategy: "cookie"}},
		{name: "invalid default", tc: &config.TenantConfig{Default: "Not A Tenant!"}},
		{name: "bad dashboard url", tc: &config.TenantConfig{DashboardURL: "http://[::1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTenantService(&config.Config{Tenant: tt.tc}, storage.NewMemoryStore(), newDiscardLogger())
			assert.Error(t, err)
		})
	}
}

func TestTenantService_ResolveOrder(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	srv := newTenantService(t, &config.TenantConfig{
		Strategy:     "query",
		Default:      "capital",
		DashboardURL: "http://localhost:5173/?tenant=praia",
	}, store)

	// hint beats default
	res, err := srv.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TenantResolution{ID: "praia", Source: entity.TenantSourceHint, Selected: true}, res)

	// persisted beats hint
	require.NoError(t, srv.SetTenant(ctx, "demo"))
	res, err = srv.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TenantResolution{ID: "demo", Source: entity.TenantSourcePersisted, Selected: true}, res)

	// default is never a selection
	require.NoError(t, srv.ClearTenant(ctx))
	srv.SetLocation(mustParseURL(t, "http://localhost:5173/"))
	res, err = srv.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TenantResolution{ID: "capital", Source: entity.TenantSourceDefault}, res)

	current, err := srv.CurrentTenant(ctx)
	require.NoError(t, err)
	assert.True(t, current.IsZero())
}

func TestTenantService_ResolveIgnoresInvalidPersistedValue(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, repository.KeySelectedTenant, "NOT VALID"))

	srv := newTenantService(t, &config.TenantConfig{Strategy: "query"}, store)

	res, err := srv.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TenantSourceNone, res.Source)
	assert.False(t, res.Selected)
}

func TestTenantService_ResolveStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockStateStore(t)
	store.EXPECT().Get(ctx, repository.KeySelectedTenant).Return("", false, repository.ErrStateUnavailable)

	srv := newTenantService(t, &config.TenantConfig{Strategy: "query"}, store)

	_, err := srv.Resolve(ctx)
	assert.ErrorIs(t, err, repository.ErrStateUnavailable)
}

func TestTenantService_Hint(t *testing.T) {
	tests := []struct {
		name     string
		tc       *config.TenantConfig
		location string
		want     entity.TenantID
		found    bool
	}{
		{
			name:     "subdomain below base domain",
			tc:       &config.TenantConfig{Strategy: "subdomain", BaseDomain: "painel.gov.br"},
			location: "https://demo.painel.gov.br/login",
			want:     "demo",
			found:    true,
		},
		{
			name:     "subdomain takes leftmost label",
			tc:       &config.TenantConfig{Strategy: "subdomain", BaseDomain: "painel.gov.br"},
			location: "https://admin.demo.painel.gov.br/",
			want:     "admin",
			found:    true,
		},
		{
			name:     "base domain itself has no tenant",
			tc:       &config.TenantConfig{Strategy: "subdomain", BaseDomain: "painel.gov.br"},
			location: "https://painel.gov.br/",
		},
		{
			name:     "www is not a tenant",
			tc:       &config.TenantConfig{Strategy: "subdomain", BaseDomain: "painel.gov.br"},
			location: "https://www.painel.gov.br/",
		},
		{
			name:     "foreign host",
			tc:       &config.TenantConfig{Strategy: "subdomain", BaseDomain: "painel.gov.br"},
			location: "https://demo.example.com/",
		},
		{
			name:     "ip address",
			tc:       &config.TenantConfig{Strategy: "subdomain"},
			location: "http://127.0.0.1:5173/",
		},
		{
			name:     "no base domain needs three labels",
			tc:       &config.TenantConfig{Strategy: "subdomain"},
			location: "http://demo.localhost/",
		},
		{
			name:     "no base domain with three labels",
			tc:       &config.TenantConfig{Strategy: "subdomain"},
			location: "http://demo.painel.local/",
			want:     "demo",
			found:    true,
		},
		{
			name:     "query parameter",
			tc:       &config.TenantConfig{Strategy: "query", QueryParam: "municipio"},
			location: "http://localhost:5173/login?municipio=Demo",
			want:     "demo",
			found:    true,
		},
		{
			name:     "query parameter invalid",
			tc:       &config.TenantConfig{Strategy: "query"},
			location: "http://localhost:5173/login?tenant=no%20way",
		},
		{
			name:     "path segment",
			tc:       &config.TenantConfig{Strategy: "path"},
			location: "http://localhost:5173/demo/dashboard",
			want:     "demo",
			found:    true,
		},
		{
			name:     "path segment after prefix",
			tc:       &config.TenantConfig{Strategy: "path", PathPrefix: "/app"},
			location: "http://localhost:5173/app/demo/login",
			want:     "demo",
			found:    true,
		},
		{
			name:     "path outside prefix",
			tc:       &config.TenantConfig{Strategy: "path", PathPrefix: "/app"},
			location: "http://localhost:5173/other/demo",
		},
		{
			name:     "login route is not a tenant",
			tc:       &config.TenantConfig{Strategy: "path"},
			location: "http://localhost:5173/login",
		},
		{
			name:     "dashboard route is not a tenant",
			tc:       &config.TenantConfig{Strategy: "path"},
			location: "http://localhost:5173/dashboard",
		},
		{
			name:     "dashboard base path is not a tenant",
			tc:       &config.TenantConfig{Strategy: "path", DashboardURL: "http://localhost:5173/app/"},
			location: "http://localhost:5173/app/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTenantService(t, tt.tc, storage.NewMemoryStore())

			got, found := srv.hint(mustParseURL(t, tt.location))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTenantService_SetTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and persists", func(t *testing.T) {
		store := storage.NewMemoryStore()
		srv := newTenantService(t, &config.TenantConfig{}, store)

		require.NoError(t, srv.SetTenant(ctx, " Demo "))

		v, ok, err := store.Get(ctx, repository.KeySelectedTenant)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "demo", v)
	})

	t.Run("rejects invalid identifier", func(t *testing.T) {
		store := mockRepo.NewMockStateStore(t)
		srv := newTenantService(t, &config.TenantConfig{}, store)

		err := srv.SetTenant(ctx, "not/valid")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("same value twice writes once", func(t *testing.T) {
		store := mockRepo.NewMockStateStore(t)
		store.EXPECT().Get(ctx, repository.KeySelectedTenant).Return("", false, nil).Once()
		store.EXPECT().Set(ctx, repository.KeySelectedTenant, "demo").Return(nil).Once()
		store.EXPECT().Get(ctx, repository.KeySelectedTenant).Return("demo", true, nil).Once()

		srv := newTenantService(t, &config.TenantConfig{}, store)

		require.NoError(t, srv.SetTenant(ctx, "demo"))
		require.NoError(t, srv.SetTenant(ctx, "demo"))
	})

	t.Run("write failure", func(t *testing.T) {
		store := mockRepo.NewMockStateStore(t)
		store.EXPECT().Get(ctx, repository.KeySelectedTenant).Return("", false, nil)
		store.EXPECT().Set(ctx, repository.KeySelectedTenant, "demo").Return(repository.ErrStateUnavailable)

		srv := newTenantService(t, &config.TenantConfig{}, store)

		err := srv.SetTenant(ctx, "demo")
		assert.ErrorIs(t, err, repository.ErrStateUnavailable)
	})
}

func TestTenantService_BuildURL(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		tc       *config.TenantConfig
		selected entity.TenantID
		target   string
		override entity.TenantID
		want     string
	}{
		{
			name:     "query strategy",
			tc:       &config.TenantConfig{Strategy: "query", DashboardURL: "http://localhost:5173/"},
			selected: "demo",
			target:   "/dashboard",
			want:     "http://localhost:5173/dashboard?tenant=demo",
		},
		{
			name:     "query strategy keeps target query",
			tc:       &config.TenantConfig{Strategy: "query", DashboardURL: "http://localhost:5173/"},
			selected: "demo",
			target:   "pessoas?page=2",
			want:     "http://localhost:5173/pessoas?page=2&tenant=demo",
		},
		{
			name:     "subdomain strategy keeps port",
			tc:       &config.TenantConfig{Strategy: "subdomain", BaseDomain: "painel.local", DashboardURL: "http://painel.local:5173/"},
			selected: "demo",
			target:   "/login",
			want:     "http://demo.painel.local:5173/login",
		},
		{
			name:     "path strategy with prefix",
			tc:       &config.TenantConfig{Strategy: "path", PathPrefix: "app", DashboardURL: "https://painel.gov.br/"},
			selected: "demo",
			target:   "/dashboard#top",
			want:     "https://painel.gov.br/app/demo/dashboard#top",
		},
		{
			name:     "override wins over selection",
			tc:       &config.TenantConfig{Strategy: "query", DashboardURL: "http://localhost:5173/"},
			selected: "demo",
			target:   "/login",
			override: "praia",
			want:     "http://localhost:5173/login?tenant=praia",
		},
		{
			name:   "no tenant leaves url bare",
			tc:     &config.TenantConfig{Strategy: "query", DashboardURL: "http://localhost:5173/"},
			target: "/login",
			want:   "http://localhost:5173/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTenantService(t, tt.tc, storage.NewMemoryStore())
			if !tt.selected.IsZero() {
				require.NoError(t, srv.SetTenant(ctx, tt.selected))
			}

			got, err := srv.BuildURL(ctx, tt.target, tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTenantService_BuildURLErrors(t *testing.T) {
	ctx := context.Background()

	srv := newTenantService(t, &config.TenantConfig{Strategy: "query"}, storage.NewMemoryStore())
	_, err := srv.BuildURL(ctx, "/login", "")
	assert.Error(t, err, "no location configured")

	srv.SetLocation(mustParseURL(t, "http://localhost:5173/"))
	_, err = srv.BuildURL(ctx, "https://evil.example.com/login", "")
	assert.Error(t, err)

	_, err = srv.BuildURL(ctx, "/login", "Bad Tenant")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTenantService_LocationIsCopied(t *testing.T) {
	srv := newTenantService(t, &config.TenantConfig{Strategy: "query"}, storage.NewMemoryStore())

	u := mustParseURL(t, "http://localhost:5173/?tenant=demo")
	srv.SetLocation(u)
	u.RawQuery = "tenant=praia"

	got := srv.Location()
	require.NotNil(t, got)
	assert.Equal(t, "tenant=demo", got.RawQuery)

	srv.SetLocation(nil)
	assert.Nil(t, srv.Location())
}

func TestTenantService_RecentTenants(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	srv := newTenantService(t, &config.TenantConfig{}, store)

	recent, err := srv.RecentTenants(ctx)
	require.NoError(t, err)
	assert.Empty(t, recent)

	for i := range 7 {
		summary := &entity.TenantSummary{Subdomain: entity.TenantID(fmt.Sprintf("cidade%d", i)), Active: true}
		require.NoError(t, srv.RememberTenant(ctx, summary))
	}
	require.NoError(t, srv.RememberTenant(ctx, &entity.TenantSummary{Subdomain: "cidade4"}))
	require.NoError(t, srv.RememberTenant(ctx, nil))

	recent, err = srv.RecentTenants(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 5)

	got := make([]entity.TenantID, 0, len(recent))
	for _, r := range recent {
		got = append(got, r.Subdomain)
	}
	assert.Equal(t, []entity.TenantID{"cidade4", "cidade6", "cidade5", "cidade3", "cidade2"}, got)

	require.NoError(t, srv.ForgetRecentTenants(ctx))
	recent, err = srv.RecentTenants(ctx)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestTenantService_RecentTenantsCorrupt(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, repository.KeyRecentTenants, "{not json"))

	srv := newTenantService(t, &config.TenantConfig{}, store)

	recent, err := srv.RecentTenants(ctx)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestTenantService_ClearTenantFailure(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockStateStore(t)
	store.EXPECT().Delete(ctx, repository.KeySelectedTenant).Return(errors.New("disk full"))

	srv := newTenantService(t, &config.TenantConfig{}, store)

	assert.Error(t, srv.ClearTenant(ctx))
}
