package api

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"painel/config"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/infra/backend"
	"painel/internal/infra/storage"
	"painel/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// TestClientRoundTrip drives the dashboard client against a live API.
func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t, rate.Inf, 1)
	server := httptest.NewServer(f.echo)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Backend: &config.BackendConfig{BaseURL: server.URL, Timeout: 5 * time.Second},
		Tenant: &config.TenantConfig{
			Strategy:     "query",
			QueryParam:   "tenant",
			Header:       "X-Subdomain",
			DashboardURL: "http://localhost:5173/",
		},
	}

	store := storage.NewMemoryStore()
	tenants, err := impl.NewTenantService(cfg, store, logger)
	require.NoError(t, err)
	binder := impl.NewSessionBinder(tenants, store, logger)
	composer := impl.NewHeaderComposer(cfg, binder, logger)
	client, err := backend.NewClient(cfg, composer, logger)
	require.NoError(t, err)
	session := impl.NewSessionService(tenants, binder, store, client, logger)
	directory := impl.NewDirectoryService(client, tenants, session, logger)
	dashboard := impl.NewDashboardService(binder, session, client, client, logger)

	_, err = session.Login(ctx, entity.Credentials{Username: "admin", Password: "123456"})
	require.ErrorIs(t, err, domainerrors.ErrTenantMissing)

	_, err = directory.SelectTenant(ctx, "fechado")
	require.Error(t, err)

	selected, err := directory.SelectTenant(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, entity.TenantID("demo"), selected.Subdomain)

	_, err = session.Login(ctx, entity.Credentials{Username: "admin", Password: "errada"})
	var authErr *domainerrors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Usuário ou senha inválidos", authErr.Message())
	_, ok := session.StoredToken(ctx)
	assert.False(t, ok)

	profile, err := session.Login(ctx, entity.Credentials{Username: "admin", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)

	token, ok := session.StoredToken(ctx)
	require.True(t, ok)
	headers := composer.Compose(ctx, true)
	assert.Equal(t, "demo", headers.Get("X-Subdomain"))
	assert.Equal(t, "Bearer "+token, headers.Get("Authorization"))

	refreshed, err := session.RefreshProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", refreshed.Username)

	created, err := dashboard.CreatePerson(ctx, entity.PersonInput{Name: "Maria da Silva", CPF: "12345678901"})
	require.NoError(t, err)
	page, err := dashboard.ListPeople(ctx, entity.ListQuery{Search: "silva"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, created.ID, page.Items[0].ID)

	// switching tenant leaves a token the new tenant does not accept
	_, err = directory.SelectTenant(ctx, "praia")
	require.NoError(t, err)
	assert.Equal(t, entity.BindingStale, binder.Binding(ctx).Status)
	assert.Empty(t, composer.Compose(ctx, true).Get("Authorization"))

	_, err = dashboard.ListPeople(ctx, entity.ListQuery{})
	require.ErrorIs(t, err, domainerrors.ErrStaleSession)
	_, ok = session.StoredToken(ctx)
	assert.False(t, ok)

	recent, err := tenants.RecentTenants(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, entity.TenantID("praia"), recent[0].Subdomain)
}
