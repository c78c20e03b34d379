package impl

import (
	"io"
	"log/slog"
	"testing"

	"painel/config"
	"painel/internal/domain/service"
	"painel/internal/infra/storage"
	"painel/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClientConfig() *config.Config {
	return &config.Config{
		Tenant: &config.TenantConfig{
			Strategy:     "query",
			QueryParam:   "tenant",
			Header:       "X-Subdomain",
			DashboardURL: "http://localhost:5173/",
		},
		Navigation: &config.NavigationConfig{
			MaxAttempts:   3,
			LoginPath:     "/login",
			DashboardPath: "/dashboard",
		},
	}
}

// clientStack is the client-side wiring the CLI builds, minus the HTTP gateway.
type clientStack struct {
	store    *storage.MemoryStore
	tenants  usecase.TenantUsecase
	binder   usecase.SessionBinder
	composer usecase.HeaderComposer
	session  usecase.SessionUsecase
}

func newClientStack(t *testing.T, cfg *config.Config, store *storage.MemoryStore, auth service.AuthGateway) *clientStack {
	t.Helper()

	logger := newDiscardLogger()
	tenants, err := NewTenantService(cfg, store, logger)
	require.NoError(t, err)

	binder := NewSessionBinder(tenants, store, logger)

	return &clientStack{
		store:    store,
		tenants:  tenants,
		binder:   binder,
		composer: NewHeaderComposer(cfg, binder, logger),
		session:  NewSessionService(tenants, binder, store, auth, logger),
	}
}
