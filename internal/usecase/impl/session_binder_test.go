package impl

import (
	"context"
	"testing"

	"painel/config"
	"painel/internal/domain/entity"
	"painel/internal/domain/repository"
	"painel/internal/infra/storage"
	mockRepo "painel/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionBinder_Binding(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		state  map[string]string
		status entity.BindingStatus
	}{
		{
			name:   "empty store",
			status: entity.BindingAnonymous,
		},
		{
			name:   "tenant only",
			state:  map[string]string{repository.KeySelectedTenant: "demo"},
			status: entity.BindingAnonymous,
		},
		{
			name:   "token without tenant",
			state:  map[string]string{repository.KeyAuthToken: "t", repository.KeyAuthTenant: "demo"},
			status: entity.BindingAnonymous,
		},
		{
			name: "token issued for another tenant",
			state: map[string]string{
				repository.KeySelectedTenant: "praia",
				repository.KeyAuthToken:      "t",
				repository.KeyAuthTenant:     "demo",
			},
			status: entity.BindingStale,
		},
		{
			name: "token without issuing tenant",
			state: map[string]string{
				repository.KeySelectedTenant: "demo",
				repository.KeyAuthToken:      "t",
			},
			status: entity.BindingStale,
		},
		{
			name: "paired",
			state: map[string]string{
				repository.KeySelectedTenant: "demo",
				repository.KeyAuthToken:      "t",
				repository.KeyAuthTenant:     "demo",
			},
			status: entity.BindingAuthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			for k, v := range tt.state {
				require.NoError(t, store.Set(ctx, k, v))
			}
			stack := newClientStack(t, newClientConfig(), store, nil)

			binding := stack.binder.Binding(ctx)
			assert.Equal(t, tt.status, binding.Status)
			assert.Equal(t, tt.status == entity.BindingAuthenticated, stack.binder.IsAuthenticated(ctx))
		})
	}
}

func TestSessionBinder_UnreadableStoreIsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockStateStore(t)
	store.EXPECT().Get(ctx, repository.KeySelectedTenant).Return("", false, repository.ErrStateUnavailable)
	store.EXPECT().Get(ctx, repository.KeyAuthToken).Return("", false, repository.ErrStateUnavailable)
	store.EXPECT().Get(ctx, repository.KeyAuthTenant).Return("", false, repository.ErrStateUnavailable)

	logger := newDiscardLogger()
	tenants, err := NewTenantService(newClientConfig(), store, logger)
	require.NoError(t, err)

	binding := NewSessionBinder(tenants, store, logger).Binding(ctx)

	assert.Equal(t, entity.SessionBinding{Status: entity.BindingAnonymous}, binding)
}

func TestHeaderComposer_Compose(t *testing.T) {
	ctx := context.Background()

	t.Run("no tenant", func(t *testing.T) {
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)

		headers := stack.composer.Compose(ctx, true)
		assert.Empty(t, headers)
	})

	t.Run("custom header name", func(t *testing.T) {
		cfg := newClientConfig()
		cfg.Tenant.Header = "x-municipio"
		stack := newClientStack(t, cfg, storage.NewMemoryStore(), nil)
		require.NoError(t, stack.tenants.SetTenant(ctx, "demo"))

		assert.Equal(t, "X-Municipio", stack.composer.TenantHeader())
		assert.Equal(t, "demo", stack.composer.Compose(ctx, false).Get("X-Municipio"))
	})

	t.Run("default header name", func(t *testing.T) {
		stack := newClientStack(t, &config.Config{}, storage.NewMemoryStore(), nil)

		assert.Equal(t, DefaultTenantHeader, stack.composer.TenantHeader())
	})

	t.Run("fresh headers on every call", func(t *testing.T) {
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
		require.NoError(t, stack.tenants.SetTenant(ctx, "demo"))

		first := stack.composer.Compose(ctx, false)
		first.Set("X-Subdomain", "changed")

		assert.Equal(t, "demo", stack.composer.Compose(ctx, false).Get("X-Subdomain"))
	})
}
