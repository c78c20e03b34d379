package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"painel/config"
	"painel/internal/domain/entity"
	"painel/internal/infra/persistence/memory"
	mockService "painel/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.SeedConfig{
		Enabled:       true,
		Tenant:        "demo",
		TenantName:    "Município Demonstração",
		AdminUsername: "admin",
		AdminPassword: "123456",
	}

	tenants := memory.NewTenantRepository()
	accounts := memory.NewAccountRepository()
	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("123456").Return("hashed", nil).Once()

	require.NoError(t, Seed(ctx, cfg, tenants, accounts, hasher, logger))
	// a second run finds everything in place
	require.NoError(t, Seed(ctx, cfg, tenants, accounts, hasher, logger))

	tenant, err := tenants.FindBySubdomain(ctx, "demo")
	require.NoError(t, err)
	assert.True(t, tenant.Active)
	assert.Equal(t, "Município Demonstração", tenant.Name)

	admin, err := accounts.FindByUsername(ctx, "demo", "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, "hashed", admin.PasswordHash)
	assert.False(t, admin.Blocked)
}

func TestSeed_InvalidTenant(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := mockService.NewMockPasswordHasher(t)

	err := Seed(context.Background(), &config.SeedConfig{Tenant: "Not Valid"},
		memory.NewTenantRepository(), memory.NewAccountRepository(), hasher, logger)

	assert.Error(t, err)
}
