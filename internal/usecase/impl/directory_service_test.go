package impl

import (
	"context"
	"net/http"
	"testing"

	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/infra/storage"
	mockService "painel/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_ListTenants(t *testing.T) {
	ctx := context.Background()
	directory := mockService.NewMockDirectoryGateway(t)
	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
	srv := NewDirectoryService(directory, stack.tenants, stack.session, newDiscardLogger())

	want := []*entity.TenantSummary{{Subdomain: "demo", Name: "Município Demonstração", Active: true}}
	directory.EXPECT().ListTenants(ctx).Return(want, nil).Once()

	got, err := srv.ListTenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	directory.EXPECT().ListTenants(ctx).Return(nil, errors.New("timeout")).Once()
	_, err = srv.ListTenants(ctx)
	assert.Error(t, err)
}

func TestDirectoryService_SelectTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("verified tenant is selected and remembered", func(t *testing.T) {
		directory := mockService.NewMockDirectoryGateway(t)
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
		srv := NewDirectoryService(directory, stack.tenants, stack.session, newDiscardLogger())

		summary := &entity.TenantSummary{Subdomain: "demo", Name: "Município Demonstração", Active: true}
		directory.EXPECT().GetTenant(mock.Anything, entity.TenantID("demo")).Return(summary, nil)

		got, err := srv.SelectTenant(ctx, " DEMO ")
		require.NoError(t, err)
		assert.Equal(t, summary, got)

		current, err := stack.tenants.CurrentTenant(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.TenantID("demo"), current)

		recent, err := stack.tenants.RecentTenants(ctx)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, entity.TenantID("demo"), recent[0].Subdomain)
	})

	t.Run("invalid identifier makes no call", func(t *testing.T) {
		directory := mockService.NewMockDirectoryGateway(t)
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
		srv := NewDirectoryService(directory, stack.tenants, stack.session, newDiscardLogger())

		_, err := srv.SelectTenant(ctx, "two words")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		directory := mockService.NewMockDirectoryGateway(t)
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
		require.NoError(t, stack.tenants.SetTenant(ctx, "demo"))
		srv := NewDirectoryService(directory, stack.tenants, stack.session, newDiscardLogger())

		directory.EXPECT().GetTenant(mock.Anything, entity.TenantID("atlantida")).
			Return(nil, domainerrors.NewRemoteError(http.StatusNotFound, "TENANT_NOT_FOUND", "Município não encontrado", ""))

		_, err := srv.SelectTenant(ctx, "atlantida")
		assert.ErrorIs(t, err, domainerrors.ErrTenantNotFound)

		current, err := stack.tenants.CurrentTenant(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.TenantID("demo"), current)
	})

	t.Run("inactive tenant", func(t *testing.T) {
		directory := mockService.NewMockDirectoryGateway(t)
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
		srv := NewDirectoryService(directory, stack.tenants, stack.session, newDiscardLogger())

		directory.EXPECT().GetTenant(mock.Anything, entity.TenantID("antiga")).
			Return(&entity.TenantSummary{Subdomain: "antiga", Active: false}, nil)

		_, err := srv.SelectTenant(ctx, "antiga")
		assert.ErrorIs(t, err, domainerrors.ErrTenantNotFound)
	})

	t.Run("backend failure", func(t *testing.T) {
		directory := mockService.NewMockDirectoryGateway(t)
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
		srv := NewDirectoryService(directory, stack.tenants, stack.session, newDiscardLogger())

		directory.EXPECT().GetTenant(mock.Anything, entity.TenantID("demo")).
			Return(nil, domainerrors.NewRemoteError(http.StatusBadGateway, "BAD_GATEWAY", "indisponível", ""))

		_, err := srv.SelectTenant(ctx, "demo")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrTenantNotFound)
	})
}
