package impl

import (
	"context"
	"testing"

	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	"painel/internal/infra/storage"
	mockService "painel/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPrimitive(t *testing.T, name string) *mockService.MockNavigationPrimitive {
	t.Helper()

	p := mockService.NewMockNavigationPrimitive(t)
	p.EXPECT().Name().Return(name).Maybe()

	return p
}

func TestGateService_Evaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("no tenant goes to bare login", func(t *testing.T) {
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), mockService.NewMockAuthGateway(t))
		gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, mockService.NewMockNavigator(t), newDiscardLogger())

		decision, err := gate.Evaluate(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, entity.GateUnauthenticated, decision.State)
		assert.Equal(t, "http://localhost:5173/login", decision.Target)
		assert.Nil(t, decision.Profile)
	})

	t.Run("tenant without session goes to tenant login", func(t *testing.T) {
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), mockService.NewMockAuthGateway(t))
		require.NoError(t, stack.tenants.SetTenant(ctx, "demo"))
		gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, mockService.NewMockNavigator(t), newDiscardLogger())

		decision, err := gate.Evaluate(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, entity.GateUnauthenticated, decision.State)
		assert.Equal(t, entity.TenantID("demo"), decision.Tenant)
		assert.Equal(t, "http://localhost:5173/login?tenant=demo", decision.Target)
	})

	t.Run("paired session goes to dashboard", func(t *testing.T) {
		auth := mockService.NewMockAuthGateway(t)
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), auth)
		profile := loginAs(t, stack, auth, "demo")
		gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, mockService.NewMockNavigator(t), newDiscardLogger())

		decision, err := gate.Evaluate(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, entity.GateAuthenticated, decision.State)
		assert.Equal(t, "http://localhost:5173/dashboard?tenant=demo", decision.Target)
		assert.Equal(t, profile, decision.Profile)
	})

	t.Run("stale session goes to login", func(t *testing.T) {
		auth := mockService.NewMockAuthGateway(t)
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), auth)
		loginAs(t, stack, auth, "demo")
		require.NoError(t, stack.tenants.SetTenant(ctx, "praia"))
		gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, mockService.NewMockNavigator(t), newDiscardLogger())

		decision, err := gate.Evaluate(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, entity.GateUnauthenticated, decision.State)
		assert.Equal(t, "http://localhost:5173/login?tenant=praia", decision.Target)
	})

	t.Run("failed refresh goes to login", func(t *testing.T) {
		auth := mockService.NewMockAuthGateway(t)
		stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), auth)
		loginAs(t, stack, auth, "demo")
		auth.EXPECT().FetchProfile(mock.Anything).Return(nil, domainerrors.NewRemoteError(401, "UNAUTHORIZED", "expirado", ""))
		gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, mockService.NewMockNavigator(t), newDiscardLogger())

		decision, err := gate.Evaluate(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, entity.GateUnauthenticated, decision.State)
		assert.False(t, stack.binder.IsAuthenticated(ctx))
	})
}

func TestGateService_NavigateArrives(t *testing.T) {
	ctx := context.Background()
	target := "http://localhost:5173/dashboard?tenant=demo"

	soft := newPrimitive(t, "soft")
	soft.EXPECT().Go(ctx, target).Return(nil).Once()
	hard := newPrimitive(t, "hard")
	hard.EXPECT().Go(ctx, target).Return(nil).Once()

	navigator := mockService.NewMockNavigator(t)
	navigator.EXPECT().Primitives().Return([]service.NavigationPrimitive{soft, hard})
	navigator.EXPECT().Arrived(ctx, target).Return(false).Once()
	navigator.EXPECT().Arrived(ctx, target).Return(true).Once()

	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
	gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, navigator, newDiscardLogger())

	result, err := gate.Navigate(ctx, entity.GateDecision{State: entity.GateAuthenticated, Target: target})
	require.NoError(t, err)
	assert.Equal(t, entity.GateAuthenticated, result.State)
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, "soft", result.Attempts[0].Primitive)
	assert.False(t, result.Attempts[0].Arrived)
	assert.Equal(t, "hard", result.Attempts[1].Primitive)
	assert.True(t, result.Attempts[1].Arrived)
}

func TestGateService_NavigateStallsIntoManualFallback(t *testing.T) {
	ctx := context.Background()
	target := "http://localhost:5173/login?tenant=demo"

	soft := newPrimitive(t, "soft")
	soft.EXPECT().Go(ctx, target).Return(nil).Once()
	hard := newPrimitive(t, "hard")
	// the last primitive is retried until the budget runs out
	hard.EXPECT().Go(ctx, target).Return(errors.New("launcher missing")).Times(2)

	navigator := mockService.NewMockNavigator(t)
	navigator.EXPECT().Primitives().Return([]service.NavigationPrimitive{soft, hard})
	navigator.EXPECT().Arrived(ctx, target).Return(false).Once()

	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
	gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, navigator, newDiscardLogger())

	result, err := gate.Navigate(ctx, entity.GateDecision{State: entity.GateUnauthenticated, Target: target})

	assert.ErrorIs(t, err, domainerrors.ErrNavigationStall)
	assert.Equal(t, entity.GateManualFallback, result.State)
	assert.Equal(t, target, result.Target)
	assert.Len(t, result.Attempts, 3)
	for _, a := range result.Attempts {
		assert.False(t, a.Arrived)
	}
}

func TestGateService_NavigateWithoutPrimitives(t *testing.T) {
	ctx := context.Background()
	navigator := mockService.NewMockNavigator(t)
	navigator.EXPECT().Primitives().Return(nil)

	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
	gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, navigator, newDiscardLogger())

	result, err := gate.Navigate(ctx, entity.GateDecision{Target: "http://localhost:5173/login"})

	assert.ErrorIs(t, err, domainerrors.ErrNavigationStall)
	assert.Equal(t, entity.GateManualFallback, result.State)
	assert.Empty(t, result.Attempts)
}

func TestGateService_NavigateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	navigator := mockService.NewMockNavigator(t)
	navigator.EXPECT().Primitives().Return([]service.NavigationPrimitive{newPrimitive(t, "soft")})

	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
	gate := NewGateService(newClientConfig(), stack.tenants, stack.binder, stack.session, navigator, newDiscardLogger())

	_, err := gate.Navigate(ctx, entity.GateDecision{Target: "http://localhost:5173/login"})

	assert.ErrorIs(t, err, context.Canceled)
}
