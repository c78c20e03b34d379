package impl

import (
	"context"
	"sync"
	"testing"

	"painel/internal/domain/entity"
	"painel/internal/domain/repository"
	"painel/internal/infra/storage"
	mockService "painel/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []SessionEvent
}

func (r *eventRecorder) record(e SessionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

func (r *eventRecorder) kinds() []SessionEventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]SessionEventKind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}

	return kinds
}

func newSessionContext(t *testing.T, stack *clientStack) *SessionContext {
	t.Helper()

	sc := NewSessionContext(stack.store, stack.tenants, stack.session, stack.binder, stack.composer, newDiscardLogger())
	t.Cleanup(sc.Close)

	return sc
}

func TestSessionContext_OnChange(t *testing.T) {
	ctx := context.Background()
	auth := mockService.NewMockAuthGateway(t)
	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), auth)
	sc := newSessionContext(t, stack)

	rec := &eventRecorder{}
	stop := sc.OnChange(rec.record)

	loginAs(t, stack, auth, "demo")

	assert.Equal(t, []SessionEventKind{
		EventTenantChanged,
		EventSessionChanged,
		EventSessionChanged,
		EventSessionChanged,
	}, rec.kinds())

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, repository.KeyAuthToken, last.Key)
	assert.Equal(t, entity.BindingAuthenticated, last.Binding.Status)

	stop()
	require.NoError(t, stack.session.Logout(ctx))
	assert.Len(t, rec.kinds(), 4)
}

func TestSessionContext_IgnoresUnrelatedKeys(t *testing.T) {
	ctx := context.Background()
	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
	sc := newSessionContext(t, stack)

	rec := &eventRecorder{}
	sc.OnChange(rec.record)

	require.NoError(t, stack.tenants.RememberTenant(ctx, &entity.TenantSummary{Subdomain: "demo"}))

	assert.Empty(t, rec.kinds())
}

func TestSessionContext_ChangesFromAnotherHolder(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	auth := mockService.NewMockAuthGateway(t)
	watcher := newClientStack(t, newClientConfig(), store, nil)
	sc := newSessionContext(t, watcher)

	var got []entity.BindingStatus
	sc.OnChange(func(e SessionEvent) {
		if e.Kind == EventSessionChanged {
			got = append(got, e.Binding.Status)
		}
	})

	other := newClientStack(t, newClientConfig(), store, auth)
	loginAs(t, other, auth, "demo")
	require.NoError(t, other.session.Logout(ctx))

	require.NotEmpty(t, got)
	assert.Contains(t, got, entity.BindingAuthenticated)
	assert.Equal(t, entity.BindingAnonymous, got[len(got)-1])
}

func TestSessionContext_Snapshot(t *testing.T) {
	ctx := context.Background()
	auth := mockService.NewMockAuthGateway(t)
	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), auth)
	sc := newSessionContext(t, stack)

	snap, err := sc.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, snap.Resolution.Selected)
	assert.Equal(t, entity.BindingAnonymous, snap.Binding.Status)
	assert.Nil(t, snap.Profile)

	profile := loginAs(t, stack, auth, "demo")

	snap, err = sc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TenantResolution{ID: "demo", Source: entity.TenantSourcePersisted, Selected: true}, snap.Resolution)
	assert.Equal(t, entity.BindingAuthenticated, snap.Binding.Status)
	assert.Equal(t, profile, snap.Profile)
}

func TestSessionContext_CloseStopsEvents(t *testing.T) {
	ctx := context.Background()
	stack := newClientStack(t, newClientConfig(), storage.NewMemoryStore(), nil)
	sc := NewSessionContext(stack.store, stack.tenants, stack.session, stack.binder, stack.composer, newDiscardLogger())

	rec := &eventRecorder{}
	sc.OnChange(rec.record)
	sc.Close()
	sc.Close()

	require.NoError(t, stack.tenants.SetTenant(ctx, "demo"))

	assert.Empty(t, rec.kinds())
}
