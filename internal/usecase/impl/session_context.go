package impl

import (
	"context"
	"log/slog"
	"sync"

	"painel/internal/domain/entity"
	"painel/internal/domain/repository"
	"painel/internal/usecase"
)

// SessionEventKind tells listeners what part of the session moved.
type SessionEventKind string

const (
	EventTenantChanged  SessionEventKind = "tenant_changed"
	EventSessionChanged SessionEventKind = "session_changed"
)

// SessionEvent is delivered to listeners after the store reported a change, whether it was
// made by this process or by another holder of the same store.
type SessionEvent struct {
	Kind    SessionEventKind
	Key     string
	Binding entity.SessionBinding
}

// SessionSnapshot is a consistent read of everything the dashboard shell shows.
type SessionSnapshot struct {
	Resolution entity.TenantResolution
	Binding    entity.SessionBinding
	Profile    *entity.UserProfile
}

// SessionContext bundles the tenant and session collaborators that every caller shares.
// It is built once and passed explicitly; nothing about the session lives in globals.
type SessionContext struct {
	Tenants  usecase.TenantUsecase
	Session  usecase.SessionUsecase
	Binder   usecase.SessionBinder
	Composer usecase.HeaderComposer

	logger *slog.Logger

	mu          sync.RWMutex
	next        int
	listeners   map[int]func(SessionEvent)
	unsubscribe func()
}

// NewSessionContext wires the collaborators and starts listening to store changes.
func NewSessionContext(
	store repository.StateStore,
	tenants usecase.TenantUsecase,
	session usecase.SessionUsecase,
	binder usecase.SessionBinder,
	composer usecase.HeaderComposer,
	logger *slog.Logger,
) *SessionContext {
	sc := &SessionContext{
		Tenants:   tenants,
		Session:   session,
		Binder:    binder,
		Composer:  composer,
		logger:    logger,
		listeners: make(map[int]func(SessionEvent)),
	}
	sc.unsubscribe = store.Subscribe(sc.onStateChange)

	return sc
}

// OnChange registers fn and returns a function that removes it.
func (sc *SessionContext) OnChange(fn func(SessionEvent)) func() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	id := sc.next
	sc.next++
	sc.listeners[id] = fn

	return func() {
		sc.mu.Lock()
		delete(sc.listeners, id)
		sc.mu.Unlock()
	}
}

// Snapshot reads resolution, binding and profile in one go.
func (sc *SessionContext) Snapshot(ctx context.Context) (SessionSnapshot, error) {
	res, err := sc.Tenants.Resolve(ctx)
	if err != nil {
		return SessionSnapshot{}, err
	}

	return SessionSnapshot{
		Resolution: res,
		Binding:    sc.Binder.Binding(ctx),
		Profile:    sc.Session.StoredUser(ctx),
	}, nil
}

// Close stops listening to the store.
func (sc *SessionContext) Close() {
	sc.mu.Lock()
	unsubscribe := sc.unsubscribe
	sc.unsubscribe = nil
	sc.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (sc *SessionContext) onStateChange(change repository.StateChange) {
	var kind SessionEventKind
	switch change.Key {
	case repository.KeySelectedTenant:
		kind = EventTenantChanged
	case repository.KeyAuthToken, repository.KeyAuthTenant, repository.KeyUserData:
		kind = EventSessionChanged
	default:
		return
	}

	event := SessionEvent{
		Kind:    kind,
		Key:     change.Key,
		Binding: sc.Binder.Binding(context.Background()),
	}
	sc.logger.Debug("Session state changed",
		slog.String("kind", string(kind)),
		slog.String("key", change.Key),
		slog.String("status", string(event.Binding.Status)),
	)

	sc.mu.RLock()
	fns := make([]func(SessionEvent), 0, len(sc.listeners))
	for _, fn := range sc.listeners {
		fns = append(fns, fn)
	}
	sc.mu.RUnlock()

	for _, fn := range fns {
		fn(event)
	}
}
