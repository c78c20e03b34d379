package storage

import (
	"context"
	"sync"

	"painel/internal/domain/repository"
)

// MemoryStore keeps state in process memory. It backs tests and one-shot CLI runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	notifier
}

var _ repository.StateStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]

	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	old, existed := s.values[key]
	s.values[key] = value
	s.mu.Unlock()

	if !existed || old != value {
		s.publish(repository.StateChange{Key: key, Value: value})
	}

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	var changes []repository.StateChange

	s.mu.Lock()
	for _, key := range keys {
		if _, ok := s.values[key]; ok {
			delete(s.values, key)
			changes = append(changes, repository.StateChange{Key: key, Deleted: true})
		}
	}
	s.mu.Unlock()

	s.publish(changes...)

	return nil
}

func (s *MemoryStore) Subscribe(fn func(repository.StateChange)) func() {
	return s.subscribe(fn)
}
