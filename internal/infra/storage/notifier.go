// Package storage provides the persisted state drivers behind repository.StateStore.
package storage

import (
	"sync"

	"painel/internal/domain/repository"
)

// notifier fans a StateChange out to every subscriber. Callbacks run outside the lock
// so a subscriber may read the store it is subscribed to.
type notifier struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(repository.StateChange)
}

func (n *notifier) subscribe(fn func(repository.StateChange)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func(repository.StateChange))
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	var once sync.Once

	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

func (n *notifier) publish(changes ...repository.StateChange) {
	if len(changes) == 0 {
		return
	}

	n.mu.RLock()
	fns := make([]func(repository.StateChange), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()

	for _, change := range changes {
		for _, fn := range fns {
			fn(change)
		}
	}
}

// diff returns the changes that turn before into after.
func diff(before, after map[string]string) []repository.StateChange {
	var changes []repository.StateChange
	for k, v := range after {
		if old, ok := before[k]; !ok || old != v {
			changes = append(changes, repository.StateChange{Key: k, Value: v})
		}
	}
	for k := range before {
		if _, ok := after[k]; !ok {
			changes = append(changes, repository.StateChange{Key: k, Deleted: true})
		}
	}

	return changes
}
