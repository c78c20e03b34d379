// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// Keys of the persisted dashboard state.
const (
	KeySelectedTenant = "selected_tenant"
	KeyAuthToken      = "auth_token"
	KeyAuthTenant     = "auth_tenant"
	KeyUserData       = "user_data"
	KeyRecentTenants  = "recent_tenants"
)

// SessionKeys are removed on logout. The tenant selection is deliberately absent.
var SessionKeys = []string{KeyAuthToken, KeyAuthTenant, KeyUserData}

// ErrStateUnavailable is returned when the backing store cannot be reached.
var ErrStateUnavailable = errors.New("state store unavailable")

// StateChange describes a key written or removed by any holder of the same store,
// including other processes sharing it.
type StateChange struct {
	Key     string
	Value   string
	Deleted bool
}

// StateStore is the persisted key/value state the dashboard session lives in.
// Reads are synchronous; a missing key is reported with ok=false and no error.
type StateStore interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Subscribe registers fn for change notifications and returns a function that
	// unregisters it. Notifications for a holder's own writes are delivered too.
	Subscribe(fn func(StateChange)) (unsubscribe func())
}
