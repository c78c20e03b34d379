package entity

import "time"

// BindingStatus is the computed state of a SessionBinding.
type BindingStatus string

const (
	// BindingAnonymous means there is no token or no tenant.
	BindingAnonymous BindingStatus = "anonymous"
	// BindingStale means a token exists but was issued for a different tenant.
	BindingStale BindingStatus = "stale"
	// BindingAuthenticated means token, tenant and issuing tenant agree.
	BindingAuthenticated BindingStatus = "authenticated"
)

// SessionBinding pairs the current tenant with the stored token and the tenant that issued it.
// It is recomputed on every read and never persisted as a whole.
type SessionBinding struct {
	Tenant        TenantID
	Token         string
	IssuingTenant TenantID
	Status        BindingStatus
}

// IsAuthenticated reports whether the binding may be used for an authenticated request.
func (b SessionBinding) IsAuthenticated() bool {
	return b.Status == BindingAuthenticated
}

// Credentials are what a user types into the login form.
type Credentials struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginResult is returned by the authentication endpoint on success.
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *UserProfile `json:"user"`
}
