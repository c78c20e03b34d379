// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
)

// TenantID identifies a tenant (a municipality). It is a subdomain-like token such as "demo".
type TenantID string

var tenantIDPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// ParseTenantID normalizes raw input into a TenantID. It returns false when the value
// cannot be used as a subdomain label.
func ParseTenantID(raw string) (TenantID, bool) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if !tenantIDPattern.MatchString(id) {
		return "", false
	}

	return TenantID(id), true
}

// String returns the string representation of the TenantID.
func (t TenantID) String() string {
	return string(t)
}

// IsZero reports whether no tenant is set.
func (t TenantID) IsZero() bool {
	return t == ""
}

// TenantStrategy selects how a tenant hint is derived from a location and embedded into URLs.
type TenantStrategy string

const (
	// StrategySubdomain reads the tenant from the first host label below the base domain.
	StrategySubdomain TenantStrategy = "subdomain"
	// StrategyQuery reads the tenant from a query parameter.
	StrategyQuery TenantStrategy = "query"
	// StrategyPath reads the tenant from the first path segment after the prefix.
	StrategyPath TenantStrategy = "path"
)

// IsValid checks if the TenantStrategy is a known value.
func (s TenantStrategy) IsValid() bool {
	switch s {
	case StrategySubdomain, StrategyQuery, StrategyPath:
		return true
	default:
		return false
	}
}

// TenantSource records where a resolved tenant came from.
type TenantSource string

const (
	TenantSourceNone      TenantSource = "none"
	TenantSourcePersisted TenantSource = "persisted"
	TenantSourceHint      TenantSource = "hint"
	TenantSourceDefault   TenantSource = "default"
)

// TenantResolution is the outcome of running the resolution order once.
// A resolution from the default source is never Selected: it only pre-fills the tenant picker.
type TenantResolution struct {
	ID       TenantID
	Source   TenantSource
	Selected bool
}

// TenantSummary is the public description of a tenant as listed by the tenant directory.
type TenantSummary struct {
	ID        string   `json:"id"`
	Subdomain TenantID `json:"subdomain"`
	Name      string   `json:"nome"`
	City      string   `json:"cidade,omitempty"`
	State     string   `json:"uf,omitempty"`
	Active    bool     `json:"ativo"`
}
