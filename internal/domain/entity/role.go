package entity

import "slices"

// Role represents the type of role a system account can have.
type Role string

const (
	// RoleAdmin can do everything inside its tenant.
	RoleAdmin Role = "ADMIN"
	// RoleManager manages people and accounts.
	RoleManager Role = "GESTOR"
	// RoleOperator maintains people records.
	RoleOperator Role = "OPERADOR"
	// RoleViewer only reads.
	RoleViewer Role = "CONSULTA"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator, RoleViewer:
		return true
	default:
		return false
	}
}

// Permission is a single capability code granted to an account.
type Permission string

const (
	PermPeopleRead      Permission = "PESSOAS_LER"
	PermPeopleWrite     Permission = "PESSOAS_ESCREVER"
	PermAccountsRead    Permission = "USUARIOS_LER"
	PermAccountsWrite   Permission = "USUARIOS_ESCREVER"
	PermAccountsBlock   Permission = "USUARIOS_BLOQUEAR"
	PermAccountsResetPw Permission = "USUARIOS_SENHA"
)

// AllPermissions lists every known permission.
var AllPermissions = Permissions{
	PermPeopleRead,
	PermPeopleWrite,
	PermAccountsRead,
	PermAccountsWrite,
	PermAccountsBlock,
	PermAccountsResetPw,
}

// IsValid checks if the Permission is a known code.
func (p Permission) IsValid() bool {
	return slices.Contains(AllPermissions, p)
}

// Permissions is a set of permissions carried as a slice for JSON compatibility.
type Permissions []Permission

// Contains checks if the set contains a specific permission.
func (ps Permissions) Contains(p Permission) bool {
	return slices.Contains(ps, p)
}

// ToStrings converts Permissions to []string for JWT compatibility.
func (ps Permissions) ToStrings() []string {
	result := make([]string, len(ps))
	for i, p := range ps {
		result[i] = string(p)
	}

	return result
}

// PermissionsFromStrings converts []string to Permissions, filtering out unknown codes.
func PermissionsFromStrings(ss []string) Permissions {
	result := make(Permissions, 0, len(ss))
	for _, s := range ss {
		p := Permission(s)
		if p.IsValid() && !result.Contains(p) {
			result = append(result, p)
		}
	}

	return result
}

// DefaultPermissions returns the permissions granted to a role when none are given explicitly.
func DefaultPermissions(role Role) Permissions {
	switch role {
	case RoleAdmin:
		return slices.Clone(AllPermissions)
	case RoleManager:
		return Permissions{PermPeopleRead, PermPeopleWrite, PermAccountsRead, PermAccountsWrite, PermAccountsBlock}
	case RoleOperator:
		return Permissions{PermPeopleRead, PermPeopleWrite}
	case RoleViewer:
		return Permissions{PermPeopleRead, PermAccountsRead}
	default:
		return Permissions{}
	}
}

// Allows is the single authorization rule of the system: ADMIN may do anything inside its
// tenant, every other role needs all required permissions in its set.
func Allows(role Role, granted Permissions, required ...Permission) bool {
	if role == RoleAdmin {
		return true
	}

	for _, p := range required {
		if !granted.Contains(p) {
			return false
		}
	}

	return true
}
