package entity

// UserProfile is the last-known profile of the logged-in user, cached alongside the token.
type UserProfile struct {
	ID          string      `json:"id"`
	Name        string      `json:"nome"`
	Username    string      `json:"usuario"`
	Role        Role        `json:"papel"`
	Permissions Permissions `json:"permissoes"`
	Tenant      TenantID    `json:"tenant"`
}

// Can reports whether the profile holds every required permission.
func (p *UserProfile) Can(required ...Permission) bool {
	if p == nil {
		return false
	}

	return Allows(p.Role, p.Permissions, required...)
}
