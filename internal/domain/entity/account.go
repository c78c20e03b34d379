package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a system user that can log into a tenant's dashboard.
type Account struct {
	ID           uuid.UUID   `json:"id"`
	Tenant       TenantID    `json:"tenant"`
	Name         string      `json:"nome"`
	Username     string      `json:"usuario"`
	Email        string      `json:"email,omitempty"`
	Role         Role        `json:"papel"`
	Permissions  Permissions `json:"permissoes"`
	Blocked      bool        `json:"bloqueado"`
	PasswordHash string      `json:"-"`
	CreatedAt    time.Time   `json:"criadoEm"`
	UpdatedAt    time.Time   `json:"atualizadoEm"`
}

// Profile projects the account into the profile shape the dashboard caches.
func (a *Account) Profile() *UserProfile {
	return &UserProfile{
		ID:          a.ID.String(),
		Name:        a.Name,
		Username:    a.Username,
		Role:        a.Role,
		Permissions: a.Permissions,
		Tenant:      a.Tenant,
	}
}

// AccountInput carries the fields used to create or update an Account.
// Password is only honoured on creation.
type AccountInput struct {
	Name        string      `json:"nome" validate:"required,min=3,max=150"`
	Username    string      `json:"usuario" validate:"required,alphanum,min=3,max=50"`
	Email       string      `json:"email,omitempty" validate:"omitempty,email"`
	Role        Role        `json:"papel" validate:"required,oneof=ADMIN GESTOR OPERADOR CONSULTA"`
	Permissions Permissions `json:"permissoes,omitempty"`
	Password    string      `json:"senha,omitempty" validate:"omitempty,min=6,max=72"`
}

// PasswordReset is the body of a password reset request.
type PasswordReset struct {
	Password string `json:"novaSenha" validate:"required,min=6,max=72"`
}
