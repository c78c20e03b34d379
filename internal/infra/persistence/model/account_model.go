package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'usuarios' table. Usernames are unique inside a tenant.
// Permissions are stored as a comma-separated list of codes.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tenant       string    `gorm:"type:varchar(63);not null;index;uniqueIndex:idx_usuarios_tenant_usuario"`
	Name         string    `gorm:"type:varchar(150);not null"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_usuarios_tenant_usuario"`
	Email        string    `gorm:"type:varchar(255)"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Permissions  string    `gorm:"type:text"`
	Blocked      bool      `gorm:"not null;default:false"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "usuarios"
}

// All returns every model the API migrates.
func All() []any {
	return []any{&TenantModel{}, &PersonModel{}, &AccountModel{}}
}
