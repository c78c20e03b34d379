// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel mirrors the 'tenants' table.
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Subdomain string    `gorm:"type:varchar(63);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(150);not null"`
	City      string    `gorm:"type:varchar(100)"`
	State     string    `gorm:"type:char(2)"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}
