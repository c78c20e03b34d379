package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonModel mirrors the 'pessoas' table. The CPF is unique inside a tenant.
type PersonModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tenant    string    `gorm:"type:varchar(63);not null;index;uniqueIndex:idx_pessoas_tenant_cpf"`
	Name      string    `gorm:"type:varchar(150);not null"`
	CPF       string    `gorm:"type:char(11);not null;uniqueIndex:idx_pessoas_tenant_cpf"`
	BirthDate string    `gorm:"type:varchar(10)"`
	Phone     string    `gorm:"type:varchar(11)"`
	Email     string    `gorm:"type:varchar(255)"`
	Address   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "pessoas"
}
