package entity

import (
	"time"

	"github.com/google/uuid"
)

// Person is a citizen registered in a municipality.
type Person struct {
	ID        uuid.UUID `json:"id"`
	Tenant    TenantID  `json:"tenant"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	BirthDate string    `json:"dataNascimento,omitempty"` // YYYY-MM-DD
	Phone     string    `json:"telefone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"atualizadoEm"`
}

// PersonInput carries the editable fields of a Person.
type PersonInput struct {
	Name      string `json:"nome" validate:"required,min=3,max=150"`
	CPF       string `json:"cpf" validate:"required,numeric,len=11"`
	BirthDate string `json:"dataNascimento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"telefone,omitempty" validate:"omitempty,numeric,min=10,max=11"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Address   string `json:"endereco,omitempty" validate:"omitempty,max=255"`
}
