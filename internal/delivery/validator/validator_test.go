package validator

import (
	"testing"

	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		details string
	}{
		{name: "valid person", input: &entity.PersonInput{Name: "Maria", CPF: "12345678901"}},
		{name: "missing credentials", input: &entity.Credentials{}, details: "usuario é obrigatório; senha é obrigatório"},
		{name: "short cpf", input: &entity.PersonInput{Name: "Maria", CPF: "123"}, details: "cpf deve ter 11 caracteres"},
		{name: "unknown role", input: &entity.AccountInput{Name: "Gestor", Username: "gestor", Role: "CHEFE"}, details: "papel deve ser um de: ADMIN GESTOR OPERADOR CONSULTA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.details == "" {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}
