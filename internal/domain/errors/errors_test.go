package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCodeThroughWrapping(t *testing.T) {
	err := errors.Wrap(ErrTenantMissing.WithDetails("login"), "session login")

	assert.True(t, errors.Is(err, ErrTenantMissing))
	assert.False(t, errors.Is(err, ErrStaleSession))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(errors.Wrap(NewRemoteError(http.StatusUnauthorized, "UNAUTHORIZED", "x", ""), "fetch")))
	assert.True(t, IsUnauthorized(ErrProfileFetchFailure))
	assert.False(t, IsUnauthorized(ErrForbidden))
	assert.False(t, IsUnauthorized(errors.New("boom")))
}

func TestUserMessage(t *testing.T) {
	authErr := NewAuthError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Usuário ou senha inválidos")

	assert.Equal(t, "Usuário ou senha inválidos", UserMessage(errors.Wrap(authErr, "login")))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
	assert.Equal(t, ErrInvalidCredentials.Message(), NewAuthError(401, "", "").Message())
}
