// Package errors defines the error taxonomy shared by the dashboard client and the API.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Session and tenant errors
var (
	// ErrTenantMissing blocks login and tenant-scoped calls until a tenant is selected.
	ErrTenantMissing = NewBaseError(
		http.StatusBadRequest,
		"TENANT_MISSING",
		"Selecione um município antes de continuar",
		"",
	)

	// ErrStaleSession means the stored token was issued for another tenant.
	ErrStaleSession = NewBaseError(
		http.StatusUnauthorized,
		"STALE_SESSION",
		"Sessão expirada para este município, entre novamente",
		"",
	)

	// ErrProfileFetchFailure means the profile could not be re-fetched with the stored token.
	ErrProfileFetchFailure = NewBaseError(
		http.StatusUnauthorized,
		"PROFILE_FETCH_FAILED",
		"Não foi possível carregar o perfil do usuário",
		"",
	)

	// ErrNavigationStall means a redirect did not take effect within the retry budget.
	ErrNavigationStall = NewBaseError(
		http.StatusConflict,
		"NAVIGATION_STALL",
		"O redirecionamento não aconteceu, clique para continuar",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Faça login para continuar",
		"",
	)
)

// API errors
var (
	ErrTenantNotFound = NewBaseError(
		http.StatusNotFound,
		"TENANT_NOT_FOUND",
		"Município não encontrado",
		"",
	)

	ErrTenantMismatch = NewBaseError(
		http.StatusUnauthorized,
		"TENANT_MISMATCH",
		"Token emitido para outro município",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuário ou senha inválidos",
		"",
	)

	ErrAccountBlocked = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_BLOCKED",
		"Usuário bloqueado, procure o administrador",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Token ausente, inválido ou expirado",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"Já existe um usuário com este login",
		"",
	)

	ErrPersonNotFound = NewBaseError(
		http.StatusNotFound,
		"PERSON_NOT_FOUND",
		"Pessoa não encontrada",
		"",
	)

	ErrPersonAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PERSON_ALREADY_EXISTS",
		"Já existe uma pessoa com este CPF",
		"",
	)

	ErrSelfLockout = NewBaseError(
		http.StatusConflict,
		"SELF_LOCKOUT",
		"Não é possível bloquear ou remover o próprio usuário",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar a senha",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Muitas tentativas, aguarde e tente novamente",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)
)

// AuthError is a login rejected by the backend. Its message is shown to the user verbatim.
type AuthError struct {
	status  int
	code    string
	message string
}

// NewAuthError creates an AuthError from the backend response.
func NewAuthError(status int, code, message string) *AuthError {
	if message == "" {
		message = ErrInvalidCredentials.Message()
	}

	return &AuthError{status: status, code: code, message: message}
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *AuthError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code reported by the backend
func (e *AuthError) ErrorCode() string {
	return e.code
}

// Message returns the backend-provided message
func (e *AuthError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *AuthError) Details() string {
	return ""
}

// RemoteError is any non-success answer from the backend other than a login rejection.
type RemoteError struct {
	status  int
	code    string
	message string
	details string
}

// NewRemoteError creates a RemoteError from a decoded error envelope.
func NewRemoteError(status int, code, message, details string) *RemoteError {
	return &RemoteError{status: status, code: code, message: message, details: details}
}

func (e *RemoteError) Error() string {
	return e.message
}

func (e *RemoteError) HTTPCode() int {
	return e.status
}

func (e *RemoteError) ErrorCode() string {
	return e.code
}

func (e *RemoteError) Message() string {
	return e.message
}

func (e *RemoteError) Details() string {
	return e.details
}

// IsUnauthorized reports whether err carries an HTTP 401.
func IsUnauthorized(err error) bool {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() == http.StatusUnauthorized
	}

	return false
}

// UserMessage returns the message to show to a user for err.
func UserMessage(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}
