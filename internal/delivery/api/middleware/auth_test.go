package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	mockService "painel/internal/mocks/service"
	mockUsecase "painel/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string, tenant entity.TenantID) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())
	deliverycontext.SetTenant(c, tenant)

	return c
}

func passThrough(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	subject := uuid.New()
	demoClaims := &service.Claims{
		Tenant:           "demo",
		Role:             entity.RoleOperator,
		Permissions:      []string{"PESSOAS_LER", "PESSOAS_ESCREVER"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject.String()},
	}
	validToken := func(tokens *mockService.MockTokenService) {
		tokens.EXPECT().ValidateToken("good").Return(demoClaims, nil)
	}

	tests := []struct {
		name          string
		authorization string
		setup         func(tokens *mockService.MockTokenService, authUC *mockUsecase.MockAuthUsecase)
		expected      error
		expectedRole  entity.Role
		expectedPerms []string
	}{
		{
			name:     "missing header",
			setup:    func(*mockService.MockTokenService, *mockUsecase.MockAuthUsecase) {},
			expected: domainerrors.ErrUnauthorized,
		},
		{
			name:          "not a bearer token",
			authorization: "Basic YWRtaW46MTIz",
			setup:         func(*mockService.MockTokenService, *mockUsecase.MockAuthUsecase) {},
			expected:      domainerrors.ErrUnauthorized,
		},
		{
			name:          "invalid token",
			authorization: "Bearer bad",
			setup: func(tokens *mockService.MockTokenService, _ *mockUsecase.MockAuthUsecase) {
				tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			},
			expected: domainerrors.ErrUnauthorized,
		},
		{
			name:          "token of another tenant",
			authorization: "Bearer praia",
			setup: func(tokens *mockService.MockTokenService, _ *mockUsecase.MockAuthUsecase) {
				tokens.EXPECT().ValidateToken("praia").Return(&service.Claims{
					Tenant:           "praia",
					RegisteredClaims: jwt.RegisteredClaims{Subject: subject.String()},
				}, nil)
			},
			expected: domainerrors.ErrTenantMismatch,
		},
		{
			name:          "blocked account",
			authorization: "Bearer good",
			setup: func(tokens *mockService.MockTokenService, authUC *mockUsecase.MockAuthUsecase) {
				validToken(tokens)
				authUC.EXPECT().Me(mock.Anything, entity.TenantID("demo"), subject).
					Return(nil, errors.WithStack(domainerrors.ErrAccountBlocked))
			},
			expected: domainerrors.ErrUnauthorized,
		},
		{
			name:          "deleted account",
			authorization: "Bearer good",
			setup: func(tokens *mockService.MockTokenService, authUC *mockUsecase.MockAuthUsecase) {
				validToken(tokens)
				authUC.EXPECT().Me(mock.Anything, entity.TenantID("demo"), subject).
					Return(nil, errors.WithStack(domainerrors.ErrUnauthorized))
			},
			expected: domainerrors.ErrUnauthorized,
		},
		{
			name:          "account lookup failure",
			authorization: "Bearer good",
			setup: func(tokens *mockService.MockTokenService, authUC *mockUsecase.MockAuthUsecase) {
				validToken(tokens)
				authUC.EXPECT().Me(mock.Anything, entity.TenantID("demo"), subject).
					Return(nil, errors.New("connection refused"))
			},
			expected: errors.New("connection refused"),
		},
		{
			name:          "stored role replaces the token's",
			authorization: "Bearer good",
			setup: func(tokens *mockService.MockTokenService, authUC *mockUsecase.MockAuthUsecase) {
				validToken(tokens)
				authUC.EXPECT().Me(mock.Anything, entity.TenantID("demo"), subject).Return(&entity.UserProfile{
					ID:          subject.String(),
					Username:    "operador",
					Role:        entity.RoleViewer,
					Permissions: entity.Permissions{entity.PermPeopleRead},
					Tenant:      "demo",
				}, nil)
			},
			expectedRole:  entity.RoleViewer,
			expectedPerms: []string{"PESSOAS_LER"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			authUC := mockUsecase.NewMockAuthUsecase(t)
			tt.setup(tokens, authUC)
			c := newAuthContext(tt.authorization, "demo")

			err := NewAuthMiddleware(tokens, authUC).Authenticate(passThrough)(c)
			if tt.expected != nil {
				require.Error(t, err)
				if errors.Is(tt.expected, domainerrors.ErrUnauthorized) || errors.Is(tt.expected, domainerrors.ErrTenantMismatch) {
					assert.ErrorIs(t, err, tt.expected)
				} else {
					assert.ErrorContains(t, err, tt.expected.Error())
					assert.NotErrorIs(t, err, domainerrors.ErrUnauthorized)
				}

				return
			}

			require.NoError(t, err)
			id, ok := GetAccountID(c)
			require.True(t, ok)
			assert.Equal(t, subject, id)

			claims := deliverycontext.GetClaims(c)
			assert.Equal(t, tt.expectedRole, claims.Role)
			assert.Equal(t, tt.expectedPerms, claims.Permissions)
			assert.Equal(t, entity.RoleOperator, demoClaims.Role)
		})
	}
}

func TestAuthMiddleware_RequirePermission(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t), mockUsecase.NewMockAuthUsecase(t))

	tests := []struct {
		name     string
		claims   *service.Claims
		expected error
	}{
		{name: "no claims", expected: domainerrors.ErrUnauthorized},
		{name: "admin bypasses", claims: &service.Claims{Role: entity.RoleAdmin}},
		{name: "granted", claims: &service.Claims{Role: entity.RoleOperator, Permissions: []string{"PESSOAS_ESCREVER"}}},
		{name: "missing", claims: &service.Claims{Role: entity.RoleViewer, Permissions: []string{"PESSOAS_LER"}}, expected: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newAuthContext("", "demo")
			if tt.claims != nil {
				deliverycontext.SetClaims(c, tt.claims)
			}

			err := m.RequirePermission(entity.PermPeopleWrite)(passThrough)(c)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
