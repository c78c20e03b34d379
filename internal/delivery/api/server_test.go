package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"painel/config"
	apimiddleware "painel/internal/delivery/api/middleware"
	"painel/internal/delivery/api/router"
	"painel/internal/delivery/api/router/handler"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/infra/auth"
	"painel/internal/infra/persistence"
	"painel/internal/infra/persistence/memory"
	"painel/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type apiFixture struct {
	echo    *echo.Echo
	tenants *memory.TenantRepository
}

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  *domainerrors.MetaInfo  `json:"meta"`
}

func newAPIConfig() *config.Config {
	cfg := &config.Config{
		Tenant: &config.TenantConfig{Header: "X-Subdomain"},
		Auth:   &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "test-secret"
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func newAPIFixture(t *testing.T, loginLimit rate.Limit, loginBurst int) *apiFixture {
	t.Helper()

	ctx := context.Background()
	cfg := newAPIConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tenants := memory.NewTenantRepository()
	accounts := memory.NewAccountRepository()
	people := memory.NewPersonRepository()
	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	for _, seed := range []*config.SeedConfig{
		{Tenant: "demo", TenantName: "Município Demonstração", AdminUsername: "admin", AdminPassword: "123456"},
		{Tenant: "praia", TenantName: "Praia Grande", AdminUsername: "admin", AdminPassword: "praia123"},
	} {
		require.NoError(t, persistence.Seed(ctx, seed, tenants, accounts, hasher, logger))
	}
	require.NoError(t, tenants.Create(ctx, &entity.TenantSummary{Subdomain: "fechado", Name: "Fechado", Active: false}))

	registry := impl.NewRegistryService(tenants, logger)
	authUC := impl.NewAuthService(tenants, accounts, hasher, tokens, logger)
	params := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: authUC,
			Logger: logger,
		}),
		TenantHandler: handler.NewTenantHandler(registry),
		PersonHandler: handler.NewPersonHandler(impl.NewPersonService(people, logger)),
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			AccountUC: impl.NewAccountService(accounts, hasher, logger),
			Logger:    logger,
		}),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(tokens, authUC),
		TenantMiddleware: apimiddleware.NewTenantMiddleware(registry, cfg),
		LoginLimiter:     apimiddleware.NewRateLimiter(loginLimit, loginBurst),
	}

	return &apiFixture{echo: NewEcho(cfg, logger, params), tenants: tenants}
}

func (f *apiFixture) call(t *testing.T, method, path, tenant, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if tenant != "" {
		req.Header.Set("X-Subdomain", tenant)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec.Code, env
}

func (f *apiFixture) login(t *testing.T, tenant, username, password string) *entity.LoginResult {
	t.Helper()

	status, env := f.call(t, http.MethodPost, "/api/auth/login", tenant, "", entity.Credentials{Username: username, Password: password})
	require.Equal(t, http.StatusOK, status, "login failed: %+v", env.Error)

	var result entity.LoginResult
	require.NoError(t, json.Unmarshal(env.Data, &result))

	return &result
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestAPI_HealthAndDirectory(t *testing.T) {
	f := newAPIFixture(t, rate.Inf, 1)

	status, env := f.call(t, http.MethodGet, "/health", "", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, env.Meta.RequestID)

	status, env = f.call(t, http.MethodGet, "/api/tenants", "", "", nil)
	require.Equal(t, http.StatusOK, status)
	tenants := decodeData[[]*entity.TenantSummary](t, env)
	assert.Len(t, tenants, 3)

	status, env = f.call(t, http.MethodGet, "/api/tenants/praia", "", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Praia Grande", decodeData[entity.TenantSummary](t, env).Name)

	status, env = f.call(t, http.MethodGet, "/api/tenants/nenhum", "", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "TENANT_NOT_FOUND", env.Error.Code)
}

func TestAPI_TenantAdmission(t *testing.T) {
	f := newAPIFixture(t, rate.Inf, 1)
	creds := entity.Credentials{Username: "admin", Password: "123456"}

	tests := []struct {
		name   string
		tenant string
		status int
		code   string
	}{
		{name: "missing header", tenant: "", status: http.StatusBadRequest, code: "TENANT_MISSING"},
		{name: "unknown tenant", tenant: "nenhum", status: http.StatusNotFound, code: "TENANT_NOT_FOUND"},
		{name: "inactive tenant", tenant: "fechado", status: http.StatusNotFound, code: "TENANT_NOT_FOUND"},
		{name: "malformed tenant", tenant: "not valid!", status: http.StatusNotFound, code: "TENANT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := f.call(t, http.MethodPost, "/api/auth/login", tt.tenant, "", creds)
			assert.Equal(t, tt.status, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestAPI_DemoLogin(t *testing.T) {
	f := newAPIFixture(t, rate.Inf, 1)

	result := f.login(t, "demo", "admin", "123456")
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.ExpiresAt.After(time.Now()))
	assert.Equal(t, entity.RoleAdmin, result.User.Role)
	assert.Equal(t, entity.TenantID("demo"), result.User.Tenant)

	status, env := f.call(t, http.MethodPost, "/api/auth/login", "demo", "", entity.Credentials{Username: "admin", Password: "errada"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)

	status, env = f.call(t, http.MethodPost, "/api/auth/login", "demo", "", map[string]string{"usuario": "admin"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "senha é obrigatório", env.Error.Details)
}

func TestAPI_TokenBoundToTenant(t *testing.T) {
	f := newAPIFixture(t, rate.Inf, 1)
	demo := f.login(t, "demo", "admin", "123456")

	status, env := f.call(t, http.MethodGet, "/api/auth/me", "demo", demo.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin", decodeData[entity.UserProfile](t, env).Username)

	status, env = f.call(t, http.MethodGet, "/api/auth/me", "praia", demo.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "TENANT_MISMATCH", env.Error.Code)

	status, env = f.call(t, http.MethodGet, "/api/pessoas", "demo", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	status, _ = f.call(t, http.MethodGet, "/api/pessoas", "demo", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_PeopleCRUD(t *testing.T) {
	f := newAPIFixture(t, rate.Inf, 1)
	token := f.login(t, "demo", "admin", "123456").Token
	input := entity.PersonInput{Name: "Maria da Silva", CPF: "12345678901", Phone: "11987654321"}

	status, env := f.call(t, http.MethodPost, "/api/pessoas", "demo", token, input)
	require.Equal(t, http.StatusCreated, status)
	person := decodeData[entity.Person](t, env)
	path := "/api/pessoas/" + person.ID.String()

	status, env = f.call(t, http.MethodPost, "/api/pessoas", "demo", token, input)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "PERSON_ALREADY_EXISTS", env.Error.Code)

	status, env = f.call(t, http.MethodPost, "/api/pessoas", "demo", token, entity.PersonInput{Name: "Jo", CPF: "1"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	status, env = f.call(t, http.MethodGet, "/api/pessoas?search=maria&page=1&limit=5", "demo", token, nil)
	require.Equal(t, http.StatusOK, status)
	page := decodeData[entity.Page[*entity.Person]](t, env)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 5, page.Limit)

	status, env = f.call(t, http.MethodGet, "/api/pessoas?page=abc", "demo", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	input.Address = "Rua das Flores, 10"
	status, env = f.call(t, http.MethodPut, path, "demo", token, input)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rua das Flores, 10", decodeData[entity.Person](t, env).Address)

	// another tenant never sees it
	praia := f.login(t, "praia", "admin", "praia123").Token
	status, _ = f.call(t, http.MethodGet, path, "praia", praia, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = f.call(t, http.MethodDelete, path, "demo", token, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, env = f.call(t, http.MethodGet, path, "demo", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "PERSON_NOT_FOUND", env.Error.Code)

	status, _ = f.call(t, http.MethodGet, "/api/pessoas/not-a-uuid", "demo", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_AccountAdministration(t *testing.T) {
	f := newAPIFixture(t, rate.Inf, 1)
	admin := f.login(t, "demo", "admin", "123456")

	status, env := f.call(t, http.MethodPost, "/api/usuarios", "demo", admin.Token, entity.AccountInput{
		Name: "Consulta", Username: "consulta", Role: entity.RoleViewer, Password: "segredo1",
	})
	require.Equal(t, http.StatusCreated, status)
	viewer := decodeData[entity.Account](t, env)
	viewerPath := "/api/usuarios/" + viewer.ID.String()

	viewerToken := f.login(t, "demo", "consulta", "segredo1").Token

	t.Run("viewer reads but cannot write", func(t *testing.T) {
		status, _ := f.call(t, http.MethodGet, "/api/pessoas", "demo", viewerToken, nil)
		assert.Equal(t, http.StatusOK, status)

		status, env := f.call(t, http.MethodPost, "/api/pessoas", "demo", viewerToken, entity.PersonInput{Name: "Maria", CPF: "12345678901"})
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)

		status, _ = f.call(t, http.MethodPost, viewerPath+"/bloquear", "demo", viewerToken, nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("password reset", func(t *testing.T) {
		status, _ := f.call(t, http.MethodPost, viewerPath+"/reset-senha", "demo", admin.Token, entity.PasswordReset{Password: "novasenha"})
		require.Equal(t, http.StatusNoContent, status)

		f.login(t, "demo", "consulta", "novasenha")
	})

	t.Run("block and unblock", func(t *testing.T) {
		status, env := f.call(t, http.MethodPost, viewerPath+"/bloquear", "demo", admin.Token, nil)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, decodeData[entity.Account](t, env).Blocked)

		status, env = f.call(t, http.MethodPost, "/api/auth/login", "demo", "", entity.Credentials{Username: "consulta", Password: "novasenha"})
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "ACCOUNT_BLOCKED", env.Error.Code)

		// a token issued before the block stops working at once
		for _, path := range []string{"/api/pessoas", "/api/auth/me"} {
			status, env = f.call(t, http.MethodGet, path, "demo", viewerToken, nil)
			assert.Equal(t, http.StatusUnauthorized, status, path)
			assert.Equal(t, "UNAUTHORIZED", env.Error.Code, path)
		}

		status, _ = f.call(t, http.MethodPost, viewerPath+"/desbloquear", "demo", admin.Token, nil)
		require.Equal(t, http.StatusOK, status)

		status, _ = f.call(t, http.MethodGet, "/api/pessoas", "demo", viewerToken, nil)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("role change applies to issued tokens", func(t *testing.T) {
		status, _ := f.call(t, http.MethodPut, viewerPath, "demo", admin.Token, entity.AccountInput{
			Name: "Consulta", Username: "consulta", Role: entity.RoleOperator,
		})
		require.Equal(t, http.StatusOK, status)

		status, _ = f.call(t, http.MethodPost, "/api/pessoas", "demo", viewerToken, entity.PersonInput{Name: "Maria Souza", CPF: "98765432100"})
		assert.Equal(t, http.StatusCreated, status)

		status, _ = f.call(t, http.MethodGet, "/api/usuarios", "demo", viewerToken, nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("self lockout", func(t *testing.T) {
		status, env := f.call(t, http.MethodPost, "/api/usuarios/"+admin.User.ID+"/bloquear", "demo", admin.Token, nil)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "SELF_LOCKOUT", env.Error.Code)
	})

	t.Run("listing", func(t *testing.T) {
		status, env := f.call(t, http.MethodGet, "/api/usuarios", "demo", admin.Token, nil)
		require.Equal(t, http.StatusOK, status)
		page := decodeData[entity.Page[*entity.Account]](t, env)
		assert.Equal(t, 2, page.Total)
		assert.NotContains(t, string(env.Data), "senha")
	})

	t.Run("delete", func(t *testing.T) {
		status, _ := f.call(t, http.MethodDelete, viewerPath, "demo", admin.Token, nil)
		assert.Equal(t, http.StatusNoContent, status)
	})
}

func TestAPI_LoginRateLimit(t *testing.T) {
	f := newAPIFixture(t, rate.Limit(0.001), 2)
	creds := entity.Credentials{Username: "admin", Password: "errada"}

	for range 2 {
		status, _ := f.call(t, http.MethodPost, "/api/auth/login", "demo", "", creds)
		assert.Equal(t, http.StatusUnauthorized, status)
	}

	status, env := f.call(t, http.MethodPost, "/api/auth/login", "demo", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error.Code)
}

func TestAPI_UnknownRoute(t *testing.T) {
	f := newAPIFixture(t, rate.Inf, 1)

	status, env := f.call(t, http.MethodGet, "/nada", "", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
