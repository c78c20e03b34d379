package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"painel/config"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticHeaders composes fixed session headers.
type staticHeaders struct {
	tenant string
	token  string
}

func (h staticHeaders) Compose(_ context.Context, authenticated bool) http.Header {
	headers := make(http.Header)
	if h.tenant != "" {
		headers.Set("X-Subdomain", h.tenant)
	}
	if authenticated && h.token != "" {
		headers.Set("Authorization", "Bearer "+h.token)
	}

	return headers
}

func (h staticHeaders) TenantHeader() string {
	return "X-Subdomain"
}

func newTestClient(t *testing.T, handler http.HandlerFunc, headers staticHeaders) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Backend: &config.BackendConfig{BaseURL: server.URL, Timeout: time.Second}}
	client, err := NewClient(cfg, headers, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func writeData(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{RequestID: "req-1"},
	}))
}

func writeError(t *testing.T, w http.ResponseWriter, status int, code, message string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{Code: code, Message: message},
		Meta:  &domainerrors.MetaInfo{RequestID: "req-1"},
	}))
}

func TestNewClient_Config(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewClient(&config.Config{}, staticHeaders{}, logger)
	require.Error(t, err)

	_, err = NewClient(&config.Config{Backend: &config.BackendConfig{BaseURL: "ftp://example.com"}}, staticHeaders{}, logger)
	require.Error(t, err)

	client, err := NewClient(&config.Config{Backend: &config.BackendConfig{BaseURL: "http://localhost:8080/base/"}}, staticHeaders{}, logger)
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
	assert.Equal(t, "http://localhost:8080/base/api/tenants", client.endpoint(pathTenants, nil))
}

func TestClient_Login(t *testing.T) {
	ctx := context.Background()
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("explicit tenant wins over the selection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, pathLogin, r.URL.Path)
			assert.Equal(t, "demo", r.Header.Get("X-Subdomain"))
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var creds entity.Credentials
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, entity.Credentials{Username: "admin", Password: "123456"}, creds)

			writeData(t, w, http.StatusOK, entity.LoginResult{
				Token:     "tok",
				ExpiresAt: expires,
				User:      &entity.UserProfile{ID: "1", Username: "admin", Role: entity.RoleAdmin, Tenant: "demo"},
			})
		}, staticHeaders{tenant: "praia", token: "old"})

		result, err := client.Login(ctx, "demo", entity.Credentials{Username: "admin", Password: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "tok", result.Token)
		assert.True(t, expires.Equal(result.ExpiresAt))
		assert.Equal(t, entity.RoleAdmin, result.User.Role)
	})

	t.Run("rejections become auth errors", func(t *testing.T) {
		for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden} {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeError(t, w, status, "INVALID_CREDENTIALS", "Usuário ou senha inválidos")
			}, staticHeaders{})

			_, err := client.Login(ctx, "demo", entity.Credentials{Username: "admin", Password: "x"})

			var authErr *domainerrors.AuthError
			require.True(t, errors.As(err, &authErr), "status %d", status)
			assert.Equal(t, status, authErr.HTTPCode())
			assert.Equal(t, "Usuário ou senha inválidos", authErr.Message())
		}
	})

	t.Run("server failure stays remote", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeError(t, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do sistema")
		}, staticHeaders{})

		_, err := client.Login(ctx, "demo", entity.Credentials{Username: "admin", Password: "x"})

		var remote *domainerrors.RemoteError
		require.True(t, errors.As(err, &remote))
		assert.Equal(t, http.StatusInternalServerError, remote.HTTPCode())

		var authErr *domainerrors.AuthError
		assert.False(t, errors.As(err, &authErr))
	})

	t.Run("no tenant", func(t *testing.T) {
		client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("no request expected")
		}, staticHeaders{})

		_, err := client.Login(ctx, "", entity.Credentials{Username: "admin", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrTenantMissing)
	})
}

func TestClient_FetchProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathMe, r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "demo", r.Header.Get("X-Subdomain"))

		writeData(t, w, http.StatusOK, entity.UserProfile{ID: "1", Username: "admin", Role: entity.RoleAdmin, Tenant: "demo"})
	}, staticHeaders{tenant: "demo", token: "tok"})

	profile, err := client.FetchProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", profile.Username)
}

func TestClient_UnauthorizedIsDetectable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeError(t, w, http.StatusUnauthorized, "UNAUTHORIZED", "Token ausente, inválido ou expirado")
	}, staticHeaders{tenant: "demo", token: "expired"})

	_, err := client.ListPeople(context.Background(), entity.ListQuery{})
	require.Error(t, err)
	assert.True(t, domainerrors.IsUnauthorized(err))
	assert.Equal(t, "Token ausente, inválido ou expirado", domainerrors.UserMessage(err))
}

func TestClient_NonJSONError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}, staticHeaders{tenant: "demo"})

	_, err := client.ListTenants(context.Background())

	var remote *domainerrors.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusBadGateway, remote.HTTPCode())
	assert.Equal(t, "Bad Gateway", remote.Message())
	assert.Equal(t, "<html>bad gateway</html>", remote.Details())
}

func TestClient_Directory(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/api/tenants":
			writeData(t, w, http.StatusOK, []*entity.TenantSummary{{Subdomain: "demo", Name: "Demo"}})
		case "/api/tenants/demo":
			writeData(t, w, http.StatusOK, entity.TenantSummary{Subdomain: "demo", Name: "Demo"})
		default:
			writeError(t, w, http.StatusNotFound, "TENANT_NOT_FOUND", "Município não encontrado")
		}
	}, staticHeaders{tenant: "demo", token: "tok"})

	tenants, err := client.ListTenants(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, entity.TenantID("demo"), tenants[0].Subdomain)

	tenant, err := client.GetTenant(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, "Demo", tenant.Name)

	_, err = client.GetTenant(ctx, "nenhum")
	var remote *domainerrors.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusNotFound, remote.HTTPCode())
	assert.Equal(t, "TENANT_NOT_FOUND", remote.ErrorCode())
}

func TestClient_PeopleRoutes(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	person := entity.Person{ID: id, Tenant: "demo", Name: "Maria", CPF: "12345678901"}

	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == pathPeople:
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			assert.Equal(t, "maria", r.URL.Query().Get("search"))
			writeData(t, w, http.StatusOK, entity.Page[*entity.Person]{Items: []*entity.Person{&person}, Page: 2, Limit: 10, Total: 11})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			writeData(t, w, http.StatusOK, person)
		}
	}, staticHeaders{tenant: "demo", token: "tok"})

	page, err := client.ListPeople(ctx, entity.ListQuery{Page: 2, Limit: 10, Search: "maria"})
	require.NoError(t, err)
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 2, page.Pages())

	got, err := client.GetPerson(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = client.CreatePerson(ctx, entity.PersonInput{Name: "Maria", CPF: "12345678901"})
	require.NoError(t, err)
	_, err = client.UpdatePerson(ctx, id, entity.PersonInput{Name: "Maria", CPF: "12345678901"})
	require.NoError(t, err)
	require.NoError(t, client.DeletePerson(ctx, id))

	assert.Equal(t, []string{
		"GET /api/pessoas",
		"GET /api/pessoas/" + id.String(),
		"POST /api/pessoas",
		"PUT /api/pessoas/" + id.String(),
		"DELETE /api/pessoas/" + id.String(),
	}, calls)
}

func TestClient_AccountRoutes(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)

		switch r.URL.Path {
		case accountPath(id, "reset-senha"):
			var reset entity.PasswordReset
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&reset))
			assert.Equal(t, "novasenha", reset.Password)
			w.WriteHeader(http.StatusNoContent)
		case accountPath(id, "bloquear"):
			writeData(t, w, http.StatusOK, entity.Account{ID: id, Blocked: true})
		default:
			writeData(t, w, http.StatusOK, entity.Account{ID: id})
		}
	}, staticHeaders{tenant: "demo", token: "tok"})

	require.NoError(t, client.ResetPassword(ctx, id, entity.PasswordReset{Password: "novasenha"}))

	blocked, err := client.BlockAccount(ctx, id)
	require.NoError(t, err)
	assert.True(t, blocked.Blocked)

	unblocked, err := client.UnblockAccount(ctx, id)
	require.NoError(t, err)
	assert.False(t, unblocked.Blocked)

	assert.Equal(t, []string{
		"POST /api/usuarios/" + id.String() + "/reset-senha",
		"POST /api/usuarios/" + id.String() + "/bloquear",
		"POST /api/usuarios/" + id.String() + "/desbloquear",
	}, calls)
}

func TestClient_MissingData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeData(t, w, http.StatusOK, nil)
	}, staticHeaders{tenant: "demo", token: "tok"})

	_, err := client.GetPerson(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestClient_TenantOverrideDropsForeignToken(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		override      entity.TenantID
		tenant        string
		authorization string
	}{
		{name: "override of another tenant", override: "praia", tenant: "praia"},
		{name: "override equal to the binding", override: "demo", tenant: "demo", authorization: "Bearer tok"},
		{name: "no override", tenant: "demo", authorization: "Bearer tok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.tenant, r.Header.Get("X-Subdomain"))
				assert.Equal(t, tt.authorization, r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusNoContent)
			}, staticHeaders{tenant: "demo", token: "tok"})

			err := client.do(ctx, request{
				method:        http.MethodGet,
				path:          pathMe,
				authenticated: true,
				tenant:        tt.override,
			}, nil)
			require.NoError(t, err)
		})
	}
}
