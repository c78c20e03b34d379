package backend

import (
	"context"
	"net/http"

	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"

	"github.com/pkg/errors"
)

const (
	pathLogin = "/api/auth/login"
	pathMe    = "/api/auth/me"
)

// Login posts the credentials for tenant. The tenant header always names tenant, whatever the
// current selection is. 400, 401 and 403 answers become *errors.AuthError.
func (c *Client) Login(ctx context.Context, tenant entity.TenantID, creds entity.Credentials) (*entity.LoginResult, error) {
	if tenant.IsZero() {
		return nil, errors.WithStack(domainerrors.ErrTenantMissing)
	}

	var result entity.LoginResult
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathLogin,
		body:   creds,
		tenant: tenant,
	}, &result)
	if err != nil {
		var remote *domainerrors.RemoteError
		if errors.As(err, &remote) && isLoginRejection(remote.HTTPCode()) {
			return nil, errors.WithStack(domainerrors.NewAuthError(remote.HTTPCode(), remote.ErrorCode(), remote.Message()))
		}

		return nil, err
	}

	return &result, nil
}

// FetchProfile loads the profile behind the bound token.
func (c *Client) FetchProfile(ctx context.Context) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := c.do(ctx, request{method: http.MethodGet, path: pathMe, authenticated: true}, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func isLoginRejection(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return true
	default:
		return false
	}
}
