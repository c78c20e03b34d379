package backend

import (
	"context"
	"net/http"
	"net/url"

	"painel/internal/domain/entity"
)

const pathTenants = "/api/tenants"

// ListTenants returns the public tenant directory.
func (c *Client) ListTenants(ctx context.Context) ([]*entity.TenantSummary, error) {
	var tenants []*entity.TenantSummary
	if err := c.do(ctx, request{method: http.MethodGet, path: pathTenants}, &tenants); err != nil {
		return nil, err
	}

	return tenants, nil
}

// GetTenant looks up one tenant. An unknown tenant is a 404 RemoteError.
func (c *Client) GetTenant(ctx context.Context, id entity.TenantID) (*entity.TenantSummary, error) {
	var tenant entity.TenantSummary
	path := pathTenants + "/" + url.PathEscape(id.String())
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &tenant); err != nil {
		return nil, err
	}

	return &tenant, nil
}
