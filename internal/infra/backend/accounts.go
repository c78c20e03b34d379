package backend

import (
	"context"
	"net/http"

	"painel/internal/domain/entity"

	"github.com/google/uuid"
)

const pathAccounts = "/api/usuarios"

func accountPath(id uuid.UUID, action string) string {
	path := pathAccounts + "/" + id.String()
	if action != "" {
		path += "/" + action
	}

	return path
}

func (c *Client) ListAccounts(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Account], error) {
	var page entity.Page[*entity.Account]
	err := c.do(ctx, request{method: http.MethodGet, path: pathAccounts, query: listQuery(query), authenticated: true}, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return c.accountCall(ctx, http.MethodGet, accountPath(id, ""), nil)
}

func (c *Client) CreateAccount(ctx context.Context, input entity.AccountInput) (*entity.Account, error) {
	return c.accountCall(ctx, http.MethodPost, pathAccounts, input)
}

func (c *Client) UpdateAccount(ctx context.Context, id uuid.UUID, input entity.AccountInput) (*entity.Account, error) {
	return c.accountCall(ctx, http.MethodPut, accountPath(id, ""), input)
}

func (c *Client) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, request{method: http.MethodDelete, path: accountPath(id, ""), authenticated: true}, nil)
}

// ResetPassword sets a new password for the account.
func (c *Client) ResetPassword(ctx context.Context, id uuid.UUID, reset entity.PasswordReset) error {
	return c.do(ctx, request{method: http.MethodPost, path: accountPath(id, "reset-senha"), body: reset, authenticated: true}, nil)
}

func (c *Client) BlockAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return c.accountCall(ctx, http.MethodPost, accountPath(id, "bloquear"), nil)
}

func (c *Client) UnblockAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return c.accountCall(ctx, http.MethodPost, accountPath(id, "desbloquear"), nil)
}

func (c *Client) accountCall(ctx context.Context, method, path string, body any) (*entity.Account, error) {
	var account entity.Account
	if err := c.do(ctx, request{method: method, path: path, body: body, authenticated: true}, &account); err != nil {
		return nil, err
	}

	return &account, nil
}
