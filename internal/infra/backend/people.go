package backend

import (
	"context"
	"net/http"

	"painel/internal/domain/entity"

	"github.com/google/uuid"
)

const pathPeople = "/api/pessoas"

func personPath(id uuid.UUID) string {
	return pathPeople + "/" + id.String()
}

func (c *Client) ListPeople(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Person], error) {
	var page entity.Page[*entity.Person]
	err := c.do(ctx, request{method: http.MethodGet, path: pathPeople, query: listQuery(query), authenticated: true}, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetPerson(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	var person entity.Person
	if err := c.do(ctx, request{method: http.MethodGet, path: personPath(id), authenticated: true}, &person); err != nil {
		return nil, err
	}

	return &person, nil
}

func (c *Client) CreatePerson(ctx context.Context, input entity.PersonInput) (*entity.Person, error) {
	var person entity.Person
	err := c.do(ctx, request{method: http.MethodPost, path: pathPeople, body: input, authenticated: true}, &person)
	if err != nil {
		return nil, err
	}

	return &person, nil
}

func (c *Client) UpdatePerson(ctx context.Context, id uuid.UUID, input entity.PersonInput) (*entity.Person, error) {
	var person entity.Person
	err := c.do(ctx, request{method: http.MethodPut, path: personPath(id), body: input, authenticated: true}, &person)
	if err != nil {
		return nil, err
	}

	return &person, nil
}

func (c *Client) DeletePerson(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, request{method: http.MethodDelete, path: personPath(id), authenticated: true}, nil)
}
