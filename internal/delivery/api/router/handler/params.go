package handler

import (
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id inválido"))
	}

	return id, nil
}

func bindListQuery(c echo.Context) (entity.ListQuery, error) {
	var query entity.ListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return query, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("page e limit devem ser números"))
	}

	return query.Normalize(), nil
}

// bindAndValidate decodes the JSON body into dst and runs the echo validator on it.
func bindAndValidate(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("corpo da requisição inválido"))
	}

	return c.Validate(dst)
}
