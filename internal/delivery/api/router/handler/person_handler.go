package handler

import (
	"net/http"

	"painel/internal/delivery/api/response"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	"painel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PersonHandler serves the people CRUD of the admitted tenant.
type PersonHandler struct {
	personUC usecase.PersonUsecase
}

// NewPersonHandler is the constructor for PersonHandler
func NewPersonHandler(personUC usecase.PersonUsecase) *PersonHandler {
	return &PersonHandler{personUC: personUC}
}

func (h *PersonHandler) List(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.personUC.List(c.Request().Context(), deliverycontext.GetTenant(c), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *PersonHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	person, err := h.personUC.Get(c.Request().Context(), deliverycontext.GetTenant(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, person)
}

func (h *PersonHandler) Create(c echo.Context) error {
	var input entity.PersonInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	person, err := h.personUC.Create(c.Request().Context(), deliverycontext.GetTenant(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, person)
}

func (h *PersonHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input entity.PersonInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	person, err := h.personUC.Update(c.Request().Context(), deliverycontext.GetTenant(c), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, person)
}

func (h *PersonHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.personUC.Delete(c.Request().Context(), deliverycontext.GetTenant(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
