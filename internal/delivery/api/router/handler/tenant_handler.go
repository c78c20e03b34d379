package handler

import (
	"net/http"

	"painel/internal/delivery/api/response"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TenantHandler serves the public tenant directory.
type TenantHandler struct {
	registry usecase.RegistryUsecase
}

// NewTenantHandler is the constructor for TenantHandler
func NewTenantHandler(registry usecase.RegistryUsecase) *TenantHandler {
	return &TenantHandler{registry: registry}
}

// List returns every tenant, active or not.
func (h *TenantHandler) List(c echo.Context) error {
	tenants, err := h.registry.ListTenants(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if tenants == nil {
		tenants = []*entity.TenantSummary{}
	}

	return response.Success(c, http.StatusOK, tenants)
}

// Get answers 404 for an unknown subdomain.
func (h *TenantHandler) Get(c echo.Context) error {
	id, ok := entity.ParseTenantID(c.Param("subdomain"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrTenantNotFound)
	}

	tenant, err := h.registry.GetTenant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tenant)
}
