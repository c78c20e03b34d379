package handler

import (
	"log/slog"
	"net/http"

	"painel/internal/delivery/api/middleware"
	"painel/internal/delivery/api/response"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login and the current profile.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Login checks the credentials inside the admitted tenant.
func (h *AuthHandler) Login(c echo.Context) error {
	var creds entity.Credentials
	if err := bindAndValidate(c, &creds); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.authUC.Login(c.Request().Context(), deliverycontext.GetTenant(c), creds)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Me returns the profile of the token's subject.
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	profile, err := h.authUC.Me(c.Request().Context(), deliverycontext.GetTenant(c), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
