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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves system-account administration of the admitted tenant.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

func (h *AccountHandler) List(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.accountUC.List(c.Request().Context(), deliverycontext.GetTenant(c), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *AccountHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Get(c.Request().Context(), deliverycontext.GetTenant(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

func (h *AccountHandler) Create(c echo.Context) error {
	var input entity.AccountInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Create(c.Request().Context(), deliverycontext.GetTenant(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account)
}

func (h *AccountHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input entity.AccountInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Update(c.Request().Context(), deliverycontext.GetTenant(c), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

func (h *AccountHandler) Delete(c echo.Context) error {
	actor, id, err := h.actorAndTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.Delete(c.Request().Context(), deliverycontext.GetTenant(c), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ResetPassword replaces the account's password.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var reset entity.PasswordReset
	if err := bindAndValidate(c, &reset); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.ResetPassword(c.Request().Context(), deliverycontext.GetTenant(c), id, reset); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (h *AccountHandler) Block(c echo.Context) error {
	return h.setBlocked(c, true)
}

func (h *AccountHandler) Unblock(c echo.Context) error {
	return h.setBlocked(c, false)
}

func (h *AccountHandler) setBlocked(c echo.Context, blocked bool) error {
	actor, id, err := h.actorAndTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.SetBlocked(c.Request().Context(), deliverycontext.GetTenant(c), actor, id, blocked)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).InfoContext(ctx, "Account block state changed",
		slog.String("account_id", id.String()),
		slog.String("actor_id", actor.String()),
		slog.Bool("blocked", blocked),
	)

	return response.Success(c, http.StatusOK, account)
}

func (h *AccountHandler) actorAndTarget(c echo.Context) (actor, id uuid.UUID, err error) {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		return actor, id, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	targetID, err := parseID(c)
	if err != nil {
		return actor, id, err
	}

	return actorID, targetID, nil
}
