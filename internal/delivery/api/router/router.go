// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"painel/internal/delivery/api/middleware"
	"painel/internal/delivery/api/router/handler"
	"painel/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	TenantHandler    *handler.TenantHandler
	PersonHandler    *handler.PersonHandler
	AccountHandler   *handler.AccountHandler
	AuthMiddleware   *middleware.AuthMiddleware
	TenantMiddleware *middleware.TenantMiddleware
	LoginLimiter     *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	tenantHandler    *handler.TenantHandler
	personHandler    *handler.PersonHandler
	accountHandler   *handler.AccountHandler
	authMiddleware   *middleware.AuthMiddleware
	tenantMiddleware *middleware.TenantMiddleware
	loginLimiter     *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		tenantHandler:    params.TenantHandler,
		personHandler:    params.PersonHandler,
		accountHandler:   params.AccountHandler,
		authMiddleware:   params.AuthMiddleware,
		tenantMiddleware: params.TenantMiddleware,
		loginLimiter:     params.LoginLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// tenant directory is public and tenant-agnostic
	tenants := api.Group("/tenants")
	{
		tenants.GET("", r.tenantHandler.List)
		tenants.GET("/:subdomain", r.tenantHandler.Get)
	}

	scoped := api.Group("", r.tenantMiddleware.RequireTenant)

	auth := scoped.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login, r.loginLimiter.Middleware())
		auth.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	secured := scoped.Group("", r.authMiddleware.Authenticate)
	can := r.authMiddleware.RequirePermission

	people := secured.Group("/pessoas")
	{
		people.GET("", r.personHandler.List, can(entity.PermPeopleRead))
		people.GET("/:id", r.personHandler.Get, can(entity.PermPeopleRead))
		people.POST("", r.personHandler.Create, can(entity.PermPeopleWrite))
		people.PUT("/:id", r.personHandler.Update, can(entity.PermPeopleWrite))
		people.DELETE("/:id", r.personHandler.Delete, can(entity.PermPeopleWrite))
	}

	accounts := secured.Group("/usuarios")
	{
		accounts.GET("", r.accountHandler.List, can(entity.PermAccountsRead))
		accounts.GET("/:id", r.accountHandler.Get, can(entity.PermAccountsRead))
		accounts.POST("", r.accountHandler.Create, can(entity.PermAccountsWrite))
		accounts.PUT("/:id", r.accountHandler.Update, can(entity.PermAccountsWrite))
		accounts.DELETE("/:id", r.accountHandler.Delete, can(entity.PermAccountsWrite))
		accounts.POST("/:id/reset-senha", r.accountHandler.ResetPassword, can(entity.PermAccountsResetPw))
		accounts.POST("/:id/bloquear", r.accountHandler.Block, can(entity.PermAccountsBlock))
		accounts.POST("/:id/desbloquear", r.accountHandler.Unblock, can(entity.PermAccountsBlock))
	}
}
