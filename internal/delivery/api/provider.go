package api

import (
	"painel/internal/delivery"
	"painel/internal/delivery/api/middleware"
	"painel/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

// Module provides the API server with its handlers and middleware.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewTenantMiddleware,
		middleware.NewLoginRateLimiter,
		handler.NewAuthHandler,
		handler.NewTenantHandler,
		handler.NewPersonHandler,
		handler.NewAccountHandler,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)

var _ delivery.Delivery = (*apiServer)(nil)
