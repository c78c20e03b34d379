package browser

import (
	"painel/internal/domain/service"

	"go.uber.org/fx"
)

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewNavigator,
		func(nav *Navigator) service.Navigator { return nav },
	),
)
