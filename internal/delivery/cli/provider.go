package cli

import "go.uber.org/fx"

// Module provides the command line.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
