package backend

import (
	"painel/internal/domain/service"

	"go.uber.org/fx"
)

// Gateways exposes one Client under every gateway interface.
type Gateways struct {
	fx.Out

	Auth      service.AuthGateway
	Directory service.DirectoryGateway
	People    service.PeopleGateway
	Accounts  service.AccountGateway
}

// NewGateways adapts a Client to the gateway interfaces.
func NewGateways(client *Client) Gateways {
	return Gateways{
		Auth:      client,
		Directory: client,
		People:    client,
		Accounts:  client,
	}
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewClient, NewGateways),
)
