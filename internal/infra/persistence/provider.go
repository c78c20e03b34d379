// Package persistence selects and seeds the API repositories.
package persistence

import (
	"log/slog"

	"painel/config"
	"painel/internal/domain/repository"
	"painel/internal/infra/persistence/memory"
	"painel/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories the API handlers depend on.
type Repositories struct {
	fx.Out

	Tenants  repository.TenantRepository
	People   repository.PersonRepository
	Accounts repository.AccountRepository
}

// NewRepositories uses PostgreSQL when it is configured and process memory otherwise.
func NewRepositories(params Params) (Repositories, error) {
	if params.Config.Postgres == nil {
		params.Logger.Warn("No postgres configured, data lives in memory and is lost on exit")

		return Repositories{
			Tenants:  memory.NewTenantRepository(),
			People:   memory.NewPersonRepository(),
			Accounts: memory.NewAccountRepository(),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		Tenants:  postgres.NewTenantRepository(db),
		People:   postgres.NewPersonRepository(db),
		Accounts: postgres.NewAccountRepository(db),
	}, nil
}

// Module provides the repositories and seeds them on start.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
	fx.Invoke(RegisterSeed),
)
