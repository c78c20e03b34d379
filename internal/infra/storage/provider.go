package storage

import (
	"context"
	"log/slog"

	"painel/config"
	"painel/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// StoreParams holds dependencies for the StateStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStateStore creates the StateStore selected by storage.driver
func NewStateStore(params StoreParams) (repository.StateStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.Driver == "" || cfg.Driver == DriverMemory {
		logger.Debug("Using in-memory state store")

		return NewMemoryStore(), nil
	}

	switch cfg.Driver {
	case DriverFile:
		store, err := NewFileStore(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		logger.Debug("Using file state store", slog.String("path", cfg.Path))

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return store.Watch()
			},
			OnStop: func(ctx context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	case DriverRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis driver")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := NewRedisStore(client, cfg.Redis.Namespace, logger)
		logger.Debug("Using redis state store",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("namespace", cfg.Redis.Namespace),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to connect to redis")
				}

				return store.Watch(ctx)
			},
			OnStop: func(ctx context.Context) error {
				if err := store.Close(); err != nil {
					logger.Warn("Failed to stop redis watcher", slog.Any("error", err))
				}

				return client.Close()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// Module provides the state store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStateStore),
)
