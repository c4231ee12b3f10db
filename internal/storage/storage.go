// Package storage opens the member store selected by configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/marcelsud/booklend/config"
	"github.com/marcelsud/booklend/library"
	"github.com/marcelsud/booklend/library/postgres"
	"github.com/marcelsud/booklend/library/redis"
	"github.com/marcelsud/booklend/library/sqlite"
	"github.com/marcelsud/booklend/library/textfile"
	"github.com/rs/zerolog"
)

// Open connects to the configured member store. The caller closes it.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (library.Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating store settings: %w", err)
	}
	log = log.With().Str("store", cfg.StoreDriver).Logger()

	switch cfg.StoreDriver {
	case config.DriverFile:
		repo, err := textfile.NewRepository(cfg.MembersFile, textfile.WithLogger(log))
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", repo.Path()).Msg("member store ready")
		return repo, nil

	case config.DriverPostgres:
		log.Debug().Str("host", cfg.PostgresHost).Str("port", cfg.PostgresPort).Msg("connecting to postgres")
		repo, err := postgres.NewRepositoryWithPoolConfig(
			cfg.PostgresConnectionString(),
			cfg.PostgresMaxOpenConns,
			cfg.PostgresMaxIdleConns,
			cfg.PostgresConnMaxLifeMinutes,
		)
		if err != nil {
			return nil, err
		}
		if err := repo.CreateTable(ctx); err != nil {
			repo.Close(ctx)
			return nil, err
		}
		return repo, nil

	case config.DriverSQLite:
		log.Debug().Str("path", cfg.SQLitePath).Msg("opening sqlite")
		repo, err := sqlite.NewRepository(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.DriverRedis:
		log.Debug().Str("addr", cfg.RedisAddr).Str("key", cfg.RedisKey).Msg("connecting to redis")
		repo, err := redis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKey, redis.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
