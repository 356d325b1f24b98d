package container

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-account-service/config"
	"github.com/oksasatya/go-account-service/internal/domain/repository"
	"github.com/oksasatya/go-account-service/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-account-service/internal/infrastructure/postgres"
)

// OpenAccounts builds the AccountRepository selected by STORE_DRIVER.
// For Postgres it migrates the schema before returning; the returned func releases the store.
func OpenAccounts(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.AccountRepository, func(), error) {
	if !cfg.UsesPostgres() {
		logger.Warn("STORE_DRIVER=memory: accounts are lost on restart")
		return memory.NewAccountRepository(), func() {}, nil
	}

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		MaxConnLife: cfg.DBMaxConnLife,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return pginfra.NewAccountRepository(pool), pool.Close, nil
}
