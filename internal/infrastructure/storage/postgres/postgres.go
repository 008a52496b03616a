package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"nceerrors/internal/app/server/config"
	"nceerrors/internal/domain/errorrecord"
	"nceerrors/internal/infrastructure/migration"
	"nceerrors/migrations"
)

type Storage struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DB.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 1 * time.Minute
	if cfg.DB.PoolMax > 0 {
		poolCfg.MaxConns = int32(cfg.DB.PoolMax)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	mg := migration.NewMigration(migrations.Postgres, cfg.DB.DatabaseURL, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{pool: pool, log: log}, nil
}

func (s *Storage) Records() errorrecord.Repository {
	return NewErrorRecordRepository(s.pool, s.log)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
