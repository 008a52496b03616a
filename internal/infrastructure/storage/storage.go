package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"nceerrors/internal/app/server/config"
	"nceerrors/internal/domain/errorrecord"
	"nceerrors/internal/infrastructure/storage/postgres"
	"nceerrors/internal/infrastructure/storage/sqlite"
)

// Storage хранилище сервиса записей
type Storage interface {
	Records() errorrecord.Repository
	Close() error
}

// New открывает хранилище, выбранное в конфигурации, и применяет миграции
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg, log)
	case config.DriverSQLite:
		return sqlite.New(cfg.DB.SQLitePath, log)
	default:
		return nil, fmt.Errorf("неизвестный драйвер хранилища %q", cfg.DB.Driver)
	}
}
