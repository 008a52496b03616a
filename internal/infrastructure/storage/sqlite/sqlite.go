package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"nceerrors/internal/domain/errorrecord"
	"nceerrors/internal/infrastructure/migration"
	"nceerrors/migrations"
)

// Storage - файловое хранилище для локального запуска и тестов
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*Storage, error) {
	mg := migration.NewMigration(migrations.SQLite, "sqlite3://"+path, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Records() errorrecord.Repository {
	return NewErrorRecordRepository(s.db, s.log)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
