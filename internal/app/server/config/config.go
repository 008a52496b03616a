package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"

	sharedcfg "nceerrors/internal/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type (
	Config struct {
		Env        string `env:"APP_ENV" envDefault:"local"`
		Server     Server
		DB         DB
		Redis      Redis
		RateLimit  RateLimit
		Pagination Pagination
	}

	Server struct {
		RunAddress          string `env:"RUN_ADDRESS" envDefault:":5000"`
		ReadTimeoutSeconds  int    `env:"SERVER_READ_TIMEOUT_SECONDS" envDefault:"15"`
		WriteTimeoutSeconds int    `env:"SERVER_WRITE_TIMEOUT_SECONDS" envDefault:"15"`
		IdleTimeoutSeconds  int    `env:"SERVER_IDLE_TIMEOUT_SECONDS" envDefault:"60"`
		CORSOrigin          string `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
	}

	DB struct {
		Driver      string `env:"STORAGE_DRIVER" envDefault:"postgres"`
		DatabaseURL string `env:"DATABASE_URL"`
		SQLitePath  string `env:"SQLITE_PATH" envDefault:"nce_errors.db"`
		PoolMax     int    `env:"PG_POOL_MAX" envDefault:"10"`
	}

	Redis struct {
		URL string `env:"REDIS_URL"`
	}

	RateLimit struct {
		RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
		Burst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	}

	Pagination struct {
		DefaultLimit int `env:"DEFAULT_PAGE_LIMIT" envDefault:"20"`
		MaxLimit     int `env:"MAX_PAGE_LIMIT" envDefault:"100"`
	}
)

// Load читает конфигурацию сервера из окружения (и .env, если он есть)
func Load() (*Config, error) {
	if _, err := sharedcfg.LoadDotEnv(); err != nil {
		log.Printf("Ошибка загрузки .env файла: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// MustLoad как Load, но завершает процесс при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalln(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if !sharedcfg.ValidEnv(c.Env) {
		return fmt.Errorf("неизвестное окружение APP_ENV=%q", c.Env)
	}

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL не может быть пустым для драйвера %s", c.DB.Driver)
		}
	case DriverSQLite:
		if c.DB.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH не может быть пустым")
		}
	default:
		return fmt.Errorf("неизвестный драйвер хранилища %q", c.DB.Driver)
	}

	if c.Pagination.DefaultLimit < 1 || c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return fmt.Errorf("некорректные лимиты пагинации: default=%d max=%d",
			c.Pagination.DefaultLimit, c.Pagination.MaxLimit)
	}

	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == sharedcfg.EnvProd
}
