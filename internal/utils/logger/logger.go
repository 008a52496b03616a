package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"nceerrors/internal/config"
	"nceerrors/internal/utils/logger/slogpretty"
)

// New создает логгер под окружение: цветной для local, JSON для dev/prod
func New(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

// WithLevel логгер с явно заданным уровнем (debug, info, warn, error),
// пишущий в w. Пустой или неизвестный уровень заменяется на info.
func WithLevel(env, level string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if env == config.EnvLocal {
		return slog.New(slogpretty.NewHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func setupPrettySlog() *slog.Logger {
	handler := slogpretty.NewHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler)
}
