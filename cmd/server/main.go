package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"nceerrors/internal/app/server/api"
	"nceerrors/internal/app/server/config"
	"nceerrors/internal/domain/errorrecord"
	"nceerrors/internal/infrastructure/cache"
	"nceerrors/internal/infrastructure/storage"
	"nceerrors/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	log.Info("starting server",
		slog.String("env", cfg.Env),
		slog.String("address", cfg.Server.RunAddress),
		slog.String("storage", cfg.DB.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	st, err := storage.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	var totals errorrecord.TotalCache
	if cfg.Redis.URL != "" {
		rc, err := cache.NewRedisTotalCache(ctx, cfg.Redis.URL, log)
		if err != nil {
			// без кэша сервис работает, просто чаще считает записи
			log.Warn("redis unavailable, total cache disabled", slog.String("error", err.Error()))
		} else {
			defer rc.Close()
			totals = rc
		}
	}

	service := errorrecord.NewService(st.Records(), totals, log)

	srv := &http.Server{
		Addr:         cfg.Server.RunAddress,
		Handler:      api.New(service, cfg, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
