//GET    /                 # Health check
//GET    /metrics          # Prometheus
//GET    /api/errors       # Страница записей (?page=&limit=)
//GET    /api/errors/{id}  # Получить запись
//POST   /api/errors       # Создать запись
//PUT    /api/errors/{id}  # Обновить запись
//DELETE /api/errors/{id}  # Удалить запись

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"nceerrors/internal/app/server/api/http/apierror"
	errorAPI "nceerrors/internal/app/server/api/http/errorrecord"
	healthAPI "nceerrors/internal/app/server/api/http/health"
	"nceerrors/internal/app/server/api/http/middleware"
	"nceerrors/internal/app/server/api/http/middleware/cors"
	"nceerrors/internal/app/server/api/http/middleware/logger"
	"nceerrors/internal/app/server/api/http/middleware/metrics"
	"nceerrors/internal/app/server/api/http/middleware/ratelimit"
	"nceerrors/internal/app/server/api/http/middleware/requestid"
	"nceerrors/internal/app/server/config"
	"nceerrors/internal/domain/errorrecord"
)

type Handlers struct {
	Health *healthAPI.Handler
	Errors *errorAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(service errorrecord.Servicer, cfg *config.Config, log *slog.Logger) *chi.Mux {
	apierror.Install()

	mux := chi.NewMux()
	mux.Use(cors.Handler(cfg.Server.CORSOrigin))
	mux.Handle("/metrics", promhttp.Handler())

	humaConfig := huma.DefaultConfig("NCE Error Management API", "1.0.0")
	API := humachi.New(mux, humaConfig)

	h := handlers(API, service, cfg, log)
	h.Health.SetupRoutes(API)
	h.Errors.SetupRoutes(API)

	return mux
}

func handlers(API huma.API, service errorrecord.Servicer, cfg *config.Config, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	limiter := ratelimit.New(API, cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestid.Middleware(), loggerMW.Middleware(), metrics.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(requestid.Middleware(), loggerMW.Middleware(), metrics.Middleware())
	middlewares.Add(limiter.Middleware())
	errorHandler := errorAPI.NewHandler(service,
		errorAPI.Limits{Default: cfg.Pagination.DefaultLimit, Max: cfg.Pagination.MaxLimit},
		log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Errors: errorHandler,
	}
}
