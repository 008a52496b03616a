package ratelimit

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

// Limiter общий для всего API ограничитель частоты запросов
type Limiter struct {
	api     huma.API
	limiter *rate.Limiter
	log     *slog.Logger
}

// New создает ограничитель. rps <= 0 отключает ограничение.
func New(api huma.API, rps float64, burst int, log *slog.Logger) *Limiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		api:     api,
		limiter: rate.NewLimiter(limit, burst),
		log:     log.With(slog.String("component", "rate_limiter")),
	}
}

func (l *Limiter) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !l.limiter.Allow() {
			l.log.Warn("request rejected by rate limiter",
				slog.String("method", ctx.Method()),
				slog.String("path", ctx.URL().Path),
			)
			_ = huma.WriteErr(l.api, ctx, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next(ctx)
	}
}
