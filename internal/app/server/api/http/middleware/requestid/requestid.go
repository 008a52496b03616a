package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware берет X-Request-ID клиента или генерирует новый и
// возвращает его в заголовке ответа
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		reqID := ctx.Header(Header)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		ctx.SetHeader(Header, reqID)
		next(huma.WithValue(ctx, ctxKey{}, reqID))
	}
}

// Get извлекает request ID из контекста
func Get(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	reqID, _ := ctx.Value(ctxKey{}).(string)
	return reqID
}
