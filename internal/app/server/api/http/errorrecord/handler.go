package errorrecord

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"nceerrors/internal/app/server/api/http/middleware/metrics"
	"nceerrors/internal/domain/errorrecord"
)

// Limits ограничения размера страницы
type Limits struct {
	Default int
	Max     int
}

type Handler struct {
	service    errorrecord.Servicer
	limits     Limits
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service errorrecord.Servicer, limits Limits, log *slog.Logger, mws huma.Middlewares) *Handler {
	if limits.Default < 1 {
		limits.Default = errorrecord.DefaultLimit
	}
	if limits.Max < limits.Default {
		limits.Max = limits.Default
	}

	return &Handler{
		service:    service,
		limits:     limits,
		log:        log.With(slog.String("component", "errorrecord_handler")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = h.limits.Default
	}
	if limit > h.limits.Max {
		limit = h.limits.Max
	}

	page, err := h.service.List(ctx, input.Page, limit)
	if err != nil {
		return nil, toHTTP(err)
	}

	return &listOutput{Body: page}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	item, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, toHTTP(err)
	}

	return &findOutput{Body: *item}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	id, err := h.service.Create(ctx, input.Body.toInput())
	if err != nil {
		return nil, toHTTP(err)
	}
	metrics.RecordMutation("create")

	return &createOutput{
		Body: createResponse{
			Message: "Created",
			ID:      id,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	if err := h.service.Update(ctx, input.ID, input.Body.toInput()); err != nil {
		return nil, toHTTP(err)
	}
	metrics.RecordMutation("update")

	return &output{Body: response{Message: "Updated"}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*output, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, toHTTP(err)
	}
	metrics.RecordMutation("delete")

	return &output{Body: response{Message: "Deleted"}}, nil
}

// toHTTP переводит ошибки домена в ответы API
func toHTTP(err error) error {
	switch {
	case errors.Is(err, errorrecord.ErrNotFound):
		return huma.Error404NotFound("Not found")
	case errors.Is(err, errorrecord.ErrMissingFields):
		return huma.Error400BadRequest("Missing required fields")
	case errors.Is(err, errorrecord.ErrInvalidDate):
		return huma.Error400BadRequest("error_date must be one of: YYYY-MM-DD, DD-MM-YYYY, DD/MM/YYYY")
	case errors.Is(err, errorrecord.ErrInvalidCount):
		return huma.Error400BadRequest("error_count must be an integer")
	case errors.Is(err, errorrecord.ErrNegativeCount):
		return huma.Error400BadRequest("error_count must be non-negative")
	default:
		return huma.Error500InternalServerError("Internal server error")
	}
}
