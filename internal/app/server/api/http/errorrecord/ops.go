package errorrecord

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "errors-list",
		Method:      http.MethodGet,
		Path:        "/api/errors",
		Summary:     "Страница записей об ошибках",
		Tags:        []string{"errors"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "errors-find",
		Method:      http.MethodGet,
		Path:        "/api/errors/{id}",
		Summary:     "Получить запись",
		Tags:        []string{"errors"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "errors-create",
		Method:        http.MethodPost,
		Path:          "/api/errors",
		Summary:       "Создать запись",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"errors"},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "errors-update",
		Method:      http.MethodPut,
		Path:        "/api/errors/{id}",
		Summary:     "Обновить запись",
		Description: "Перезаписывает все пять полей записи.",
		Tags:        []string{"errors"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "errors-delete",
		Method:      http.MethodDelete,
		Path:        "/api/errors/{id}",
		Summary:     "Удалить запись",
		Tags:        []string{"errors"},
		Middlewares: h.middleware,
	}
}
