package character

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var security = []map[string][]string{{"cookieAuth": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "characters-list",
		Method:      http.MethodGet,
		Path:        "/api/characters",
		Summary:     "Список персонажей с поиском, фильтрами и пагинацией",
		Tags:        []string{"characters"},
		Security:    security,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "characters-create",
		Method:        http.MethodPost,
		Path:          "/api/characters",
		Summary:       "Создать персонажа",
		Tags:          []string{"characters"},
		DefaultStatus: http.StatusCreated,
		Security:      security,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "characters-find",
		Method:      http.MethodGet,
		Path:        "/api/characters/{id}",
		Summary:     "Получить персонажа",
		Tags:        []string{"characters"},
		Security:    security,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "characters-update",
		Method:      http.MethodPut,
		Path:        "/api/characters/{id}",
		Summary:     "Заменить документ персонажа",
		Tags:        []string{"characters"},
		Security:    security,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "characters-delete",
		Method:      http.MethodDelete,
		Path:        "/api/characters/{id}",
		Summary:     "Удалить персонажа",
		Tags:        []string{"characters"},
		Security:    security,
		Middlewares: h.middleware,
	}
}
