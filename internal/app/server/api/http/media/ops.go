package media

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-list",
		Method:      http.MethodGet,
		Path:        "/api/media",
		Summary:     "Уникальные названия фильмов и сериалов",
		Tags:        []string{"media"},
		Security:    []map[string][]string{{"cookieAuth": {}}},
		Middlewares: h.middleware,
	}
}
