package media

import (
	"context"
	"errors"

	"characterdex/internal/domain/character"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    character.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service character.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With(slog.String("component", "media_handler")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	m, err := h.service.Media(ctx)
	if err != nil {
		var decodeErr *character.DecodeError
		if errors.As(err, &decodeErr) {
			h.log.Error("stored character is not decodable", slog.Int("id", decodeErr.ID))
			return nil, huma.Error500InternalServerError("Stored character is corrupted")
		}
		h.log.Error("media listing failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal error")
	}

	out := &listOutput{}
	switch character.MediaType(input.Type) {
	case character.MediaFilms:
		out.Body.Films = &m.Films
	case character.MediaTVShows:
		out.Body.TVShows = &m.TVShows
	case character.MediaAll:
		out.Body.Films = &m.Films
		out.Body.TVShows = &m.TVShows
	}
	return out, nil
}
