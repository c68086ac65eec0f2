package character

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
		log:        log.With(slog.String("component", "character_handler")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	page, err := h.service.List(ctx, input.query())
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	data := make([]map[string]any, 0, len(page.Data))
	for _, c := range page.Data {
		data = append(data, c.Fields())
	}

	return &listOutput{
		Body: listResponse{Data: data, Meta: page.Meta},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*characterOutput, error) {
	c, err := h.service.Create(ctx, character.Document(input.Body))
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &characterOutput{Body: withSuccess(c)}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*characterOutput, error) {
	c, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &characterOutput{Body: c.Fields()}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*characterOutput, error) {
	c, err := h.service.Update(ctx, input.ID, character.Document(input.Body))
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &characterOutput{Body: withSuccess(c)}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.toHTTPError(err)
	}
	out := &deleteOutput{}
	out.Body.Success = true
	return out, nil
}

func (h *Handler) toHTTPError(err error) error {
	var decodeErr *character.DecodeError
	switch {
	case errors.Is(err, character.ErrNotFound):
		return huma.Error404NotFound("Not found")
	case errors.Is(err, character.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.As(err, &decodeErr):
		h.log.Error("stored character is not decodable", slog.Int("id", decodeErr.ID), slog.String("error", decodeErr.Err.Error()))
		return huma.Error500InternalServerError("Stored character is corrupted")
	default:
		h.log.Error("character operation failed", slog.String("error", err.Error()))
		return huma.Error500InternalServerError("Internal error")
	}
}
