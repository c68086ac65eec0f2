package auth

import (
	"context"
	"errors"
	"net/http"

	authmw "characterdex/internal/app/server/api/http/middleware/auth"
	"characterdex/internal/domain/session"
	"characterdex/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service      user.Servicer
	session      session.Servicer
	secureCookie bool
	log          *slog.Logger
	middleware   huma.Middlewares
}

// NewHandler создает обработчики auth. secureCookie выставляет флаг Secure у cookie
// сессии и должен быть включен везде, кроме локального окружения.
func NewHandler(service user.Servicer, session session.Servicer, secureCookie bool, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:      service,
		session:      session,
		secureCookie: secureCookie,
		log:          log.With(slog.String("component", "auth_handler")),
		middleware:   middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Username, input.Body.Password)
	switch {
	case errors.Is(err, user.ErrAlreadyExists):
		return nil, huma.Error409Conflict("Username already exists")
	case errors.Is(err, user.ErrInvalidInput):
		return nil, huma.Error400BadRequest(err.Error())
	case err != nil:
		h.log.Error("register failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &registerOutput{
		Body: response{Success: true, UserID: userID},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if errors.Is(err, user.ErrInvalidAuth) {
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}
	if err != nil {
		h.log.Error("authenticate failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal error")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &loginOutput{
		SetCookie: h.cookie(token, int(h.session.TTL().Seconds())),
		Body:      response{Success: true},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	if input.Token != "" {
		if err := h.session.Revoke(ctx, input.Token); err != nil {
			h.log.Warn("revoke session failed", slog.String("error", err.Error()))
		}
	}

	return &logoutOutput{
		SetCookie: h.cookie("", -1),
		Body:      response{Success: true},
	}, nil
}

func (h *Handler) cookie(value string, maxAge int) http.Cookie {
	return http.Cookie{
		Name:     authmw.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}
