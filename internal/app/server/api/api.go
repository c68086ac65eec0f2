// GET    /api/health               # Проверка живости (публичный)
// POST   /api/auth/register        # Регистрация (публичный)
// POST   /api/auth/login           # Логин, выдает cookie auth_token (публичный)
// POST   /api/auth/logout          # Логаут (публичный)
// GET    /api/characters           # Список с поиском/фильтрами/пагинацией (auth)
// POST   /api/characters           # Создать персонажа (auth)
// GET    /api/characters/{id}      # Получить персонажа (auth)
// PUT    /api/characters/{id}      # Заменить документ (auth)
// DELETE /api/characters/{id}      # Удалить персонажа (auth)
// GET    /api/media                # Уникальные фильмы и сериалы (auth)

package api

import (
	authAPI "characterdex/internal/app/server/api/http/auth"
	characterAPI "characterdex/internal/app/server/api/http/character"
	healthAPI "characterdex/internal/app/server/api/http/health"
	mediaAPI "characterdex/internal/app/server/api/http/media"
	"characterdex/internal/app/server/api/http/middleware"
	"characterdex/internal/app/server/api/http/middleware/auth"
	"characterdex/internal/app/server/api/http/middleware/logger"
	"characterdex/internal/config"
	"characterdex/internal/domain/character"
	"characterdex/internal/domain/session"
	"characterdex/internal/domain/user"
	"characterdex/internal/infrastructure/storage/sqlite"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health    *healthAPI.Handler
	Auth      *authAPI.Handler
	Character *characterAPI.Handler
	Media     *mediaAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(cfg *config.Config, storage *sqlite.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	apiConfig := huma.DefaultConfig("Characterdex API", "1.0.0")
	apiConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {Type: "apiKey", In: "cookie", Name: auth.CookieName},
	}

	API := humachi.New(mux, apiConfig)

	h := handlers(cfg, storage, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Character.SetupRoutes(API)
	h.Media.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, storage *sqlite.Storage, log *slog.Logger) *Handlers {
	sessionRepo := sqlite.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, cfg.Auth.SessionTTL, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(storage.DB(), log, middlewares.GetAllAndClear())

	userRepo := sqlite.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	authHandler := authAPI.NewHandler(userService, sessionService, !cfg.IsLocal(), log, middlewares.GetAllAndClear())

	characterRepo := sqlite.NewCharacterRepository(storage, log)
	characterService := character.NewService(characterRepo, log)
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	characterHandler := characterAPI.NewHandler(characterService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	mediaHandler := mediaAPI.NewHandler(characterService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:    healthHandler,
		Auth:      authHandler,
		Character: characterHandler,
		Media:     mediaHandler,
	}
}
