package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"characterdex/internal/app/server/api"
	"characterdex/internal/config"
	"characterdex/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg     *config.Config
	storage *sqlite.Storage
	server  *http.Server
	log     *slog.Logger
}

// New открывает хранилище и собирает HTTP сервер.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	storage, err := sqlite.New(ctx, cfg.DB.Path, log)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	return &App{
		cfg:     cfg,
		storage: storage,
		server: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           api.New(cfg, storage, log),
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log.With(slog.String("component", "server")),
	}, nil
}

// Run обслуживает запросы, пока не отменят ctx, затем корректно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started", slog.String("address", a.cfg.Server.RunAddress), slog.String("env", a.cfg.Env))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		a.storage.Close()
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	if cerr := a.storage.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("close storage: %w", cerr))
	}
	return err
}
