package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"characterdex/internal/infrastructure/migration"

	"github.com/avast/retry-go/v4"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

const (
	pingAttempts = 5
	pingDelay    = 200 * time.Millisecond
)

type Storage struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// New открывает файл базы (создавая каталог при необходимости), дожидается,
// пока файл станет доступен, и применяет миграции.
func New(ctx context.Context, path string, log *slog.Logger) (*Storage, error) {
	log = log.With(slog.String("component", "sqlite"))

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(15 * time.Minute)

	err = retry.Do(
		func() error { return db.PingContext(ctx) },
		retry.Context(ctx),
		retry.Attempts(pingAttempts),
		retry.Delay(pingDelay),
		retry.RetryIf(isBusy),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("database is busy, retrying", slog.Uint64("attempt", uint64(n+1)), slog.String("error", err.Error()))
		}),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := migration.NewMigration(path, nil, log).Up(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	log.Info("database ready", slog.String("path", path))
	return &Storage{db: db, path: path, log: log}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
