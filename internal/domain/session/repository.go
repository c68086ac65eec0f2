package session

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidSession = errors.New("invalid session")

type Repository interface {
	Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error
	// Validate возвращает владельца сессии, если она существует и не истекла к моменту now.
	Validate(ctx context.Context, tokenHash string, now time.Time) (int, error)
	Delete(ctx context.Context, tokenHash string) error
}
