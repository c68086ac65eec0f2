package character

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("character not found")
	ErrInvalidInput = errors.New("invalid character")

	errNotObject = errors.New("document is not a JSON object")
)

// DecodeError - сохраненный документ не удалось разобрать.
type DecodeError struct {
	ID  int
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode character %d: %v", e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
