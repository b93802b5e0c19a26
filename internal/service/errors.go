package service

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable wraps every repository failure surfaced by the services.
// Callers log the cause and answer with a generic failure; nothing is retried.
var ErrStorageUnavailable = errors.New("storage unavailable")

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
