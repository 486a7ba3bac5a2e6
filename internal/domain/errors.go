package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrCorruptState = errors.New("corrupt persisted state")

	ErrCatalogEntryNotFound = fmt.Errorf("catalog entry %w", ErrNotFound)
	ErrRoutineNotFound      = fmt.Errorf("routine %w", ErrNotFound)
)

// ValidationError reports a rejected input field. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
