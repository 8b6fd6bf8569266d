package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// storeError classifies a persistence error. Domain sentinels and context
// cancellation pass through; anything else is reported as a transient store
// failure.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%w: %s: %w", model.ErrTransientStore, op, err)
	}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrValidation, fmt.Sprintf(format, args...))
}
