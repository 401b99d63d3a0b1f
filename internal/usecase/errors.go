package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// draftError maps engine errors onto the usecase sentinels, keeping both in the chain.
func draftError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, draft.ErrValidation):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, draft.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, draft.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}
