package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/prediction-pool/repositories"
)

// handleRepositoryError translates repository sentinels into service errors
// the HTTP layer knows how to map.
func handleRepositoryError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrUserUsernameConflict):
		return ErrUserUsernameConflict
	case errors.Is(err, repositories.ErrUserEmailConflict):
		return ErrUserEmailConflict
	case errors.Is(err, repositories.ErrMatchIDConflict):
		return ErrMatchIDConflict
	case errors.Is(err, repositories.ErrPredictionUserInvalid):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrExtraBetUserInvalid):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrPredictionClosed):
		return ErrPredictionLocked
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, fmt.Sprintf(format, args...))
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
