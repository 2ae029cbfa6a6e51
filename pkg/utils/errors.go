package utils

import (
	"fmt"
)

// Wraps a sentinel error with formatted detail text, preserving the
// sentinel for errors.Is checks
func MakeError(err error, detailsBody string, args ...any) error {
	return fmt.Errorf("%w: "+detailsBody, append([]any{err}, args...)...)
}
