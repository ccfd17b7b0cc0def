package domain

import (
	"errors"
	"fmt"
)

// Returned when resolution is attempted against a configuration with no
// locations. The caller cannot synthesize anything from this state.
var ErrNoLocations = errors.New("no locations configured")

// Signals a malformed config edit submission. The edit is aborted as a whole;
// partial edits are never persisted.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}
