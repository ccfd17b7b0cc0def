package services

import "errors"

// Auth failures are distinguished so the HTTP layer can map a missing
// credential to 401 and a wrong one to 403.
var (
	ErrMissingAPIKey = errors.New("api key required")
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// Authorize validates a presented credential against the configured key set.
// An empty presented value means no credential arrived on either channel.
func Authorize(presented string, keys []string) error {
	if presented == "" {
		return ErrMissingAPIKey
	}
	for _, k := range keys {
		if k == presented {
			return nil
		}
	}
	return ErrInvalidAPIKey
}
