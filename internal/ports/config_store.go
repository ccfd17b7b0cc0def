package ports

import (
	"context"
	"fleet-location-service/internal/domain"
)

// Port: a boundary for loading and persisting the service configuration.
type ConfigStore interface {
	// Load returns the current configuration. Implementations substitute the
	// built-in default on read or parse failure rather than failing the
	// caller, and back-fill absent optional containers.
	Load(ctx context.Context) (domain.Configuration, error)

	// Save replaces the full persisted configuration. Concurrent readers must
	// never observe a partially written document; last writer wins.
	Save(ctx context.Context, cfg domain.Configuration) error
}
