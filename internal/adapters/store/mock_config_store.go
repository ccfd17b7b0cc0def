package store

import (
	"context"

	"fleet-location-service/internal/domain"
)

// In-memory implementation of the ConfigStore port for hermetic tests.
type MockConfigStore struct {
	Cfg     domain.Configuration
	SaveErr error
	Saves   int
}

func NewMockConfigStore(cfg domain.Configuration) *MockConfigStore {
	cfg.Normalize()
	return &MockConfigStore{Cfg: cfg}
}

func (s *MockConfigStore) Load(ctx context.Context) (domain.Configuration, error) {
	return s.Cfg, nil
}

func (s *MockConfigStore) Save(ctx context.Context, cfg domain.Configuration) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Cfg = cfg
	s.Saves++
	return nil
}
