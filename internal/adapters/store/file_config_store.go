package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fleet-location-service/internal/domain"
	"fleet-location-service/internal/platform/obs"
)

// JSON-file-backed implementation of the ConfigStore port. The whole
// configuration lives in one human-editable document that is rewritten in
// full on every save.
type FileConfigStore struct {
	Path string
}

func NewFileConfigStore(path string) *FileConfigStore {
	return &FileConfigStore{Path: path}
}

// Load reads the configuration document. A missing or unparseable file yields
// the built-in default configuration rather than an error: a broken config
// must never take the API down.
func (s *FileConfigStore) Load(ctx context.Context) (domain.Configuration, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return domain.DefaultConfiguration(), nil
	}

	var cfg domain.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.DefaultConfiguration(), nil
	}

	cfg.Normalize()
	return cfg, nil
}

// Save atomically replaces the configuration document. The new content is
// written to a temp file in the same directory and renamed over the target,
// so a concurrent reader sees either the old or the new document, never a
// torn one. No inter-process locking: last writer wins.
func (s *FileConfigStore) Save(ctx context.Context, cfg domain.Configuration) (err error) {
	defer obs.Time(ctx, "config.store.save")(&err)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("save config: encode: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save config: create temp file in %q: %w", dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save config: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save config: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save config: replace %q: %w", s.Path, err)
	}

	return nil
}
