package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"fleet-location-service/internal/domain"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	s := NewFileConfigStore(filepath.Join(t.TempDir(), "config.json"))

	cfg, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.DefaultConfiguration()
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("got %+v, want default configuration", cfg)
	}
}

func TestLoadCorruptFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileConfigStore(path)
	cfg, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Locations) != 5 {
		t.Fatalf("got %d locations, want the 5 default cities", len(cfg.Locations))
	}
}

func TestLoadBackfillsOptionalContainers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{
		"locations": [{"name": "NYC", "lat": 40.7128, "lng": -74.006, "country": "USA"}],
		"response_format": "simple",
		"include_timestamp": false,
		"max_locations_per_request": 3
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileConfigStore(path)
	cfg, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKeys == nil {
		t.Error("api_keys not back-filled")
	}
	if cfg.PlateMappings == nil {
		t.Error("plate_mappings not back-filled")
	}
	if cfg.ResponseFormat != domain.FormatSimple || cfg.MaxLocationsPerRequest != 3 {
		t.Errorf("stored fields not preserved: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s := NewFileConfigStore(path)
	ctx := context.Background()

	cfg := domain.Configuration{
		Locations: []domain.Location{
			{Name: "Berlin", Lat: 52.52, Lng: 13.405, Country: "Germany"},
		},
		ResponseFormat:         domain.FormatSimple,
		IncludeTimestamp:       true,
		MaxLocationsPerRequest: 7,
		APIKeys:                []string{"key_abc"},
		PlateMappings:          map[string]string{"ABC123": "Berlin"},
	}

	if err := s.Save(ctx, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, cfg)
	}

	// The temp file from the atomic replace must not linger.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the config document, found %d entries", len(entries))
	}
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	s := NewFileConfigStore(filepath.Join(t.TempDir(), "missing", "config.json"))
	if err := s.Save(context.Background(), domain.DefaultConfiguration()); err == nil {
		t.Fatal("expected error saving into a missing directory")
	}
}
