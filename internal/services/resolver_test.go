package services

import (
	"errors"
	"math/rand"
	"testing"

	"fleet-location-service/internal/domain"
)

func testConfig() domain.Configuration {
	return domain.Configuration{
		Locations: []domain.Location{
			{Name: "NYC", Lat: 40.7128, Lng: -74.0060, Country: "USA"},
			{Name: "London", Lat: 51.5074, Lng: -0.1278, Country: "UK"},
			{Name: "Tokyo", Lat: 35.6762, Lng: 139.6503, Country: "Japan"},
		},
		ResponseFormat:         domain.FormatDetailed,
		IncludeTimestamp:       true,
		MaxLocationsPerRequest: 10,
		APIKeys:                []string{},
		PlateMappings:          map[string]string{},
	}
}

func TestResolveMappedPlateAlwaysReturnsMappedCity(t *testing.T) {
	cfg := testConfig()
	cfg.PlateMappings["ABC123"] = "London"

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		loc, err := ResolveBaseLocation("ABC123", cfg, rnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loc.Name != "London" {
			t.Fatalf("iteration %d: got %q, want London", i, loc.Name)
		}
	}
}

func TestResolveStaleMappingFallsBackToRandom(t *testing.T) {
	cfg := domain.Configuration{
		Locations: []domain.Location{
			{Name: "NYC", Lat: 40.7128, Lng: -74.0060, Country: "USA"},
		},
		MaxLocationsPerRequest: 10,
		PlateMappings:          map[string]string{"ABC123": "NYC-missing"},
	}

	rnd := rand.New(rand.NewSource(1))
	loc, err := ResolveBaseLocation("ABC123", cfg, rnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Name != "NYC" {
		t.Fatalf("got %q, want fallback to NYC", loc.Name)
	}
}

func TestResolveUnmappedPlateDrawsUniformly(t *testing.T) {
	cfg := testConfig()
	rnd := rand.New(rand.NewSource(42))

	const trials = 3000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		loc, err := ResolveBaseLocation("UNMAPPED", cfg, rnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[loc.Name]++
	}

	want := trials / len(cfg.Locations)
	tolerance := want / 5 // 20%
	for _, loc := range cfg.Locations {
		got := counts[loc.Name]
		if got < want-tolerance || got > want+tolerance {
			t.Errorf("city %s drawn %d times, want %d±%d", loc.Name, got, want, tolerance)
		}
	}
}

func TestResolveEmptyLocationsErrors(t *testing.T) {
	cfg := domain.Configuration{Locations: []domain.Location{}}

	rnd := rand.New(rand.NewSource(1))
	_, err := ResolveBaseLocation("", cfg, rnd)
	if !errors.Is(err, domain.ErrNoLocations) {
		t.Fatalf("got err=%v, want ErrNoLocations", err)
	}
}
