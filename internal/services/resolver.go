package services

import (
	"fleet-location-service/internal/domain"
	"fleet-location-service/internal/ports"
)

// ResolveBaseLocation determines which base city a request's records are
// scattered around.
//
// A plate with a configured mapping resolves to the mapped city. A stale
// mapping (city name no longer present in the location list) degrades to a
// uniform random pick instead of erroring. Plate matching is exact and
// case-sensitive.
//
// Resolution runs once per request: every record of a multi-record response
// perturbs the same base city.
func ResolveBaseLocation(plate string, cfg domain.Configuration, rnd ports.RandomSource) (domain.Location, error) {
	if plate != "" {
		if cityName, ok := cfg.PlateMappings[plate]; ok {
			for _, loc := range cfg.Locations {
				if loc.Name == cityName {
					return loc, nil
				}
			}
			// Mapped city not found, fall through to a random pick.
		}
	}

	if len(cfg.Locations) == 0 {
		return domain.Location{}, domain.ErrNoLocations
	}

	return cfg.Locations[rnd.Intn(len(cfg.Locations))], nil
}
