package services

import (
	"strconv"
	"strings"

	"fleet-location-service/internal/domain"
)

// One submitted location row, still string-typed as it arrived on the wire.
type LocationRow struct {
	Name    string
	Lat     string
	Lng     string
	Country string
}

// One submitted plate-to-city pair.
type MappingRow struct {
	Plate string
	City  string
}

// A batch of form-shaped edits. Key and mapping lists are full replacements,
// not deltas; scalar settings always carry a value.
type EditBatch struct {
	APIKeys          []string
	Mappings         []MappingRow
	ResponseFormat   string
	IncludeTimestamp bool
	MaxLocations     string
	Locations        []LocationRow
}

// ApplyEdits merges an edit batch into the current configuration and returns
// the result. The whole edit fails on the first malformed numeric field;
// nothing is partially applied.
//
// Incomplete rows (a blank half of a mapping, a location row with any blank
// field) are dropped silently. An edit that leaves zero valid location rows
// keeps the current location list instead of wiping it: the last known-good
// list is never destroyed by an empty submission.
func ApplyEdits(current domain.Configuration, batch EditBatch) (domain.Configuration, error) {
	next := current

	keys := make([]string, 0, len(batch.APIKeys))
	for _, k := range batch.APIKeys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	next.APIKeys = keys

	mappings := make(map[string]string, len(batch.Mappings))
	for _, m := range batch.Mappings {
		if m.Plate != "" && m.City != "" {
			mappings[m.Plate] = m.City
		}
	}
	next.PlateMappings = mappings

	if batch.ResponseFormat == domain.FormatSimple {
		next.ResponseFormat = domain.FormatSimple
	} else {
		next.ResponseFormat = domain.FormatDetailed
	}
	next.IncludeTimestamp = batch.IncludeTimestamp

	maxRaw := strings.TrimSpace(batch.MaxLocations)
	if maxRaw == "" {
		next.MaxLocationsPerRequest = 10
	} else {
		maxLocations, err := strconv.Atoi(maxRaw)
		if err != nil || maxLocations < 1 {
			return domain.Configuration{}, &domain.ValidationError{Field: "max_locations_per_request", Value: batch.MaxLocations}
		}
		next.MaxLocationsPerRequest = maxLocations
	}

	locations := make([]domain.Location, 0, len(batch.Locations))
	for _, row := range batch.Locations {
		if row.Name == "" || row.Lat == "" || row.Lng == "" || row.Country == "" {
			continue
		}
		lat, err := strconv.ParseFloat(row.Lat, 64)
		if err != nil {
			return domain.Configuration{}, &domain.ValidationError{Field: "latitude", Value: row.Lat}
		}
		lng, err := strconv.ParseFloat(row.Lng, 64)
		if err != nil {
			return domain.Configuration{}, &domain.ValidationError{Field: "longitude", Value: row.Lng}
		}
		locations = append(locations, domain.Location{Name: row.Name, Lat: lat, Lng: lng, Country: row.Country})
	}
	if len(locations) > 0 {
		next.Locations = locations
	}

	return next, nil
}
