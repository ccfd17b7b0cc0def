package services

import (
	"math"
	"time"

	"fleet-location-service/internal/domain"
	"fleet-location-service/internal/ports"
)

// Coordinate jitter applied around the base city, in degrees. Roughly a 10 km
// radius at the equator; not geodesically corrected.
const maxCoordOffset = 0.1

const timestampLayout = "2006-01-02T15:04:05.999999Z"

// Describes one synthesis call.
type SynthesizeRequest struct {
	Base  domain.Location
	Plate string
	Count int
	// Fuel level is part of the detailed field set only when the service runs
	// with API key auth; the open variant never reports it.
	IncludeFuelLevel bool
}

// Synthesize produces randomized location records around the base city.
//
// The effective record count is min(req.Count, cfg.MaxLocationsPerRequest),
// floored at zero; an empty result is valid, never an error. Coordinates are
// rounded to 6 decimal places. The detailed format adds city, country,
// accuracy and altitude (plus fuel level when enabled); the simple format is
// coordinates only. Timestamps are captured per record in UTC.
func Synthesize(req SynthesizeRequest, cfg domain.Configuration, rnd ports.RandomSource) []domain.LocationRecord {
	count := req.Count
	if count > cfg.MaxLocationsPerRequest {
		count = cfg.MaxLocationsPerRequest
	}
	if count < 0 {
		count = 0
	}

	records := make([]domain.LocationRecord, 0, count)
	for i := 0; i < count; i++ {
		latOffset := uniformOffset(rnd)
		lngOffset := uniformOffset(rnd)

		rec := domain.LocationRecord{
			Latitude:  round6(req.Base.Lat + latOffset),
			Longitude: round6(req.Base.Lng + lngOffset),
		}

		if req.Plate != "" {
			rec.PlateNumber = req.Plate
		}

		if cfg.ResponseFormat == domain.FormatDetailed {
			rec.City = req.Base.Name
			rec.Country = req.Base.Country
			rec.Accuracy = intPtr(randomInt(rnd, 5, 50))
			rec.Altitude = intPtr(randomInt(rnd, 0, 500))
			if req.IncludeFuelLevel {
				rec.FuelLevel = intPtr(randomInt(rnd, 0, 100))
			}
		}

		if cfg.IncludeTimestamp {
			rec.Timestamp = time.Now().UTC().Format(timestampLayout)
		}

		records = append(records, rec)
	}

	return records
}

// Draw uniformly from [-maxCoordOffset, maxCoordOffset].
func uniformOffset(rnd ports.RandomSource) float64 {
	return -maxCoordOffset + rnd.Float64()*2*maxCoordOffset
}

// Uniform integer in [low, high], both inclusive.
func randomInt(rnd ports.RandomSource, low, high int) int {
	return low + rnd.Intn(high-low+1)
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func intPtr(v int) *int { return &v }
