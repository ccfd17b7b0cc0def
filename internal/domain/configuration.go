package domain

// Response formats accepted in Configuration.ResponseFormat.
const (
	FormatSimple   = "simple"
	FormatDetailed = "detailed"
)

// Represents the full persisted service configuration.
// It is stored as a single human-editable JSON document, re-read at the start
// of every request and rewritten in full by config edits (no partial updates).
type Configuration struct {
	Locations              []Location        `json:"locations"`
	ResponseFormat         string            `json:"response_format"`
	IncludeTimestamp       bool              `json:"include_timestamp"`
	MaxLocationsPerRequest int               `json:"max_locations_per_request"`
	APIKeys                []string          `json:"api_keys"`
	PlateMappings          map[string]string `json:"plate_mappings"`
}

// DefaultConfiguration returns the built-in fallback used when the backing
// store is missing or unreadable.
func DefaultConfiguration() Configuration {
	return Configuration{
		Locations: []Location{
			{Name: "New York", Lat: 40.7128, Lng: -74.0060, Country: "USA"},
			{Name: "London", Lat: 51.5074, Lng: -0.1278, Country: "UK"},
			{Name: "Tokyo", Lat: 35.6762, Lng: 139.6503, Country: "Japan"},
			{Name: "Sydney", Lat: -33.8688, Lng: 151.2093, Country: "Australia"},
			{Name: "Paris", Lat: 48.8566, Lng: 2.3522, Country: "France"},
		},
		ResponseFormat:         FormatDetailed,
		IncludeTimestamp:       true,
		MaxLocationsPerRequest: 10,
		APIKeys:                []string{},
		PlateMappings:          map[string]string{},
	}
}

// Normalize back-fills optional containers so downstream code never sees nil
// maps or slices, regardless of what the stored document contained.
func (c *Configuration) Normalize() {
	if c.Locations == nil {
		c.Locations = []Location{}
	}
	if c.APIKeys == nil {
		c.APIKeys = []string{}
	}
	if c.PlateMappings == nil {
		c.PlateMappings = map[string]string{}
	}
}
