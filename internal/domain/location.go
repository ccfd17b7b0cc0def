package domain

// Represents a base city a vehicle's mock positions are scattered around.
// Name is the join key referenced by plate mappings, so it should be unique
// within a configuration; lookups take the first match.
type Location struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
}
