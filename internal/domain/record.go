package domain

// Represents one synthesized vehicle position. Records are ephemeral: created
// fresh per request and never persisted. Optional fields are pointers so the
// response encoding can distinguish "absent" from a legitimate zero (an
// altitude of 0 m is valid data).
type LocationRecord struct {
	Latitude    float64
	Longitude   float64
	PlateNumber string
	City        string
	Country     string
	Accuracy    *int
	Altitude    *int
	FuelLevel   *int
	Timestamp   string
}
