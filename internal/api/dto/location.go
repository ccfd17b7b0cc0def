package dto

// Wire shape of one synthesized record. Optional fields are omitted entirely
// rather than sent as null/zero, so the simple format stays coordinates-only.
type LocationRecordResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PlateNumber string  `json:"plate_number,omitempty"`
	City        string  `json:"city,omitempty"`
	Country     string  `json:"country,omitempty"`
	Accuracy    *int    `json:"accuracy,omitempty"`
	Altitude    *int    `json:"altitude,omitempty"`
	FuelLevel   *int    `json:"fuel_level,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

type SingleLocationResponse struct {
	Status string                 `json:"status"`
	Data   LocationRecordResponse `json:"data"`
}

type MultiLocationResponse struct {
	Status string                   `json:"status"`
	Count  int                      `json:"count"`
	Data   []LocationRecordResponse `json:"data"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
