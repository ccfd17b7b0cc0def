package handlers

import (
	"encoding/json"
	"net/http"

	"fleet-location-service/internal/api/dto"
	"fleet-location-service/internal/domain"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

// WriteError emits the API error envelope ({status, message}). Exported for
// the auth middleware in the api package.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Status: "error", Message: msg})
}

func toRecordResponse(rec domain.LocationRecord) dto.LocationRecordResponse {
	return dto.LocationRecordResponse{
		Latitude:    rec.Latitude,
		Longitude:   rec.Longitude,
		PlateNumber: rec.PlateNumber,
		City:        rec.City,
		Country:     rec.Country,
		Accuracy:    rec.Accuracy,
		Altitude:    rec.Altitude,
		FuelLevel:   rec.FuelLevel,
		Timestamp:   rec.Timestamp,
	}
}
