package handlers

import (
	"net/http"
	"strconv"

	"fleet-location-service/internal/api/dto"
	"fleet-location-service/internal/ports"
	"fleet-location-service/internal/services"

	"go.uber.org/zap"
)

// Count used by /api/locations when the query carries none (or one that does
// not parse as an integer).
const defaultMultiCount = 5

// LocationHandler serves the mock location endpoints. The configuration is
// loaded fresh from the store on every request; there is no cached copy.
type LocationHandler struct {
	Store ports.ConfigStore
	Rand  ports.RandomSource
	// Set when the service runs with API key auth; the detailed format then
	// reports a fuel level as well.
	IncludeFuelLevel bool
	Logger           *zap.Logger
}

// Single handles GET /api/location: one record around the resolved base city.
func (h *LocationHandler) Single(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Store.Load(r.Context())
	if err != nil {
		h.Logger.Error("load config failed", zap.Error(err))
		WriteError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	plate := r.URL.Query().Get("plate_number")
	if plate == "" {
		WriteError(w, r, http.StatusBadRequest, "plate_number parameter is required.")
		return
	}

	base, err := services.ResolveBaseLocation(plate, cfg, h.Rand)
	if err != nil {
		h.Logger.Error("resolve base location failed", zap.String("plate", plate), zap.Error(err))
		WriteError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	records := services.Synthesize(services.SynthesizeRequest{
		Base:             base,
		Plate:            plate,
		Count:            1,
		IncludeFuelLevel: h.IncludeFuelLevel,
	}, cfg, h.Rand)
	if len(records) == 0 {
		WriteError(w, r, http.StatusInternalServerError, "no location records generated")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SingleLocationResponse{
		Status: "success",
		Data:   toRecordResponse(records[0]),
	})
}

// Multiple handles GET /api/locations: up to count records around one
// resolved base city, capped by the configured per-request maximum.
func (h *LocationHandler) Multiple(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Store.Load(r.Context())
	if err != nil {
		h.Logger.Error("load config failed", zap.Error(err))
		WriteError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	plate := r.URL.Query().Get("plate_number")
	if plate == "" {
		WriteError(w, r, http.StatusBadRequest, "plate_number parameter is required.")
		return
	}

	count := defaultMultiCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n
		}
	}

	base, err := services.ResolveBaseLocation(plate, cfg, h.Rand)
	if err != nil {
		h.Logger.Error("resolve base location failed", zap.String("plate", plate), zap.Error(err))
		WriteError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	records := services.Synthesize(services.SynthesizeRequest{
		Base:             base,
		Plate:            plate,
		Count:            count,
		IncludeFuelLevel: h.IncludeFuelLevel,
	}, cfg, h.Rand)

	res := dto.MultiLocationResponse{
		Status: "success",
		Count:  len(records),
		Data:   make([]dto.LocationRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Data = append(res.Data, toRecordResponse(rec))
	}

	writeJSON(w, r, http.StatusOK, res)
}
