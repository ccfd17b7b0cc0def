package api

import (
	"errors"
	"net/http"

	"fleet-location-service/internal/api/handlers"
	"fleet-location-service/internal/ports"
	"fleet-location-service/internal/services"

	"go.uber.org/zap"
)

// User-facing messages, kept stable for API clients.
const (
	msgKeyRequired = "API key required. Provide via X-API-Key header or api_key parameter."
	msgKeyInvalid  = "Invalid API key."
)

// keyAuth guards API endpoints with the configured key set. The key set is
// read from the store per request, so key edits take effect immediately.
type keyAuth struct {
	store  ports.ConfigStore
	logger *zap.Logger
}

// require wraps a handler with the access policy. The X-API-Key header wins
// over the api_key query parameter when both are present.
func (a *keyAuth) require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := a.store.Load(r.Context())
		if err != nil {
			a.logger.Error("load config failed", zap.Error(err))
			handlers.WriteError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		presented := r.Header.Get("X-API-Key")
		if presented == "" {
			presented = r.URL.Query().Get("api_key")
		}

		switch err := services.Authorize(presented, cfg.APIKeys); {
		case errors.Is(err, services.ErrMissingAPIKey):
			handlers.WriteError(w, r, http.StatusUnauthorized, msgKeyRequired)
		case errors.Is(err, services.ErrInvalidAPIKey):
			handlers.WriteError(w, r, http.StatusForbidden, msgKeyInvalid)
		default:
			next(w, r)
		}
	}
}
