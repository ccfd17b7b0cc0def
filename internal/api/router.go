package api

import (
	"net/http"

	"fleet-location-service/internal/api/handlers"
	"fleet-location-service/internal/ports"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// Everything the HTTP surface needs, injected by the composition root.
type RouterDeps struct {
	Store  ports.ConfigStore
	Rand   ports.RandomSource
	Logger *zap.Logger
	// Enables the API key gate on /api/* and the fuel level field in detailed
	// records. The form endpoints are never guarded.
	RequireAPIKey bool
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	router := httprouter.New()

	locHandler := &handlers.LocationHandler{
		Store:            deps.Store,
		Rand:             deps.Rand,
		IncludeFuelLevel: deps.RequireAPIKey,
		Logger:           deps.Logger,
	}
	formHandler := &handlers.ConfigFormHandler{
		Store:        deps.Store,
		Logger:       deps.Logger,
		AuthRequired: deps.RequireAPIKey,
	}

	guard := func(h http.HandlerFunc) http.HandlerFunc { return h }
	if deps.RequireAPIKey {
		auth := &keyAuth{store: deps.Store, logger: deps.Logger}
		guard = auth.require
	}

	router.HandlerFunc(http.MethodGet, "/health", handlers.Health)
	router.HandlerFunc(http.MethodGet, "/api/location", guard(locHandler.Single))
	router.HandlerFunc(http.MethodGet, "/api/locations", guard(locHandler.Multiple))
	router.HandlerFunc(http.MethodGet, "/", formHandler.Show)
	router.HandlerFunc(http.MethodPost, "/update-config", formHandler.Update)

	return loggingMiddleware(deps.Logger, router)
}
