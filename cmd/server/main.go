package main

import (
	"log"
	"net"
	"net/http"
	"time"

	"fleet-location-service/internal/adapters/random"
	"fleet-location-service/internal/adapters/store"
	"fleet-location-service/internal/api"
	"fleet-location-service/internal/config"
	"fleet-location-service/internal/platform/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the file-backed config store and the system random source behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl := logger.New(settings.LogLevel, settings.LogPath)
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	cfgStore := store.NewFileConfigStore(settings.ConfigPath)

	router := api.NewRouter(api.RouterDeps{
		Store:         cfgStore,
		Rand:          random.SystemSource{},
		Logger:        zl,
		RequireAPIKey: settings.RequireAPIKey(),
	})

	addr := net.JoinHostPort(settings.BindIP, settings.Port)
	zl.Info("starting location api server",
		zap.String("addr", addr),
		zap.String("auth_mode", settings.AuthMode),
		zap.String("config_path", settings.ConfigPath),
	)
	zl.Info("endpoints",
		zap.String("config_page", "http://"+addr+"/"),
		zap.String("single_location", "http://"+addr+"/api/location?plate_number=ABC123"),
		zap.String("multiple_locations", "http://"+addr+"/api/locations?plate_number=ABC123&count=5"),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	zl.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}
