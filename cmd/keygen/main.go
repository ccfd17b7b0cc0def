package main

import (
	"context"
	"log"
	"strings"

	"fleet-location-service/internal/adapters/store"
	"fleet-location-service/internal/config"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Operational tool: mint a fresh API key and append it to the configuration
// document. The web form can also generate keys, but this works headless.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	cfgStore := store.NewFileConfigStore(settings.ConfigPath)
	ctx := context.Background()

	cfg, err := cfgStore.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// Same shape the form's client script produces: "key_" + 32 chars.
	key := "key_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	cfg.APIKeys = append(cfg.APIKeys, key)

	if err := cfgStore.Save(ctx, cfg); err != nil {
		log.Fatalf("saving config failed: %v", err)
	}

	log.Printf("added API key: %s", key)
	log.Printf("config now holds %d key(s) at %s", len(cfg.APIKeys), settings.ConfigPath)
}
