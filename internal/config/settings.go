package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Auth modes the unified core can run in. The open mode is the degenerate
// always-allow variant: no key check and no fuel level in detailed records.
const (
	AuthModeAPIKey = "apikey"
	AuthModeOpen   = "open"
)

// Process-level settings, read from the environment. The mutable service
// configuration (cities, keys, mappings) lives in the JSON document at
// ConfigPath, not here.
type Settings struct {
	BindIP     string `env:"BIND_IP" env-default:"0.0.0.0"`
	Port       string `env:"PORT" env-default:"5000"`
	AuthMode   string `env:"AUTH_MODE" env-default:"apikey"`
	ConfigPath string `env:"CONFIG_PATH" env-default:"config.json"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
	LogPath    string `env:"LOG_PATH" env-default:"logs/server.log"`
}

func Load() (*Settings, error) {
	s := &Settings{}
	if err := cleanenv.ReadEnv(s); err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if s.AuthMode != AuthModeAPIKey && s.AuthMode != AuthModeOpen {
		return nil, fmt.Errorf("read settings: unknown AUTH_MODE %q", s.AuthMode)
	}
	return s, nil
}

// RequireAPIKey reports whether API endpoints are guarded by key auth.
func (s *Settings) RequireAPIKey() bool {
	return s.AuthMode == AuthModeAPIKey
}
