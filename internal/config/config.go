// Package config loads the runtime configuration from environment variables
// (optionally via a .env file) and validates it before the server starts.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds everything the server needs from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port string `koanf:"port"`
	// DatabaseURI is the MongoDB connection string.
	DatabaseURI string `koanf:"database_uri" validate:"required"`
	// DatabaseName selects the database inside the cluster.
	DatabaseName string `koanf:"database_name"`
	// FirebaseCredential is the base64-encoded service account JSON used to
	// verify ID tokens.
	FirebaseCredential string `koanf:"firebase_credential" validate:"required"`
	// AllowedOrigin is the cross-origin source permitted by CORS.
	AllowedOrigin string `koanf:"allowed_origin"`
}

// Load reads env vars (DATABASE_URI, PORT, ...) into a validated Config,
// filling in defaults for the optional values.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "tradeTalent"
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
