package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the vocino service.
// Environment variables are parsed from the VOCINO_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// Store driver: auto resolves to mongo when a URI is set, memory otherwise.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"auto"`

	// Mongo configuration
	MongoURI      string `envconfig:"MONGO_URI" default:""`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"vocino"`

	// HTTP configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Directory voice-note WAV files are materialized into.
	AudioDir string `envconfig:"AUDIO_DIR" default:"."`
}

// ResolveDefaults derives StoreDriver when set to "auto" or empty and
// validates the result.
func (c *Config) ResolveDefaults() error {
	if c.StoreDriver == "" || c.StoreDriver == "auto" {
		if c.MongoURI != "" {
			c.StoreDriver = "mongo"
		} else {
			c.StoreDriver = "memory"
		}
	}

	switch c.StoreDriver {
	case "mongo":
		if c.MongoURI == "" {
			return fmt.Errorf("STORE_DRIVER=mongo requires MONGO_URI")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: VOCINO_MONGO_URI, VOCINO_HTTP_PORT.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("VOCINO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
