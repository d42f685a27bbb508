// internal/config/env.go
package config

import (
	"os"
	"strconv"
)

// LoadFromEnv overlays STEMCELL_* environment variables onto the config.
func LoadFromEnv(cfg *Config) {
	if port := os.Getenv("STEMCELL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	if logLevel := os.Getenv("STEMCELL_LOG_LEVEL"); logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}

	if path := os.Getenv("STEMCELL_MANIFEST_PATH"); path != "" {
		cfg.Manifest.Path = path
	}

	if prefix := os.Getenv("STEMCELL_DEFAULT_IMAGE_PREFIX"); prefix != "" {
		cfg.Manifest.DefaultImagePrefix = prefix
	}

	if tag := os.Getenv("STEMCELL_DEFAULT_IMAGE_TAG"); tag != "" {
		cfg.Manifest.DefaultImageTag = tag
	}

	if bypass := os.Getenv("STEMCELL_BYPASS_PULL_FOR_LOCAL_IMAGES"); bypass != "" {
		if b, err := strconv.ParseBool(bypass); err == nil {
			cfg.Manifest.BypassPullForLocalImages = b
		}
	}

	if prefix := os.Getenv("STEMCELL_LOCAL_IMAGE_PREFIX"); prefix != "" {
		cfg.Manifest.LocalImagePrefix = prefix
	}
}

// GetEnvOrDefault returns an environment variable or the fallback.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
