// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FairForge/stemcell/internal/runtimes"
)

// Config is the daemon configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Manifest ManifestConfig `yaml:"manifest"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

// ManifestConfig locates the runtime manifest document and carries the image
// override options applied during resolution.
type ManifestConfig struct {
	Path                     string `yaml:"path"`
	DefaultImagePrefix       string `yaml:"default_image_prefix"`
	DefaultImageTag          string `yaml:"default_image_tag"`
	BypassPullForLocalImages bool   `yaml:"bypass_pull_for_local_images"`
	LocalImagePrefix         string `yaml:"local_image_prefix"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     8070,
			LogLevel: "info",
		},
		Manifest: ManifestConfig{
			Path: "/etc/stemcell/runtimes.json",
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ResolverConfig maps the override options onto the resolver's config.
func (m ManifestConfig) ResolverConfig() runtimes.Config {
	return runtimes.Config{
		DefaultImagePrefix:       m.DefaultImagePrefix,
		DefaultImageTag:          m.DefaultImageTag,
		BypassPullForLocalImages: m.BypassPullForLocalImages,
		LocalImagePrefix:         m.LocalImagePrefix,
	}
}
