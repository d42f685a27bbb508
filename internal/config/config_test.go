// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reads yaml over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
server:
  port: 9000
manifest:
  path: /opt/runtimes.json
  default_image_prefix: fairforge
  bypass_pull_for_local_images: true
  local_image_prefix: localpre
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, "/opt/runtimes.json", cfg.Manifest.Path)
		assert.Equal(t, "fairforge", cfg.Manifest.DefaultImagePrefix)
		assert.True(t, cfg.Manifest.BypassPullForLocalImages)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("overlays environment variables", func(t *testing.T) {
		t.Setenv("STEMCELL_PORT", "9100")
		t.Setenv("STEMCELL_DEFAULT_IMAGE_TAG", "stable")
		t.Setenv("STEMCELL_BYPASS_PULL_FOR_LOCAL_IMAGES", "true")

		cfg := Default()
		LoadFromEnv(cfg)
		assert.Equal(t, 9100, cfg.Server.Port)
		assert.Equal(t, "stable", cfg.Manifest.DefaultImageTag)
		assert.True(t, cfg.Manifest.BypassPullForLocalImages)
	})

	t.Run("ignores malformed values", func(t *testing.T) {
		t.Setenv("STEMCELL_PORT", "not-a-port")
		cfg := Default()
		LoadFromEnv(cfg)
		assert.Equal(t, 8070, cfg.Server.Port)
	})
}

func TestManifestConfig_ResolverConfig(t *testing.T) {
	t.Run("maps the override options", func(t *testing.T) {
		m := ManifestConfig{
			DefaultImagePrefix:       "pre",
			DefaultImageTag:          "t",
			BypassPullForLocalImages: true,
			LocalImagePrefix:         "localpre",
		}
		rc := m.ResolverConfig()
		assert.Equal(t, "pre", rc.DefaultImagePrefix)
		assert.Equal(t, "t", rc.DefaultImageTag)
		assert.True(t, rc.BypassPullForLocalImages)
		assert.Equal(t, "localpre", rc.LocalImagePrefix)
	})
}
