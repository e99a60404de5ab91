package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative workers", func(c *Config) { c.Report.Workers = -1 }, "report.workers"},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"empty level", func(c *Config) { c.Log.Level = "" }, "log.level"},
		{"missing storage path", func(c *Config) { c.Storage.Path = " " }, "storage.path"},
		{"storage disabled without path", func(c *Config) {
			c.Storage.Enabled = false
			c.Storage.Path = ""
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestEffectiveWorkers(t *testing.T) {
	cfg := DefaultConfig()
	assert.Positive(t, cfg.EffectiveWorkers())

	cfg.Report.Workers = 3
	assert.Equal(t, 3, cfg.EffectiveWorkers())
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  workers: 4\nlog:\n  level: debug\n"), 0o644))

	cfg, used, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, 4, cfg.Report.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, DefaultConfig().Storage.Path, cfg.Storage.Path)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("report: [1, 2"), 0o644))
	_, _, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("report:\n  workers: -2\n"), 0o644))
	_, _, err = Load(invalid)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	// Nothing on disk: embedded defaults
	cfg, used, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), cfg)

	// Local configs directory
	local := filepath.Join("configs", FileName)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(local, []byte("report:\n  link_prefix: /local\n"), 0o644))

	cfg, used, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, local, used)
	assert.Equal(t, "/local", cfg.Report.LinkPrefix)

	// User directory wins over the local one
	userDir := filepath.Join(home, ".framedata")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("report:\n  link_prefix: /user\n"), 0o644))

	cfg, _, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "/user", cfg.Report.LinkPrefix)
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	assert.Equal(t, "warn", cfg.LogLevel().String())

	cfg.Log.Level = "nope"
	assert.Equal(t, "info", cfg.LogLevel().String())
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
