package config

import (
	_ "embed"
)

//go:embed defaults/framedata.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches
// defaults/framedata.yaml.
func DefaultConfig() Config {
	return Config{
		Report: ReportConfig{
			Workers:       0,
			LinkPrefix:    "",
			IncludeHidden: false,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.framedata/framedata.db",
		},
	}
}
