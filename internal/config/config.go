// Package config provides YAML-based configuration loading for the
// framedata tool.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// Config is the complete tool configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// ReportConfig controls report generation.
type ReportConfig struct {
	Workers       int    `yaml:"workers"`     // 0 = GOMAXPROCS
	LinkPrefix    string `yaml:"link_prefix"` // prepended to every generated link
	IncludeHidden bool   `yaml:"include_hidden"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}

// StorageConfig controls persistence of generated reports.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks value ranges. It does not touch the filesystem.
func (c Config) Validate() error {
	if c.Report.Workers < 0 {
		return &ValidationError{Field: "report.workers", Message: fmt.Sprintf("must be >= 0, got %d", c.Report.Workers)}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	if c.Storage.Enabled && strings.TrimSpace(c.Storage.Path) == "" {
		return &ValidationError{Field: "storage.path", Message: "required when storage is enabled"}
	}
	return nil
}

// EffectiveWorkers resolves the 0 default to GOMAXPROCS.
func (c Config) EffectiveWorkers() int {
	if c.Report.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Report.Workers
}

// LogLevel returns the parsed log level, falling back to Info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
