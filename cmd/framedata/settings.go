package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/framedata/internal/config"
)

var (
	cfgFile string

	// cfg and logger are set by loadSettings before any command runs.
	cfg    config.Config
	logger *log.Logger
)

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"log.level":             "log-level",
	"report.workers":        "workers",
	"report.link_prefix":    "link-prefix",
	"report.include_hidden": "include-hidden",
	"storage.path":          "db",
	"storage.enabled":       "store",
}

// loadSettings layers the config file, FRAMEDATA_* environment variables
// and command line flags, in increasing precedence.
func loadSettings(cmd *cobra.Command, args []string) error {
	fileCfg, used, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("FRAMEDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", fileCfg.Log.Level)
	v.SetDefault("log.timestamps", fileCfg.Log.Timestamps)
	v.SetDefault("report.workers", fileCfg.Report.Workers)
	v.SetDefault("report.link_prefix", fileCfg.Report.LinkPrefix)
	v.SetDefault("report.include_hidden", fileCfg.Report.IncludeHidden)
	v.SetDefault("storage.path", fileCfg.Storage.Path)
	v.SetDefault("storage.enabled", fileCfg.Storage.Enabled)

	flags := cmd.Root().PersistentFlags()
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}

	cfg = config.Config{
		Report: config.ReportConfig{
			Workers:       v.GetInt("report.workers"),
			LinkPrefix:    v.GetString("report.link_prefix"),
			IncludeHidden: v.GetBool("report.include_hidden"),
		},
		Log: config.LogConfig{
			Level:      v.GetString("log.level"),
			Timestamps: v.GetBool("log.timestamps"),
		},
		Storage: config.StorageConfig{
			Enabled: v.GetBool("storage.enabled"),
			Path:    v.GetString("storage.path"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "framedata",
	})
	logger.SetLevel(cfg.LogLevel())

	if used != "" {
		logger.Debug("loaded config", "path", used)
	}
	return nil
}
