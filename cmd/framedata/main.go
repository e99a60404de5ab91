// framedata turns fighter model files into frame data reports.
//
// Usage:
//
//	framedata report <model>                        - Generate every report of a mod
//	framedata subaction <model> <fighter> <name>    - Show one subaction's frame data
//	framedata scripts <model> <fighter>             - Show a fighter's fragment scripts
//	framedata classify <name>...                    - Show the navigation bucket of names
//	framedata formats                               - List supported model formats
//	framedata history                               - List stored report runs
//
// Global flags:
//
//	--config <path>        - Config file (default: ~/.framedata/config.yaml)
//	--log-level <level>    - debug, info, warn or error
//	--workers <n>          - Concurrent report units (0 = GOMAXPROCS)
//	--link-prefix <path>   - Prefix for every generated link
//	--db <path>            - Report database path
//
// Every setting can also be given as a FRAMEDATA_* environment variable,
// e.g. FRAMEDATA_REPORT_WORKERS=4.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import formats to register the model parsers
	_ "github.com/vovakirdan/framedata/internal/formats"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "framedata",
	Short: "Frame data reports for platform fighter mods",
	Long: `framedata reads a fighter model file and produces frame data reports:
per-subaction attributes, hitbox tables, rendered scripts and navigation.

Available commands:
  report     - Generate every report of a mod
  subaction  - Show one subaction's frame data
  scripts    - Show a fighter's fragment scripts
  classify   - Show which navigation bucket a subaction name lands in
  formats    - List supported model formats
  history    - List stored report runs

Examples:
  framedata report brawl.yaml
  framedata subaction brawl.yaml Mario AttackAirN
  framedata scripts brawl.yaml Mario
  framedata classify AttackS4S CliffCatch
  framedata history`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.framedata/config.yaml)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.Int("workers", 0, "Concurrent report units (0 = GOMAXPROCS)")
	flags.String("link-prefix", "", "Prefix for every generated link")
	flags.Bool("include-hidden", false, "Include the Hidden navigation bucket")
	flags.String("db", "~/.framedata/framedata.db", "Path to the report database")
	flags.Bool("store", true, "Persist generated reports")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(subactionCmd)
	rootCmd.AddCommand(scriptsCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(historyCmd)
}
