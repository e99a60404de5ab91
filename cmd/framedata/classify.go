package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/framedata/internal/navigation"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <name>...",
	Short: "Show which navigation bucket a subaction name lands in",
	Long: `Runs subaction names through the navigation rules and prints the
matching tag and bucket. Attack names no attack rule recognises are
marked as dropped; they appear in no bucket.

Examples:
  framedata classify AttackS4S CliffCatch Wait1`,
	Args: cobra.MinimumNArgs(1),
	Run:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) {
	rows := make([][]string, 0, len(args))
	for _, name := range args {
		tag, ok := navigation.Classify(name)
		if !ok {
			rows = append(rows, []string{name, "-", mutedStyle.Render("dropped")})
			continue
		}
		rows = append(rows, []string{name, string(tag), navigation.BucketOf(tag)})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Tag", "Bucket"}, rows))
}
