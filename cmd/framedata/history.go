package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/framedata/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored report runs",
	Long: `Display the most recent report runs saved by 'framedata report'.

Examples:
  framedata history
  framedata history --limit 5
  framedata history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every stored run")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(w, "Cleared report history.")
		return nil
	}

	runs, err := store.Runs(flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'framedata report <model>' to store the first one.")
		return nil
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			"#" + strconv.FormatInt(r.ID, 10),
			r.Mod,
			strconv.Itoa(r.Fighters),
			strconv.Itoa(r.Subactions),
			strconv.Itoa(r.Scripts),
			strconv.Itoa(r.Diagnostics),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	fmt.Fprintln(w, renderTable([]string{"Run", "Mod", "Fighters", "Subactions", "Scripts", "Diagnostics", "Date"}, rows))
	return nil
}
