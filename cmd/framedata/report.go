package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/framedata/internal/diag"
	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/formats"
	"github.com/vovakirdan/framedata/internal/report"
	"github.com/vovakirdan/framedata/internal/storage"
)

var reportCmd = &cobra.Command{
	Use:   "report <model>",
	Short: "Generate every report of a mod",
	Long: `Loads a model file, generates the report of every subaction and
fragment script in parallel, prints a per-fighter summary and stores the run.

Examples:
  framedata report brawl.yaml
  framedata report brawl.yaml --workers 4 --store=false`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	mod, err := loadMod(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
	defer stop()

	g := &report.Generator{
		Options: report.Options{
			Workers:       cfg.EffectiveWorkers(),
			IncludeHidden: cfg.Report.IncludeHidden,
		},
		Sink:   diag.LogSink{Logger: logger},
		Logger: logger,
	}

	out, err := g.Generate(ctx, mod)
	if err != nil {
		return fmt.Errorf("generating reports: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, titleStyle.Render("Mod "+out.Name))

	rows := make([][]string, 0, len(out.Fighters)+1)
	for _, f := range out.Fighters {
		diagnostics := len(f.Diagnostics)
		for _, s := range f.Subactions {
			diagnostics += len(s.Diagnostics)
		}
		for _, s := range f.Scripts {
			diagnostics += len(s.Diagnostics)
		}
		rows = append(rows, []string{
			f.Name,
			strconv.Itoa(len(f.Subactions)),
			strconv.Itoa(len(f.Scripts)),
			strconv.Itoa(len(f.Navigation.Dropped)),
			strconv.Itoa(diagnostics),
		})
	}
	if len(out.CommonScripts) > 0 {
		rows = append(rows, []string{fighter.CommonScope, "-", strconv.Itoa(len(out.CommonScripts)), "-", "-"})
	}
	fmt.Fprintln(w, renderTable([]string{"Fighter", "Subactions", "Scripts", "Dropped", "Diagnostics"}, rows))

	if !cfg.Storage.Enabled {
		return nil
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(out)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Saved as run #%d", id)))
	return nil
}

// loadMod reads a model file with the configured link prefix.
func loadMod(path string) (*fighter.Mod, error) {
	mod, err := formats.Load(path, cfg.Report.LinkPrefix)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded model", "path", path, "mod", mod.Name, "fighters", len(mod.Fighters))
	return mod, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
