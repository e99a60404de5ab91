package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/framedata/internal/diag"
	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/navigation"
	"github.com/vovakirdan/framedata/internal/report"
	"github.com/vovakirdan/framedata/internal/storage"
)

var (
	flagShowScripts bool
	flagFromStore   bool
)

var subactionCmd = &cobra.Command{
	Use:   "subaction <model> <fighter> <subaction>",
	Short: "Show one subaction's frame data",
	Long: `Prints the attributes, hitbox tables and navigation bucket of a single
subaction. With --from-store the last stored report is shown instead, and
<model> is ignored.

Examples:
  framedata subaction brawl.yaml Mario AttackAirN
  framedata subaction brawl.yaml Mario AttackAirN --scripts`,
	Args: cobra.ExactArgs(3),
	RunE: runSubaction,
}

func init() {
	subactionCmd.Flags().BoolVar(&flagShowScripts, "scripts", false, "Also print the rendered scripts")
	subactionCmd.Flags().BoolVar(&flagFromStore, "from-store", false, "Show the last stored report")
}

func runSubaction(cmd *cobra.Command, args []string) error {
	fighterName, subName := args[1], args[2]

	var r *report.SubactionReport
	if flagFromStore {
		stored, err := storedSubaction(fighterName, subName)
		if err != nil {
			return err
		}
		r = stored
	} else {
		mod, err := loadMod(args[0])
		if err != nil {
			return err
		}
		f, index, err := findSubaction(mod, fighterName, subName)
		if err != nil {
			return err
		}
		built := report.Subaction(mod, f, index, report.Options{IncludeHidden: cfg.Report.IncludeHidden})
		r = &built
	}

	sink := diag.LogSink{Logger: logger}
	for _, e := range r.Diagnostics {
		sink.Report(e)
	}

	printSubaction(cmd.OutOrStdout(), r)
	return nil
}

func storedSubaction(fighterName, subName string) (*report.SubactionReport, error) {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	r, err := store.LatestSubaction(fighterName, subName)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("no stored report for %s/%s; run 'framedata report' first", fighterName, subName)
	}
	return r, nil
}

func findSubaction(mod *fighter.Mod, fighterName, subName string) (*fighter.Fighter, int, error) {
	f, ok := mod.Fighter(fighterName)
	if !ok {
		return nil, 0, fmt.Errorf("unknown fighter %q in mod %s", fighterName, mod.Name)
	}
	for i, sub := range f.Subactions {
		if sub.Name == subName {
			return f, i, nil
		}
	}
	return nil, 0, fmt.Errorf("fighter %s has no subaction %q", fighterName, subName)
}

func printSubaction(w io.Writer, r *report.SubactionReport) {
	fmt.Fprintln(w, titleStyle.Render(r.Fighter+" / "+r.Name))

	rows := make([][]string, len(r.Attributes))
	for i, a := range r.Attributes {
		rows[i] = []string{a.Label, a.Value}
	}
	fmt.Fprintln(w, renderTable([]string{"Attribute", "Value"}, rows))

	if len(r.HitboxTables) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No hitboxes."))
	}
	for _, t := range r.HitboxTables {
		cells := make([][]string, len(t.Rows))
		for i, row := range t.Rows {
			cells[i] = row.Cells
		}
		fmt.Fprintln(w, t.Frames)
		fmt.Fprintln(w, renderTable(t.Header, cells))
	}

	if bucket := currentBucket(r.Navigation); bucket != "" {
		fmt.Fprintln(w, mutedStyle.Render("Navigation: "+bucket))
	}

	if !flagShowScripts {
		return
	}
	for _, s := range []struct{ name, markup string }{
		{"Main", r.ScriptMain},
		{"GFX", r.ScriptGFX},
		{"SFX", r.ScriptSFX},
		{"Other", r.ScriptOther},
	} {
		fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(s.name+" script"), s.markup)
	}
}

// currentBucket names the bucket holding the page's own subaction.
func currentBucket(links navigation.Links) string {
	for _, b := range links.Buckets {
		for _, l := range b.Links {
			if l.Current {
				names := make([]string, len(b.Links))
				for i, link := range b.Links {
					names[i] = link.Name
				}
				return b.Name + " (" + strings.Join(names, ", ") + ")"
			}
		}
	}
	return ""
}
