package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/framedata/internal/diag"
	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/report"
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts <model> <fighter>",
	Short: "Show a fighter's fragment scripts",
	Long: `Prints every fragment script of a fighter with the scripts that call
it. Use "common" as the fighter to list the mod-wide common scripts.

Examples:
  framedata scripts brawl.yaml Mario
  framedata scripts brawl.yaml common`,
	Args: cobra.ExactArgs(2),
	RunE: runScripts,
}

func runScripts(cmd *cobra.Command, args []string) error {
	mod, err := loadMod(args[0])
	if err != nil {
		return err
	}

	callers := report.BuildCallers(mod)

	var scripts []report.ScriptReport
	if args[1] == fighter.CommonScope {
		var owner *fighter.Fighter
		for _, f := range mod.Fighters {
			if f.Common {
				owner = f
				break
			}
		}
		for i := range mod.CommonScripts {
			scripts = append(scripts, report.CommonScript(mod, owner, i, callers))
		}
	} else {
		f, ok := mod.Fighter(args[1])
		if !ok {
			return fmt.Errorf("unknown fighter %q in mod %s", args[1], mod.Name)
		}
		for i := range f.Scripts {
			scripts = append(scripts, report.FragmentScript(mod, f, i, callers))
		}
	}

	w := cmd.OutOrStdout()
	if len(scripts) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No fragment scripts."))
		return nil
	}

	sink := diag.LogSink{Logger: logger}
	for _, s := range scripts {
		for _, e := range s.Diagnostics {
			sink.Report(e)
		}

		fmt.Fprintln(w, titleStyle.Render(s.Name))
		if len(s.Callers) > 0 {
			names := make([]string, len(s.Callers))
			for i, c := range s.Callers {
				names[i] = c.Name
			}
			fmt.Fprintln(w, mutedStyle.Render("Called by: "+strings.Join(names, ", ")))
		}
		fmt.Fprintln(w, s.Markup)
		fmt.Fprintln(w)
	}
	return nil
}
