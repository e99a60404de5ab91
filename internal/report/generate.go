package report

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/framedata/internal/diag"
	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/navigation"
)

// ErrNoMod is returned when Generate is called without a mod.
var ErrNoMod = errors.New("report: no mod")

// Generator produces a ModReport. Every subaction and fragment script is an
// independent unit; units share only read-only data and each writes its own
// result slot, so they run concurrently.
type Generator struct {
	Options Options

	// Sink receives every diagnostic once all units have finished.
	Sink diag.Sink

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

// Generate runs all units of mod. It stops early only when ctx is cancelled.
func (g *Generator) Generate(ctx context.Context, mod *fighter.Mod) (*ModReport, error) {
	if mod == nil {
		return nil, ErrNoMod
	}

	logger := g.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := time.Now()
	callers := BuildCallers(mod)

	out := &ModReport{
		Name:          mod.Name,
		Fighters:      make([]FighterReport, len(mod.Fighters)),
		CommonScripts: make([]ScriptReport, len(mod.CommonScripts)),
	}

	// Slots are allocated up front so workers never grow a shared slice.
	var owner *fighter.Fighter
	for i, f := range mod.Fighters {
		var c diag.Collector
		out.Fighters[i] = FighterReport{
			Name:        f.Name,
			Navigation:  navigation.Build(f, mod.Paths, "", &c, navigation.Options{IncludeHidden: g.Options.IncludeHidden}),
			Subactions:  make([]SubactionReport, len(f.Subactions)),
			Scripts:     make([]ScriptReport, len(f.Scripts)),
			Diagnostics: c.Entries(),
		}
		if f.Common && owner == nil {
			owner = f
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	if g.Options.Workers > 0 {
		eg.SetLimit(g.Options.Workers)
	}

	for fi, f := range mod.Fighters {
		f := f
		fr := &out.Fighters[fi]
		flog := logger.With("fighter", f.Name)
		for si := range f.Subactions {
			si := si
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				fr.Subactions[si] = Subaction(mod, f, si, g.Options)
				flog.Debug("subaction done", "subaction", fr.Subactions[si].Name)
				return nil
			})
		}
		for si := range f.Scripts {
			si := si
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				fr.Scripts[si] = FragmentScript(mod, f, si, callers)
				flog.Debug("script done", "script", fr.Scripts[si].Name)
				return nil
			})
		}
	}
	for si := range mod.CommonScripts {
		si := si
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out.CommonScripts[si] = CommonScript(mod, owner, si, callers)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	diagnostics := out.Diagnostics()
	if g.Sink != nil {
		for _, e := range diagnostics {
			g.Sink.Report(e)
		}
	}

	logger.Info("report generated",
		"mod", mod.Name,
		"fighters", len(out.Fighters),
		"common_scripts", len(out.CommonScripts),
		"diagnostics", len(diagnostics),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return out, nil
}
