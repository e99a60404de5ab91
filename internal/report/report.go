// Package report assembles the per-subaction, per-script and per-fighter
// report fragments handed to page renderers.
package report

import (
	"fmt"

	"github.com/vovakirdan/framedata/internal/diag"
	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/hitbox"
	"github.com/vovakirdan/framedata/internal/navigation"
	"github.com/vovakirdan/framedata/internal/script"
)

// SubactionReport is everything a subaction page shows.
type SubactionReport struct {
	Fighter      string
	Name         string
	Index        int
	Attributes   []Attribute
	HitboxTables []hitbox.Table
	ScriptMain   string
	ScriptGFX    string
	ScriptSFX    string
	ScriptOther  string
	Navigation   navigation.Links
	Diagnostics  []diag.Entry
}

// ScriptReport is a rendered fragment script.
type ScriptReport struct {
	Scope   string
	Offset  uint32
	Name    string
	Markup  string
	Refs    []script.Ref
	Callers []fighter.Symbol

	Diagnostics []diag.Entry
}

// FighterReport holds all reports of one fighter.
type FighterReport struct {
	Name       string
	Navigation navigation.Links
	Subactions []SubactionReport
	Scripts    []ScriptReport

	// Diagnostics are fighter level findings, such as dropped subactions.
	Diagnostics []diag.Entry
}

// ModReport holds every report of a mod.
type ModReport struct {
	Name          string
	Fighters      []FighterReport
	CommonScripts []ScriptReport
}

// Diagnostics returns every diagnostic of the run in a stable order.
func (r *ModReport) Diagnostics() []diag.Entry {
	var out []diag.Entry
	for _, f := range r.Fighters {
		out = append(out, f.Diagnostics...)
		for _, s := range f.Subactions {
			out = append(out, s.Diagnostics...)
		}
		for _, s := range f.Scripts {
			out = append(out, s.Diagnostics...)
		}
	}
	for _, s := range r.CommonScripts {
		out = append(out, s.Diagnostics...)
	}
	return out
}

// Options controls report generation.
type Options struct {
	// Workers bounds the number of concurrent units; 0 means unbounded.
	Workers       int
	IncludeHidden bool
}

// scopeFor returns the symbol scope of f's scripts. Only the common fighter
// also sees the mod-wide common table.
func scopeFor(mod *fighter.Mod, f *fighter.Fighter) script.Scope {
	if f.Common {
		return script.Scope{Local: f.Symbols, Common: mod.Common}
	}
	return script.Scope{Local: f.Symbols}
}

// Subaction builds the report of one subaction.
func Subaction(mod *fighter.Mod, f *fighter.Fighter, index int, opts Options) SubactionReport {
	sub := &f.Subactions[index]
	var c diag.Collector

	r := &script.Renderer{
		Fighter: f,
		Paths:   mod.Paths,
		Scope:   scopeFor(mod, f),
		Sink:    &c,
		Subject: sub.Name,
	}

	return SubactionReport{
		Fighter:      f.Name,
		Name:         sub.Name,
		Index:        index,
		Attributes:   Attributes(f, index),
		HitboxTables: hitbox.Build(f.Actions, sub.Frames),
		ScriptMain:   r.Render(sub.Main.Events),
		ScriptGFX:    r.Render(sub.GFX.Events),
		ScriptSFX:    r.Render(sub.SFX.Events),
		ScriptOther:  r.Render(sub.Other.Events),
		// Dropped attacks are reported once per fighter, not per page
		Navigation:  navigation.Build(f, mod.Paths, sub.Name, diag.Discard, navigation.Options{IncludeHidden: opts.IncludeHidden}),
		Diagnostics: c.Entries(),
	}
}

// FragmentScript builds the report of one of f's fragment scripts.
func FragmentScript(mod *fighter.Mod, f *fighter.Fighter, index int, callers CallerIndex) ScriptReport {
	return renderScript(f, f.Name, f.Scripts[index], mod.Paths, scopeFor(mod, f), callers)
}

// CommonScript builds the report of one mod-wide common script. owner is the
// common fighter, or nil when the mod has none.
func CommonScript(mod *fighter.Mod, owner *fighter.Fighter, index int, callers CallerIndex) ScriptReport {
	scope := script.Scope{Local: mod.Common}
	return renderScript(owner, fighter.CommonScope, mod.CommonScripts[index], mod.Paths, scope, callers)
}

func renderScript(f *fighter.Fighter, scopeName string, s fighter.Script, paths fighter.Paths, scope script.Scope, callers CallerIndex) ScriptReport {
	var c diag.Collector
	r := &script.Renderer{
		Fighter: f,
		Paths:   paths,
		Scope:   scope,
		Sink:    &c,
		Subject: fmt.Sprintf("0x%x", s.Offset),
	}

	return ScriptReport{
		Scope:       scopeName,
		Offset:      s.Offset,
		Name:        fighter.FunctionName(s.Offset),
		Markup:      r.Render(s.Events),
		Refs:        scope.Refs(s.Events),
		Callers:     callers.For(scopeName, s.Offset),
		Diagnostics: c.Entries(),
	}
}
