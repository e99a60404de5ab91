package report

import (
	"sort"

	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/script"
)

type target struct {
	scope  string
	offset uint32
}

// CallerIndex lists, for each fragment script, the scripts that jump into
// it. It is built once before rendering and only read afterwards.
type CallerIndex map[target][]fighter.Symbol

// For returns the callers of the script at offset in scope, sorted by name.
func (c CallerIndex) For(scope string, offset uint32) []fighter.Symbol {
	return c[target{scope, offset}]
}

type source struct {
	caller fighter.Symbol
	events []fighter.Event
	scope  script.Scope
	local  string
}

// BuildCallers walks every script of mod and records its resolved gotos and
// subroutine calls.
func BuildCallers(mod *fighter.Mod) CallerIndex {
	index := make(CallerIndex)

	var sources []source
	for _, f := range mod.Fighters {
		scope := scopeFor(mod, f)
		for _, sub := range f.Subactions {
			caller := fighter.Symbol{Name: sub.Name, Link: mod.Paths.SubactionPage(f.Name, sub.Name)}
			for _, s := range []fighter.Script{sub.Main, sub.GFX, sub.SFX, sub.Other} {
				sources = append(sources, source{caller, s.Events, scope, f.Name})
			}
		}
		for _, s := range f.Scripts {
			caller := fighter.Symbol{Name: fighter.FunctionName(s.Offset), Link: mod.Paths.ScriptPage(f.Name, s.Offset)}
			sources = append(sources, source{caller, s.Events, scope, f.Name})
		}
	}
	for _, s := range mod.CommonScripts {
		caller := fighter.Symbol{Name: fighter.FunctionName(s.Offset), Link: mod.Paths.ScriptPage(fighter.CommonScope, s.Offset)}
		sources = append(sources, source{caller, s.Events, script.Scope{Local: mod.Common}, fighter.CommonScope})
	}

	for _, src := range sources {
		for _, ref := range src.scope.Refs(src.events) {
			if !ref.Resolved {
				continue
			}
			// Same lookup order as the renderer: local table first.
			scope := fighter.CommonScope
			if _, ok := src.scope.Local.Lookup(ref.Offset); ok {
				scope = src.local
			}
			index.add(target{scope, ref.Offset}, src.caller)
		}
	}

	for k, callers := range index {
		sort.Slice(callers, func(i, j int) bool {
			return callers[i].Name < callers[j].Name
		})
		index[k] = callers
	}

	return index
}

func (c CallerIndex) add(t target, caller fighter.Symbol) {
	for _, existing := range c[t] {
		if existing == caller {
			return
		}
	}
	c[t] = append(c[t], caller)
}
