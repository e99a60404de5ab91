package fighter

import (
	"fmt"
	"net/url"
	"strings"
)

// Symbol is the resolved target of a script offset.
type Symbol struct {
	Name string
	Link string
}

// SymbolTable maps script offsets to their display name and page.
// A table is never modified after NewMod builds it.
type SymbolTable map[uint32]Symbol

// Lookup returns the symbol at offset. A nil table finds nothing.
func (t SymbolTable) Lookup(offset uint32) (Symbol, bool) {
	s, ok := t[offset]
	return s, ok
}

// CommonScope is the path segment used for the mod-wide common scripts.
const CommonScope = "common"

// Paths builds the page addresses that links point to.
type Paths struct {
	Prefix string
	Mod    string
}

// SubactionPage returns the page of a fighter's subaction.
func (p Paths) SubactionPage(fighter, subaction string) string {
	return p.join(fighter, "subactions", subaction+".html")
}

// ScriptPage returns the page of a fragment script.
func (p Paths) ScriptPage(scope string, offset uint32) string {
	return p.join(scope, "scripts", fmt.Sprintf("0x%x.html", offset))
}

func (p Paths) join(parts ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(p.Prefix, "/"))
	b.WriteString("/")
	b.WriteString(url.PathEscape(p.Mod))
	for _, part := range parts {
		b.WriteString("/")
		b.WriteString(url.PathEscape(part))
	}
	return b.String()
}

// FunctionName is the display name of a fragment script.
func FunctionName(offset uint32) string {
	return fmt.Sprintf("Function 0x%x", offset)
}

// buildSymbols creates the table for one scope. Subaction scripts point at
// the subaction page; when several subactions share a script the first one
// wins. Fragment scripts must have unique offsets.
func buildSymbols(paths Paths, scope string, subactions []Subaction, fragments []Script) (SymbolTable, error) {
	table := make(SymbolTable)

	fragmentOwner := make(map[uint32]int, len(fragments))
	for i, s := range fragments {
		if first, exists := fragmentOwner[s.Offset]; exists {
			return nil, &IntegrityError{
				Scope:  scope,
				Offset: s.Offset,
				First:  first,
				Second: i,
			}
		}
		fragmentOwner[s.Offset] = i
		table[s.Offset] = Symbol{
			Name: FunctionName(s.Offset),
			Link: paths.ScriptPage(scope, s.Offset),
		}
	}

	for _, sub := range subactions {
		for _, s := range []Script{sub.Main, sub.GFX, sub.SFX, sub.Other} {
			if s.Offset == 0 {
				continue
			}
			if _, exists := table[s.Offset]; exists {
				continue
			}
			table[s.Offset] = Symbol{
				Name: sub.Name,
				Link: paths.SubactionPage(scope, sub.Name),
			}
		}
	}

	return table, nil
}
