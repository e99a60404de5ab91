// Package script pretty-prints script event trees as nested ordered lists,
// resolving offsets and indexes to names and links along the way.
//
// Rendering never fails. A reference that cannot be resolved is reported to
// the diagnostics sink and the raw event is dumped in its place.
package script

import (
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/vovakirdan/framedata/internal/diag"
	"github.com/vovakirdan/framedata/internal/fighter"
)

// Scope is the pair of symbol tables a script is resolved against. Local is
// searched first. Common is only set when rendering the common fighter.
type Scope struct {
	Local  fighter.SymbolTable
	Common fighter.SymbolTable
}

// Lookup resolves offset in Local, then Common.
func (s Scope) Lookup(offset uint32) (fighter.Symbol, bool) {
	if sym, ok := s.Local.Lookup(offset); ok {
		return sym, true
	}
	return s.Common.Lookup(offset)
}

// Renderer renders the scripts of one fighter.
type Renderer struct {
	// Fighter resolves action and subaction indexes. May be nil for scripts
	// that are not owned by a fighter.
	Fighter *fighter.Fighter
	Paths   fighter.Paths
	Scope   Scope
	Sink    diag.Sink

	// Subject names what is being rendered in diagnostics.
	Subject string
}

// Render returns events as an <ol> list. Nop events produce no item.
func (r *Renderer) Render(events []fighter.Event) string {
	var b strings.Builder
	r.render(&b, events)
	return b.String()
}

func (r *Renderer) render(b *strings.Builder, events []fighter.Event) {
	b.WriteString("<ol>")
	for _, ev := range events {
		r.event(b, ev)
	}
	b.WriteString("</ol>")
}

func (r *Renderer) event(b *strings.Builder, ev fighter.Event) {
	switch ev := ev.(type) {
	case fighter.Nop:
		return

	case fighter.ChangeAction:
		action, ok := r.action(ev.ActionIndex)
		if !ok {
			r.miss(b, ev, "action index %d not found", ev.ActionIndex)
			return
		}
		fmt.Fprintf(b, "<li>ChangeAction: %s if %s</li>", esc(action.Name), esc(Expr(ev.Test)))

	case fighter.ChangeActionStatus:
		action, ok := r.action(ev.ActionIndex)
		if !ok {
			r.miss(b, ev, "action index %d not found", ev.ActionIndex)
			return
		}
		test := ev.Requirement
		if ev.Flip {
			test = fighter.Not{Expr: test}
		}
		fmt.Fprintf(b, "<li>ChangeActionStatus(0x%x): %s if %s</li>", ev.StatusID, esc(action.Name), esc(Expr(test)))

	case fighter.ChangeSubaction:
		r.subaction(b, ev, "ChangeSubaction", ev.Index)

	case fighter.ChangeSubactionRestartFrame:
		r.subaction(b, ev, "ChangeSubactionRestartFrame", ev.Index)

	case fighter.IfStatement:
		fmt.Fprintf(b, "<li>If %s:", esc(Expr(ev.Test)))
		r.render(b, ev.Then)
		b.WriteString("</li>")
		if ev.Else != nil {
			b.WriteString("<li>Else:")
			r.render(b, ev.Else)
			b.WriteString("</li>")
		}

	case fighter.Goto:
		r.offset(b, ev, "Goto", ev.Offset)

	case fighter.Subroutine:
		r.offset(b, ev, "Subroutine", ev.Offset)

	case fighter.Unknown:
		fmt.Fprintf(b, "<li class=\"unknown\">Unknown event: %s</li>", esc(ev.Raw))

	default:
		fmt.Fprintf(b, "<li>%s</li>", dump(ev))
	}
}

func (r *Renderer) action(index int) (fighter.Action, bool) {
	if r.Fighter == nil || index < 0 || index >= len(r.Fighter.Actions) {
		return fighter.Action{}, false
	}
	return r.Fighter.Actions[index], true
}

func (r *Renderer) subaction(b *strings.Builder, ev fighter.Event, label string, index int) {
	if r.Fighter == nil || index < 0 || index >= len(r.Fighter.Subactions) {
		r.miss(b, ev, "subaction index %d not found", index)
		return
	}
	name := r.Fighter.Subactions[index].Name
	link := r.Paths.SubactionPage(r.Fighter.Name, name)
	fmt.Fprintf(b, "<li>%s: %s</li>", label, anchor(link, name))
}

func (r *Renderer) offset(b *strings.Builder, ev fighter.Event, label string, offset uint32) {
	sym, ok := r.Scope.Lookup(offset)
	if !ok {
		r.miss(b, ev, "%s target 0x%x not found", strings.ToLower(label), offset)
		return
	}
	fmt.Fprintf(b, "<li>%s: %s</li>", label, anchor(sym.Link, sym.Name))
}

// miss reports a lookup miss and dumps the raw event.
func (r *Renderer) miss(b *strings.Builder, ev fighter.Event, format string, args ...any) {
	sink := r.Sink
	if sink == nil {
		sink = diag.Discard
	}
	name := ""
	if r.Fighter != nil {
		name = r.Fighter.Name
	}
	sink.Report(diag.Entry{
		Kind:    diag.LookupMiss,
		Fighter: name,
		Subject: r.Subject,
		Message: fmt.Sprintf(format, args...),
	})
	fmt.Fprintf(b, "<li>%s</li>", dump(ev))
}

func anchor(link, name string) string {
	return fmt.Sprintf("<a href=\"%s\">%s</a>", esc(link), esc(name))
}

// dump is the structural fallback used for unhandled or unresolvable events.
func dump(ev fighter.Event) string {
	if ev == nil {
		return "nil"
	}
	return esc(fmt.Sprintf("%s %+v", reflect.TypeOf(ev).Name(), ev))
}

func esc(s string) string {
	return html.EscapeString(s)
}
