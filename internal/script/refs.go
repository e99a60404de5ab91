package script

import "github.com/vovakirdan/framedata/internal/fighter"

// RefKind is the event that produced a reference.
type RefKind string

const (
	RefGoto       RefKind = "goto"
	RefSubroutine RefKind = "subroutine"
)

// Ref is an outgoing offset reference of a script.
type Ref struct {
	Kind     RefKind
	Offset   uint32
	Resolved bool
	Symbol   fighter.Symbol
}

// Refs collects every goto and subroutine reference in events, including
// those nested in if statements, in script order. Misses are returned with
// Resolved unset and are not reported; Render reports them.
func (s Scope) Refs(events []fighter.Event) []Ref {
	var out []Ref
	s.collect(&out, events)
	return out
}

func (s Scope) collect(out *[]Ref, events []fighter.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case fighter.Goto:
			*out = append(*out, s.ref(RefGoto, ev.Offset))
		case fighter.Subroutine:
			*out = append(*out, s.ref(RefSubroutine, ev.Offset))
		case fighter.IfStatement:
			s.collect(out, ev.Then)
			s.collect(out, ev.Else)
		}
	}
}

func (s Scope) ref(kind RefKind, offset uint32) Ref {
	sym, ok := s.Lookup(offset)
	return Ref{Kind: kind, Offset: offset, Resolved: ok, Symbol: sym}
}
