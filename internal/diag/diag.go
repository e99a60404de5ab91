// Package diag carries recoverable problems found while generating reports.
// Generators report into a Sink instead of logging, so callers can count,
// assert on, or forward the diagnostics as they see fit.
package diag

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// LookupMiss is a numeric reference with no entry in the relevant table.
	LookupMiss Kind = iota
	// UnclassifiedAttack is an attack-named subaction that matched no attack rule.
	UnclassifiedAttack
)

func (k Kind) String() string {
	switch k {
	case LookupMiss:
		return "lookup-miss"
	case UnclassifiedAttack:
		return "unclassified-attack"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is a single diagnostic.
type Entry struct {
	Kind    Kind
	Fighter string
	// Subject is what was being processed: a subaction name or script offset.
	Subject string
	Message string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s/%s: %s", e.Kind, e.Fighter, e.Subject, e.Message)
}

// Sink receives diagnostics.
type Sink interface {
	Report(Entry)
}

// Discard drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Entry) {}

// Collector keeps every entry in order. It is not safe for concurrent use;
// give each unit of work its own collector.
type Collector struct {
	entries []Entry
}

// Report implements Sink.
func (c *Collector) Report(e Entry) {
	c.entries = append(c.entries, e)
}

// Entries returns the collected entries.
func (c *Collector) Entries() []Entry {
	return c.entries
}

// Count returns how many entries of kind k were collected.
func (c *Collector) Count(k Kind) int {
	n := 0
	for _, e := range c.entries {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// LogSink forwards entries to a logger.
type LogSink struct {
	Logger *log.Logger
}

// Report implements Sink.
func (s LogSink) Report(e Entry) {
	kv := []any{"kind", e.Kind.String(), "fighter", e.Fighter, "subject", e.Subject}
	switch e.Kind {
	case UnclassifiedAttack:
		s.Logger.Error(e.Message, kv...)
	default:
		s.Logger.Warn(e.Message, kv...)
	}
}

// Tee reports every entry to each sink in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Report(e Entry) {
	for _, s := range t {
		s.Report(e)
	}
}
