// Package hitbox builds the hitbox tables of a subaction.
//
// Frames are grouped into segments of identical hitbox state and every
// segment with at least one enabled hitbox becomes a table. Optional columns
// are only included when a row in that table actually uses them.
package hitbox

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/frames"
)

// RowKind distinguishes hit rows from grab rows.
type RowKind int

const (
	HitRow RowKind = iota
	GrabRow
)

// Row is one hitbox. Grab rows use the GrabHeader layout.
type Row struct {
	Kind  RowKind
	Cells []string
}

// Table is the hitbox state shared by a run of frames.
type Table struct {
	Frames string
	Range  frames.Range
	Header []string
	Rows   []Row
}

// Segment is a maximal run of frames with identical hitbox state.
type Segment struct {
	Range frames.Range
	// Entries are the enabled entries of the run, in slot order.
	Entries []fighter.CollisionEntry
}

// Segments partitions the frames into runs of identical hitbox state.
//
// Two frames are identical when their entry lists are equal position by
// position, so reordering slots starts a new segment even if no value
// changed. Together the returned segments cover every frame exactly once.
func Segments(frameList []fighter.Frame) []Segment {
	var out []Segment
	start := 0

	for i := 1; i <= len(frameList); i++ {
		if i < len(frameList) && sameEntries(frameList[i].Hitboxes, frameList[i-1].Hitboxes) {
			continue
		}
		out = append(out, Segment{
			Range:   frames.Range{Start: start + 1, End: i},
			Entries: enabledEntries(frameList[i-1].Hitboxes),
		})
		start = i
	}

	return out
}

// Build returns one table per segment that has enabled hitboxes.
func Build(actions []fighter.Action, frameList []fighter.Frame) []Table {
	var tables []Table
	for _, seg := range Segments(frameList) {
		if len(seg.Entries) == 0 {
			continue
		}
		tables = append(tables, buildTable(actions, seg))
	}
	return tables
}

func buildTable(actions []fighter.Action, seg Segment) Table {
	var hits []*fighter.HitValues
	var rows []Row

	for _, entry := range seg.Entries {
		switch e := entry.(type) {
		case fighter.HitEntry:
			v := e.Values
			hits = append(hits, &v)
			rows = append(rows, Row{Kind: HitRow})
		case fighter.GrabEntry:
			rows = append(rows, Row{Kind: GrabRow, Cells: grabCells(actions, &e.Values)})
		}
	}

	// Pick optional columns with at least one non-default value
	defaults := fighter.DefaultHitValues()
	var used []column
	for _, c := range optionalColumns {
		for _, v := range hits {
			if c.changed(v, &defaults) {
				used = append(used, c)
				break
			}
		}
	}

	header := append([]string{}, GrabHeader...)
	if len(hits) > 0 {
		header = append([]string{}, MandatoryColumns...)
		for _, c := range used {
			header = append(header, c.name)
		}
	}

	next := 0
	for i := range rows {
		if rows[i].Kind != HitRow {
			continue
		}
		v := hits[next]
		next++
		cells := mandatoryCells(v)
		for _, c := range used {
			cells = append(cells, c.cell(v))
		}
		rows[i].Cells = cells
	}

	return Table{
		Frames: FrameLabel(seg.Range),
		Range:  seg.Range,
		Header: header,
		Rows:   rows,
	}
}

func grabCells(actions []fighter.Action, v *fighter.GrabValues) []string {
	action := fmt.Sprintf("0x%x", v.TargetAction)
	if v.TargetAction >= 0 && v.TargetAction < len(actions) {
		action = actions[v.TargetAction].Name
	}
	return []string{
		strconv.Itoa(int(v.SetID)),
		strconv.Itoa(int(v.HitboxID)),
		"Grab",
		action,
		string(v.Target),
	}
}

// FrameLabel renders a range as "Frame: K" or "Frames: A-B".
func FrameLabel(r frames.Range) string {
	if r.Single() {
		return "Frame: " + strconv.Itoa(r.Start)
	}
	return "Frames: " + r.String()
}

func sameEntries(a, b []fighter.CollisionEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func enabledEntries(entries []fighter.CollisionEntry) []fighter.CollisionEntry {
	var out []fighter.CollisionEntry
	for _, e := range entries {
		if e.IsEnabled() {
			out = append(out, e)
		}
	}
	return out
}
