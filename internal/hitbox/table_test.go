package hitbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/framedata/internal/fighter"
)

func hit(id uint8, damage float32) fighter.HitValues {
	v := fighter.DefaultHitValues()
	v.HitboxID = id
	v.Damage = damage
	v.Angle = 45
	v.BKB = 20
	v.KBG = 100
	v.Sound = "Punch"
	return v
}

func frame(entries ...fighter.CollisionEntry) fighter.Frame {
	return fighter.Frame{Hitboxes: entries}
}

func TestBuildSegmentsAndLabels(t *testing.T) {
	a := fighter.HitEntry{Values: hit(0, 12)}
	b := fighter.HitEntry{Values: hit(1, 8)}

	frameList := []fighter.Frame{
		frame(),
		frame(a),
		frame(a),
		frame(a, b),
		frame(),
		frame(),
	}

	tables := Build(nil, frameList)
	require.Len(t, tables, 2)

	assert.Equal(t, "Frames: 2-3", tables[0].Frames)
	assert.Len(t, tables[0].Rows, 1)
	assert.Equal(t, "Frame: 4", tables[1].Frames)
	assert.Len(t, tables[1].Rows, 2)
	assert.Equal(t, MandatoryColumns, tables[1].Header)
	assert.Equal(t, []string{"0", "1", "8", "20", "100", "45", "Normal", "Punch", "Grounded, Aerial"}, tables[1].Rows[1].Cells)
}

func TestSegmentsPartitionFrames(t *testing.T) {
	a := fighter.HitEntry{Values: hit(0, 12)}
	b := fighter.HitEntry{Values: hit(1, 8)}
	off := hit(2, 5)
	off.Enabled = false
	c := fighter.HitEntry{Values: off}

	frameList := []fighter.Frame{
		frame(a), frame(), frame(b), frame(b, a), frame(a, b), frame(c), frame(c), frame(a),
	}

	segs := Segments(frameList)
	next := 1
	for _, s := range segs {
		assert.Equal(t, next, s.Range.Start, "segments must be contiguous")
		assert.LessOrEqual(t, s.Range.Start, s.Range.End)
		next = s.Range.End + 1
	}
	assert.Equal(t, len(frameList)+1, next, "segments must cover every frame")

	// The reordered pair is a change, the final frame is its own table
	tables := Build(nil, frameList)
	labels := make([]string, len(tables))
	for i, tb := range tables {
		labels[i] = tb.Frames
	}
	assert.Equal(t, []string{"Frame: 1", "Frame: 3", "Frame: 4", "Frame: 5", "Frame: 8"}, labels)
}

func TestBuildFinalFrameClosesSegment(t *testing.T) {
	a := fighter.HitEntry{Values: hit(0, 3)}
	tables := Build(nil, []fighter.Frame{frame(), frame(a), frame(a), frame(a)})

	require.Len(t, tables, 1)
	assert.Equal(t, "Frames: 2-4", tables[0].Frames)
}

func TestBuildSkipsDisabledEntries(t *testing.T) {
	off := hit(1, 99)
	off.Enabled = false

	tables := Build(nil, []fighter.Frame{
		frame(fighter.HitEntry{Values: hit(0, 4)}, fighter.HitEntry{Values: off}),
		frame(fighter.HitEntry{Values: off}),
	})

	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 1)
	assert.Equal(t, "4", tables[0].Rows[0].Cells[2])
}

func TestOptionalColumnsOnlyWhenUsed(t *testing.T) {
	plain := hit(0, 10)
	special := hit(1, 10)
	special.ShieldDamage = 5
	special.Flinchless = true
	special.Clang = false
	special.Angle = fighter.AngleSakurai

	tables := Build(nil, []fighter.Frame{
		frame(fighter.HitEntry{Values: plain}),
		frame(fighter.HitEntry{Values: plain}, fighter.HitEntry{Values: special}),
	})
	require.Len(t, tables, 2)

	assert.Equal(t, MandatoryColumns, tables[0].Header)

	expected := append(append([]string{}, MandatoryColumns...), "Shield Damage", "Flinchless", "Clang")
	assert.Equal(t, expected, tables[1].Header)

	plainRow := tables[1].Rows[0].Cells
	specialRow := tables[1].Rows[1].Cells
	assert.Equal(t, []string{"0", "No", "Yes"}, plainRow[len(MandatoryColumns):])
	assert.Equal(t, []string{"5", "Yes", "No"}, specialRow[len(MandatoryColumns):])
	assert.Equal(t, "361 (Sakurai Angle)", specialRow[5])
}

func TestGrabRowsUseReducedLayout(t *testing.T) {
	actions := []fighter.Action{{Name: "Wait"}, {Name: "CatchWait"}}
	grab := fighter.GrabEntry{Values: fighter.GrabValues{
		SetID: 0, HitboxID: 1, Enabled: true, TargetAction: 1, Target: fighter.GrabTargetGrounded,
	}}
	stray := fighter.GrabEntry{Values: fighter.GrabValues{
		HitboxID: 2, Enabled: true, TargetAction: 0x40, Target: fighter.GrabTargetAerial,
	}}

	tables := Build(actions, []fighter.Frame{frame(grab, stray)})
	require.Len(t, tables, 1)

	assert.Equal(t, GrabHeader, tables[0].Header)
	assert.Equal(t, GrabRow, tables[0].Rows[0].Kind)
	assert.Equal(t, []string{"0", "1", "Grab", "CatchWait", "Grounded"}, tables[0].Rows[0].Cells)
	assert.Equal(t, "0x40", tables[0].Rows[1].Cells[3])
}

func TestMixedHitAndGrab(t *testing.T) {
	grab := fighter.GrabEntry{Values: fighter.GrabValues{HitboxID: 1, Enabled: true, Target: fighter.GrabTargetGroundedAndAerial}}
	h := fighter.HitEntry{Values: hit(0, 6)}

	tables := Build(nil, []fighter.Frame{frame(grab, h)})
	require.Len(t, tables, 1)

	tb := tables[0]
	assert.Equal(t, MandatoryColumns, tb.Header)
	assert.Equal(t, GrabRow, tb.Rows[0].Kind)
	assert.Len(t, tb.Rows[0].Cells, len(GrabHeader))
	assert.Equal(t, HitRow, tb.Rows[1].Kind)
	assert.Equal(t, "6", tb.Rows[1].Cells[2])
}

func TestFormatTargets(t *testing.T) {
	assert.Equal(t, "None", formatTargets(fighter.Targets{}))
	assert.Equal(t, "Aerial, Pikmin, Bob-omb", formatTargets(fighter.Targets{FightersAerial: true, Pikmin: true, Bobomb: true}))
}
