package hitbox

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/framedata/internal/fighter"
)

// column is an optional hit column. It is shown only when some row in the
// table differs from the default value.
type column struct {
	name    string
	changed func(v, d *fighter.HitValues) bool
	cell    func(v *fighter.HitValues) string
}

var optionalColumns = []column{
	{
		name:    "Hitlag",
		changed: func(v, d *fighter.HitValues) bool { return v.HitlagMult != d.HitlagMult },
		cell:    func(v *fighter.HitValues) string { return formatFloat(v.HitlagMult) + "x" },
	},
	{
		name:    "SDI",
		changed: func(v, d *fighter.HitValues) bool { return v.SDIMult != d.SDIMult },
		cell:    func(v *fighter.HitValues) string { return formatFloat(v.SDIMult) + "x" },
	},
	{
		name:    "Shield Damage",
		changed: func(v, d *fighter.HitValues) bool { return v.ShieldDamage != d.ShieldDamage },
		cell:    func(v *fighter.HitValues) string { return strconv.Itoa(v.ShieldDamage) },
	},
	{
		name:    "Trip Rate",
		changed: func(v, d *fighter.HitValues) bool { return v.TrippingRate != d.TrippingRate },
		cell:    func(v *fighter.HitValues) string { return formatFloat(v.TrippingRate) },
	},
	{
		name:    "Rehit Rate",
		changed: func(v, d *fighter.HitValues) bool { return v.RehitRate != d.RehitRate },
		cell:    func(v *fighter.HitValues) string { return strconv.Itoa(v.RehitRate) },
	},
	{
		name:    "WDSK",
		changed: func(v, d *fighter.HitValues) bool { return v.WDSK != d.WDSK },
		cell:    func(v *fighter.HitValues) string { return strconv.Itoa(v.WDSK) },
	},
	boolColumn("Shieldable", func(v *fighter.HitValues) bool { return v.Shieldable }),
	boolColumn("Reflectable", func(v *fighter.HitValues) bool { return v.Reflectable }),
	boolColumn("Absorbable", func(v *fighter.HitValues) bool { return v.Absorbable }),
	boolColumn("Remain Grabbed", func(v *fighter.HitValues) bool { return v.RemainGrabbed }),
	boolColumn("Ignore Invincibility", func(v *fighter.HitValues) bool { return v.IgnoreInvincibility }),
	boolColumn("Freeze Frame Disable", func(v *fighter.HitValues) bool { return v.FreezeFrameDisable }),
	boolColumn("Flinchless", func(v *fighter.HitValues) bool { return v.Flinchless }),
	{
		name:    "Angle Flip",
		changed: func(v, d *fighter.HitValues) bool { return v.AngleFlip != d.AngleFlip },
		cell:    func(v *fighter.HitValues) string { return string(v.AngleFlip) },
	},
	boolColumn("Clang", func(v *fighter.HitValues) bool { return v.Clang }),
	boolColumn("Direct", func(v *fighter.HitValues) bool { return v.Direct }),
}

func boolColumn(name string, get func(v *fighter.HitValues) bool) column {
	return column{
		name:    name,
		changed: func(v, d *fighter.HitValues) bool { return get(v) != get(d) },
		cell:    func(v *fighter.HitValues) string { return yesNo(get(v)) },
	}
}

// MandatoryColumns are present in every hit table, in this order.
var MandatoryColumns = []string{"Set", "ID", "Damage", "BKB", "KBG", "Angle", "Effect", "Sound", "Can Hit"}

// GrabHeader is the reduced layout used for grab rows.
var GrabHeader = []string{"Set", "ID", "Type", "Action", "Target"}

func mandatoryCells(v *fighter.HitValues) []string {
	return []string{
		strconv.Itoa(int(v.SetID)),
		strconv.Itoa(int(v.HitboxID)),
		formatFloat(v.Damage),
		strconv.Itoa(v.BKB),
		strconv.Itoa(v.KBG),
		formatAngle(v.Angle),
		string(v.Effect),
		formatSound(v),
		formatTargets(v.Targets),
	}
}

// formatAngle annotates the reserved angle codes.
func formatAngle(angle int) string {
	s := strconv.Itoa(angle)
	switch angle {
	case fighter.AngleSakurai:
		return s + " (Sakurai Angle)"
	case fighter.AngleAutolink:
		return s + " (Autolink)"
	case fighter.AngleSpeedDependentAutolink:
		return s + " (Speed-Dependent Autolink)"
	default:
		return s
	}
}

func formatSound(v *fighter.HitValues) string {
	if v.Sound == "" {
		return "None"
	}
	if v.SoundLevel > 0 {
		return v.Sound + " L" + strconv.Itoa(v.SoundLevel)
	}
	return v.Sound
}

var targetLabels = []struct {
	label string
	get   func(t fighter.Targets) bool
}{
	{"Grounded", func(t fighter.Targets) bool { return t.FightersGrounded }},
	{"Aerial", func(t fighter.Targets) bool { return t.FightersAerial }},
	{"Waddles", func(t fighter.Targets) bool { return t.Waddles }},
	{"Pikmin", func(t fighter.Targets) bool { return t.Pikmin }},
	{"Gyro", func(t fighter.Targets) bool { return t.Gyro }},
	{"Snake Grenade", func(t fighter.Targets) bool { return t.SnakeGrenade }},
	{"Mr. Saturn", func(t fighter.Targets) bool { return t.MrSaturn }},
	{"Stage", func(t fighter.Targets) bool { return t.StageNonWall }},
	{"Wall/Ceiling/Floor", func(t fighter.Targets) bool { return t.StageWall }},
	{"Link Bomb", func(t fighter.Targets) bool { return t.LinkBomb }},
	{"Bob-omb", func(t fighter.Targets) bool { return t.Bobomb }},
}

func formatTargets(t fighter.Targets) string {
	var parts []string
	for _, l := range targetLabels {
		if l.get(t) {
			parts = append(parts, l.label)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
