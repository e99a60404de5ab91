package report

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/frames"
)

// Attribute is one labelled value of a subaction summary.
type Attribute struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Attributes summarises the frame data of a subaction. Windows that never
// occur are left out.
func Attributes(f *fighter.Fighter, index int) []Attribute {
	sub := &f.Subactions[index]
	var out []Attribute

	add := func(label, value string) {
		if value != "" {
			out = append(out, Attribute{Label: label, Value: value})
		}
	}
	ranges := func(p frames.Predicate) string {
		return frames.FormatRanges(frames.Ranges(frames.Eval(sub.Frames, p)))
	}

	// IASA equal to the frame count means the subaction just runs out
	if sub.IASA < len(sub.Frames) {
		add("IASA", strconv.Itoa(sub.IASA+1))
	}

	autoCancel := frames.AutoCancel(frames.Eval(sub.Frames, frames.LandingLag))
	if len(autoCancel) > 0 {
		add("Auto-cancel Window", frames.FormatRanges(autoCancel))
		add("Auto-cancel Landing Lag", strconv.Itoa(f.Attributes.NormalLandingLag))
	}

	if sub.LandingLag != nil {
		add("Landing Lag", strconv.Itoa(*sub.LandingLag))
		add("L-cancelled Landing Lag", strconv.Itoa(*sub.LandingLag/2))
	}

	add("Fully Invincible", ranges(frames.FullyInvincible))
	add("Partially Invincible", ranges(frames.PartiallyInvincible))
	add("Fully Intangible", ranges(frames.FullyIntangible))
	add("Partially Intangible", ranges(frames.PartiallyIntangible))
	add("Reverse Direction", frames.FormatSingles(frames.Singles(frames.Eval(sub.Frames, frames.ReverseDirection))))
	add("Hitboxes Active", ranges(frames.HitboxesActive))

	for set := 0; set < fighter.RehitSetCount; set++ {
		add(fmt.Sprintf("Rehit Set %d", set), ranges(frames.RehitSet(set)))
	}

	add("Subaction Index", fmt.Sprintf("0x%X", index))

	return out
}
