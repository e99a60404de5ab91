// Package frames compresses per-frame predicates into frame ranges.
//
// All ranges are 1-based and inclusive, matching how frame data is quoted by
// players: a move that is invincible on its first three frames is "1-3".
package frames

import (
	"strconv"
	"strings"
)

// Range is a 1-based inclusive run of frames.
type Range struct {
	Start int
	End   int
}

// Single reports whether the range covers one frame.
func (r Range) Single() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}

// Ranges returns the maximal runs where pred holds.
func Ranges(pred []bool) []Range {
	var out []Range
	start := -1

	for i, v := range pred {
		if v && start < 0 {
			start = i
		} else if !v && start >= 0 {
			out = append(out, Range{Start: start + 1, End: i})
			start = -1
		}
	}

	// Still open on the final frame
	if start >= 0 {
		out = append(out, Range{Start: start + 1, End: len(pred)})
	}

	return out
}

// Singles returns the 1-based index of every frame where pred holds.
func Singles(pred []bool) []int {
	var out []int
	for i, v := range pred {
		if v {
			out = append(out, i+1)
		}
	}
	return out
}

// FormatRanges joins ranges as "1-3, 5-6".
func FormatRanges(ranges []Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// FormatSingles joins frame numbers as "3, 7".
func FormatSingles(frames []int) string {
	parts := make([]string, len(frames))
	for i, f := range frames {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ", ")
}

// Expand turns ranges back into a predicate of length n.
func Expand(ranges []Range, n int) []bool {
	out := make([]bool, n)
	for _, r := range ranges {
		for i := r.Start; i <= r.End && i <= n; i++ {
			out[i-1] = true
		}
	}
	return out
}
