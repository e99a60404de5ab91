package frames

// AutoCancel returns the windows in which landing skips landing lag.
//
// A window opens on the first frame when it has no landing lag and on every
// frame where landing lag switches off, and closes on the frame before landing
// lag switches back on. A subaction that never has landing lag has no window.
func AutoCancel(landingLag []bool) []Range {
	hasLag := false
	for _, v := range landingLag {
		if v {
			hasLag = true
			break
		}
	}
	if !hasLag {
		return nil
	}

	var out []Range
	start := -1
	prev := true

	for i, v := range landingLag {
		if prev && !v && start < 0 {
			start = i
		} else if !prev && v && start >= 0 {
			out = append(out, Range{Start: start + 1, End: i})
			start = -1
		}
		prev = v
	}

	if start >= 0 {
		out = append(out, Range{Start: start + 1, End: len(landingLag)})
	}

	return out
}
