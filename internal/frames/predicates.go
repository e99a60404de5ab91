package frames

import "github.com/vovakirdan/framedata/internal/fighter"

// Predicate classifies a single frame.
type Predicate func(f *fighter.Frame) bool

// Eval applies p to every frame.
func Eval(frames []fighter.Frame, p Predicate) []bool {
	out := make([]bool, len(frames))
	for i := range frames {
		out[i] = p(&frames[i])
	}
	return out
}

// countState returns how many hurtboxes are in state s, and the total.
func countState(f *fighter.Frame, s fighter.HurtboxState) (int, int) {
	n := 0
	for _, h := range f.Hurtboxes {
		if h.State == s {
			n++
		}
	}
	return n, len(f.Hurtboxes)
}

// all holds when the frame has hurtboxes and every one is in state s.
func all(s fighter.HurtboxState) Predicate {
	return func(f *fighter.Frame) bool {
		n, total := countState(f, s)
		return total > 0 && n == total
	}
}

// partial holds when some but not all hurtboxes are in state s.
func partial(s fighter.HurtboxState) Predicate {
	return func(f *fighter.Frame) bool {
		n, total := countState(f, s)
		return n > 0 && n < total
	}
}

// Hurtbox state families. A partial predicate never holds on a frame where the
// matching full predicate does.
var (
	FullyInvincible     = all(fighter.Invincible)
	PartiallyInvincible = partial(fighter.Invincible)
	FullyIntangible     = all(fighter.Intangible)
	PartiallyIntangible = partial(fighter.Intangible)
)

// HitboxesActive holds when at least one enabled hit hitbox exists. Grab
// boxes do not count.
func HitboxesActive(f *fighter.Frame) bool {
	for _, c := range f.Hitboxes {
		if hit, ok := c.(fighter.HitEntry); ok && hit.Values.Enabled {
			return true
		}
	}
	return false
}

// RehitSet returns a predicate for rehit set channel i.
func RehitSet(i int) Predicate {
	return func(f *fighter.Frame) bool {
		return f.RehitSets[i]
	}
}

// ReverseDirection holds on frames that turn the fighter around.
func ReverseDirection(f *fighter.Frame) bool {
	return f.ReverseDirection
}

// LandingLag holds on frames where landing incurs landing lag.
func LandingLag(f *fighter.Frame) bool {
	return f.LandingLag
}
