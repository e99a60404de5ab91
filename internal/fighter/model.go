// Package fighter holds the immutable fighter model consumed by the report
// generators: mods, fighters, actions, subactions, frames and scripts.
//
// A Mod is built once through NewMod, which also builds every symbol table
// and runs the load-time integrity checks. Nothing in this module mutates a
// Mod after NewMod returns, so it may be shared freely between goroutines.
package fighter

// RehitSetCount is the number of rehit set channels tracked per frame.
const RehitSetCount = 10

// Mod is a complete game or mod build: every fighter plus the scripts shared
// between them.
type Mod struct {
	Name          string
	Fighters      []*Fighter
	CommonScripts []Script

	// Common resolves offsets of CommonScripts.
	Common SymbolTable

	Paths Paths
}

// Fighter returns the fighter with the given name.
func (m *Mod) Fighter(name string) (*Fighter, bool) {
	for _, f := range m.Fighters {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Fighter is one playable (or common) character.
type Fighter struct {
	Name string

	// Common marks the shared fighter whose scripts are rendered against the
	// mod-wide common symbol table as well as its own.
	Common bool

	Actions    []Action
	Subactions []Subaction
	Scripts    []Script
	Attributes Attributes

	// Symbols resolves offsets of this fighter's subaction and fragment scripts.
	Symbols SymbolTable
}

// Attributes is the numeric attribute record of a fighter.
type Attributes struct {
	Weight                float32 `yaml:"weight"`
	Gravity               float32 `yaml:"gravity"`
	WalkMaxVelocity       float32 `yaml:"walk_max_velocity"`
	RunMaxVelocity        float32 `yaml:"run_max_velocity"`
	JumpSquatFrames       int     `yaml:"jump_squat_frames"`
	NormalLandingLag      int     `yaml:"normal_landing_lag"`
	AirJumpCount          int     `yaml:"air_jump_count"`
	FastFallVelocity      float32 `yaml:"fast_fall_velocity"`
	ShieldSize            float32 `yaml:"shield_size"`
	ItemThrowStrength     float32 `yaml:"item_throw_strength"`
	HardLandingLagFrames  int     `yaml:"hard_landing_lag"`
	SoftLandingLagFrames  int     `yaml:"soft_landing_lag"`
	CrouchWalkMaxVelocity float32 `yaml:"crouch_walk_max_velocity"`
}

// Action is an entry in a fighter's action state machine.
type Action struct {
	Name string
	IASA int
	// Frames is the action's frame count.
	Frames int
}

// Subaction is an animation together with its scripts and the frame data
// produced by simulating them.
type Subaction struct {
	Name string

	// IASA is the first frame index the subaction may be cancelled on.
	// Always within [0, len(Frames)].
	IASA   int
	Frames []Frame

	// LandingLag is set only for actionable aerial moves.
	LandingLag *int

	Main  Script
	GFX   Script
	SFX   Script
	Other Script
}

// Frame is the simulated state of one subaction frame.
type Frame struct {
	Hurtboxes        []Hurtbox
	Hitboxes         []CollisionEntry
	LandingLag       bool
	ReverseDirection bool
	RehitSets        [RehitSetCount]bool
}

// HurtboxState is the collision state of a hurtbox.
type HurtboxState int

const (
	Vulnerable HurtboxState = iota
	Invincible
	Intangible
)

func (s HurtboxState) String() string {
	switch s {
	case Invincible:
		return "Invincible"
	case Intangible:
		return "Intangible"
	default:
		return "Vulnerable"
	}
}

// Hurtbox is a vulnerable collision region attached to a bone.
type Hurtbox struct {
	Bone  int
	State HurtboxState
}

// Script is a tree of events stored at an offset unique within its scope.
type Script struct {
	Offset uint32
	Events []Event
}
