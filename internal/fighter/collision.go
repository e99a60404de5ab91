package fighter

// CollisionEntry is the next-frame state of a hitbox slot. It is either a
// HitEntry or a GrabEntry.
type CollisionEntry interface {
	Set() uint8
	ID() uint8
	IsEnabled() bool
	isCollision()
}

// HitEntry is a damage-dealing hitbox.
type HitEntry struct {
	Values HitValues
}

// GrabEntry is a grab box that moves the target into another action.
type GrabEntry struct {
	Values GrabValues
}

func (HitEntry) isCollision()  {}
func (GrabEntry) isCollision() {}

func (h HitEntry) Set() uint8      { return h.Values.SetID }
func (h HitEntry) ID() uint8       { return h.Values.HitboxID }
func (h HitEntry) IsEnabled() bool { return h.Values.Enabled }

func (g GrabEntry) Set() uint8      { return g.Values.SetID }
func (g GrabEntry) ID() uint8       { return g.Values.HitboxID }
func (g GrabEntry) IsEnabled() bool { return g.Values.Enabled }

// Reserved angle codes whose direction depends on the situation of the hit.
const (
	AngleSakurai                = 361
	AngleAutolink               = 363
	AngleSpeedDependentAutolink = 365
)

// Effect is the on-hit effect of a hitbox.
type Effect string

const (
	EffectNormal   Effect = "Normal"
	EffectNone     Effect = "None"
	EffectSlash    Effect = "Slash"
	EffectElectric Effect = "Electric"
	EffectFreezing Effect = "Freezing"
	EffectFlame    Effect = "Flame"
	EffectCoin     Effect = "Coin"
	EffectReverse  Effect = "Reverse"
	EffectTrip     Effect = "Trip"
	EffectSleep    Effect = "Sleep"
	EffectBury     Effect = "Bury"
	EffectStun     Effect = "Stun"
	EffectFlower   Effect = "Flower"
	EffectGrass    Effect = "Grass"
	EffectWater    Effect = "Water"
	EffectDarkness Effect = "Darkness"
	EffectParalyze Effect = "Paralyze"
	EffectAura     Effect = "Aura"
)

// AngleFlip controls which way the hit direction faces.
type AngleFlip string

const (
	AngleFlipAttackerPosition  AngleFlip = "AttackerPosition"
	AngleFlipAttackerDirection AngleFlip = "AttackerDirection"
	AngleFlipReverse           AngleFlip = "AttackerDirectionReverse"
	AngleFlipFaceZaxis         AngleFlip = "FaceZaxis"
)

// Targets records which target classes a hit can damage.
type Targets struct {
	FightersGrounded bool `yaml:"fighters_grounded"`
	FightersAerial   bool `yaml:"fighters_aerial"`
	Waddles          bool `yaml:"waddles"`
	Pikmin           bool `yaml:"pikmin"`
	Gyro             bool `yaml:"gyro"`
	SnakeGrenade     bool `yaml:"snake_grenade"`
	MrSaturn         bool `yaml:"mr_saturn"`
	StageNonWall     bool `yaml:"stage_non_wall"`
	StageWall        bool `yaml:"stage_wall"`
	LinkBomb         bool `yaml:"link_bomb"`
	Bobomb           bool `yaml:"bobomb"`
}

// HitValues is the full state of a hit hitbox.
type HitValues struct {
	SetID    uint8 `yaml:"set"`
	HitboxID uint8 `yaml:"id"`
	Enabled  bool  `yaml:"enabled"`

	Damage       float32 `yaml:"damage"`
	Angle        int     `yaml:"angle"`
	BKB          int     `yaml:"bkb"`
	KBG          int     `yaml:"kbg"`
	WDSK         int     `yaml:"wdsk"`
	ShieldDamage int     `yaml:"shield_damage"`
	TrippingRate float32 `yaml:"tripping_rate"`
	HitlagMult   float32 `yaml:"hitlag_mult"`
	SDIMult      float32 `yaml:"sdi_mult"`
	Effect       Effect  `yaml:"effect"`
	Sound        string  `yaml:"sound"`
	SoundLevel   int     `yaml:"sound_level"`
	RehitRate    int     `yaml:"rehit_rate"`

	Clang               bool      `yaml:"clang"`
	Direct              bool      `yaml:"direct"`
	Shieldable          bool      `yaml:"shieldable"`
	Reflectable         bool      `yaml:"reflectable"`
	Absorbable          bool      `yaml:"absorbable"`
	RemainGrabbed       bool      `yaml:"remain_grabbed"`
	IgnoreInvincibility bool      `yaml:"ignore_invincibility"`
	FreezeFrameDisable  bool      `yaml:"freeze_frame_disable"`
	Flinchless          bool      `yaml:"flinchless"`
	AngleFlip           AngleFlip `yaml:"angle_flip"`

	Targets Targets `yaml:"targets"`
}

// DefaultHitValues returns the values a hitbox has unless its script says
// otherwise. Every optional hitbox table column compares against these.
func DefaultHitValues() HitValues {
	return HitValues{
		Enabled:    true,
		HitlagMult: 1,
		SDIMult:    1,
		Effect:     EffectNormal,
		Clang:      true,
		Direct:     true,
		Shieldable: true,
		AngleFlip:  AngleFlipAttackerPosition,
		Targets: Targets{
			FightersGrounded: true,
			FightersAerial:   true,
		},
	}
}

// GrabTarget is the set of fighter states a grab box can catch.
type GrabTarget string

const (
	GrabTargetNone              GrabTarget = "None"
	GrabTargetGrounded          GrabTarget = "Grounded"
	GrabTargetAerial            GrabTarget = "Aerial"
	GrabTargetGroundedAndAerial GrabTarget = "GroundedAndAerial"
)

// GrabValues is the full state of a grab box.
type GrabValues struct {
	SetID    uint8 `yaml:"set"`
	HitboxID uint8 `yaml:"id"`
	Enabled  bool  `yaml:"enabled"`

	// TargetAction indexes the grabbing fighter's action list.
	TargetAction int        `yaml:"target_action"`
	Target       GrabTarget `yaml:"target"`
}
