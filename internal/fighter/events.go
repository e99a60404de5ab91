package fighter

// Event is one node of a script's event tree. The set of variants is closed;
// consumers switch over them and keep an explicit default for the rest.
type Event interface {
	isEvent()
}

// Nop does nothing.
type Nop struct{}

// ChangeAction moves the fighter into the action at ActionIndex when Test holds.
type ChangeAction struct {
	ActionIndex int
	Test        Expression
}

// ChangeActionStatus is ChangeAction gated on a status id. When Flip is set the
// requirement is negated.
type ChangeActionStatus struct {
	StatusID    int
	ActionIndex int
	Requirement Expression
	Flip        bool
}

// ChangeSubaction switches the animation to the subaction at Index.
type ChangeSubaction struct {
	Index int
}

// ChangeSubactionRestartFrame switches to the subaction at Index from frame 0.
type ChangeSubactionRestartFrame struct {
	Index int
}

// IfStatement runs Then when Test holds, otherwise Else. A nil Else means the
// script has no else branch.
type IfStatement struct {
	Test Expression
	Then []Event
	Else []Event
}

// Goto jumps to the script at Offset.
type Goto struct {
	Offset uint32
}

// Subroutine calls the script at Offset and returns.
type Subroutine struct {
	Offset uint32
}

// Unknown is an event the parser could not decode.
type Unknown struct {
	Raw string
}

// SyncWait blocks the script for Frames frames.
type SyncWait struct {
	Frames float32
}

// AsyncWait blocks the script until frame Frame of the subaction.
type AsyncWait struct {
	Frame float32
}

// CreateHitBox spawns the hitbox HitboxID attached to BoneIndex.
type CreateHitBox struct {
	HitboxID  uint8
	BoneIndex int
	SetID     uint8
	Damage    float32
	Angle     int
}

// DeleteAllHitBoxes removes every hitbox of the fighter.
type DeleteAllHitBoxes struct{}

// SoundEffect plays sound ID.
type SoundEffect struct {
	ID int
}

// GraphicEffect spawns graphic ID on Bone.
type GraphicEffect struct {
	ID   int
	Bone int
}

// SetVariable assigns Value to a script variable.
type SetVariable struct {
	Variable uint32
	Value    int32
}

func (Nop) isEvent()                         {}
func (ChangeAction) isEvent()                {}
func (ChangeActionStatus) isEvent()          {}
func (ChangeSubaction) isEvent()             {}
func (ChangeSubactionRestartFrame) isEvent() {}
func (IfStatement) isEvent()                 {}
func (Goto) isEvent()                        {}
func (Subroutine) isEvent()                  {}
func (Unknown) isEvent()                     {}
func (SyncWait) isEvent()                    {}
func (AsyncWait) isEvent()                   {}
func (CreateHitBox) isEvent()                {}
func (DeleteAllHitBoxes) isEvent()           {}
func (SoundEffect) isEvent()                 {}
func (GraphicEffect) isEvent()               {}
func (SetVariable) isEvent()                 {}
