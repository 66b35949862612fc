package component

// CollisionState is the footing of a dynamic entity. Ground is rebuilt every
// tick from the previous tick's contacts; JumpCooldown counts down to zero.
type CollisionState struct {
	Ground       bool
	JumpCooldown float64
}

// JumpEpsilon is the largest remaining cooldown that still allows a jump.
const JumpEpsilon = 1e-6

// CanJump reports whether a jump may trigger this tick.
func (cs *CollisionState) CanJump() bool {
	return cs.Ground && cs.JumpCooldown <= JumpEpsilon
}

var CollisionStateComponent = NewComponent[CollisionState]()
