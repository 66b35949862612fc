package component

// Input is the control state sampled once per tick. MoveX is -1, 0 or 1.
// Jump is held, not edge triggered: a held jump re-fires once the cooldown
// expires.
type Input struct {
	MoveX float64
	Jump  bool
}

// Clamped returns the input with MoveX snapped to {-1, 0, 1}.
func (in Input) Clamped() Input {
	switch {
	case in.MoveX > 0:
		in.MoveX = 1
	case in.MoveX < 0:
		in.MoveX = -1
	default:
		in.MoveX = 0
	}
	return in
}
