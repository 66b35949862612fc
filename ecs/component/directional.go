package component

import "github.com/milk9111/artsmajor/common"

// Directional is the way an entity faces and walks.
type Directional struct {
	Direction common.Direction
}

// Multiplier is the sign to apply to a horizontal speed.
func (d Directional) Multiplier() float64 {
	return d.Direction.Multiplier()
}

func (d *Directional) Invert() {
	d.Direction = d.Direction.Invert()
}

var DirectionalComponent = NewComponent[Directional]()
