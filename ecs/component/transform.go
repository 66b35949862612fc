package component

// Transform is the render-facing pose, copied from the rigid body at the end
// of every tick. X and Y are the body's center in tile units.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
