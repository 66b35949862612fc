package component

type Camera struct {
	// Zoom is the number of screen pixels per tile.
	Zoom       float64
	Smoothness float64
	X          float64
	Y          float64
}

var CameraComponent = NewComponent[Camera]()
