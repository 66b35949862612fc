package component

// LevelBounds stores the level extent in tile units. The camera clamps to it.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
