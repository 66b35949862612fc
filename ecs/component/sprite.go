package component

import "image/color"

// Sprite is the draw handle for an entity. Entities are drawn as filled boxes
// sized by their collider.
type Sprite struct {
	Color  color.RGBA
	Layer  int
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
