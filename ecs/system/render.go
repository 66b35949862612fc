package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw fills each sprite's collider box, lowest layer first.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := cameraTransform(w)

	entities := w.Query(component.SpriteComponent.Kind(), component.RigidBodyComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if s, ok := ecs.Get(w, entities[i], component.SpriteComponent); ok {
			li = s.Layer
		}
		if s, ok := ecs.Get(w, entities[j], component.SpriteComponent); ok {
			lj = s.Layer
		}
		if li != lj {
			return li < lj
		}
		return entities[i] < entities[j]
	})

	for _, e := range entities {
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Hidden {
			continue
		}
		rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
		if !ok {
			continue
		}
		bb := rb.Bounds()
		x := (bb.L - camX) * zoom
		y := (bb.B - camY) * zoom
		vector.FillRect(screen, float32(x), float32(y), float32((bb.R-bb.L)*zoom), float32((bb.T-bb.B)*zoom), s.Color, false)
	}
}
