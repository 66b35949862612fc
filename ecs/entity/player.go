package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/prefabs"
	"golang.org/x/image/colornames"
)

func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, pos cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		def := prefabs.DefaultPlayerSpec()
		spec = &def
	}
	e := w.CreateEntity()
	if err := addActor(w, e, spec.Body, pos, spec.Color.Or(colornames.Royalblue)); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	return e, nil
}

// addActor gives e a dynamic box body, footing and a sprite.
func addActor(w *ecs.World, e ecs.Entity, body prefabs.BodySpec, pos cp.Vector, clr color.RGBA) error {
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent, component.RigidBody{
		Width:    body.Width,
		Height:   body.Height,
		Mass:     body.Mass,
		Friction: body.Friction,
	}); err != nil {
		return fmt.Errorf("add rigid body: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionStateComponent, component.CollisionState{}); err != nil {
		return fmt.Errorf("add collision state: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{Color: clr, Layer: 1}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}
