package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/levels"
	"github.com/milk9111/artsmajor/prefabs"
	"golang.org/x/image/colornames"
)

// Level holds the entities built from a level layout.
type Level struct {
	Player ecs.Entity
	Guards []ecs.Entity
	Walls  []ecs.Entity
	Zones  *component.Zones
}

// LoadLevelToWorld creates the level bounds, static collision boxes, the
// player and every guard, and returns the static zone data.
func LoadLevelToWorld(w *ecs.World, layout *levels.Layout, specs *prefabs.Specs) (*Level, error) {
	if w == nil || layout == nil {
		return nil, fmt.Errorf("entity: load level: nil world or layout")
	}
	if specs == nil {
		specs = prefabs.DefaultSpecs()
	}

	boundsEntity := w.CreateEntity()
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent, component.LevelBounds{
		Width:  layout.Width,
		Height: layout.Height,
	}); err != nil {
		return nil, err
	}

	out := &Level{Zones: ZonesFromLayout(layout)}

	for _, bb := range layout.Collision {
		e, err := NewWall(w, bb)
		if err != nil {
			return nil, err
		}
		out.Walls = append(out.Walls, e)
	}

	player, err := NewPlayerAt(w, &specs.Player, layout.PlayerSpawn)
	if err != nil {
		return nil, err
	}
	out.Player = player

	for _, spawn := range layout.GuardSpawns {
		guard, err := NewGuardAt(w, &specs.Guard, spawn)
		if err != nil {
			return nil, err
		}
		out.Guards = append(out.Guards, guard)
	}

	return out, nil
}

// NewWall creates a static collision box.
func NewWall(w *ecs.World, bb cp.BB) (ecs.Entity, error) {
	e := w.CreateEntity()
	center := bb.Center()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: center.X, Y: center.Y}); err != nil {
		return 0, fmt.Errorf("wall: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent, component.RigidBody{
		Width:  bb.R - bb.L,
		Height: bb.T - bb.B,
		Static: true,
	}); err != nil {
		return 0, fmt.Errorf("wall: add rigid body: %w", err)
	}
	if err := ecs.Add(w, e, component.StaticTagComponent, component.StaticTag{}); err != nil {
		return 0, fmt.Errorf("wall: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{Color: colornames.Dimgray}); err != nil {
		return 0, fmt.Errorf("wall: add sprite: %w", err)
	}
	return e, nil
}

func ZonesFromLayout(layout *levels.Layout) *component.Zones {
	zones := &component.Zones{
		Easel:      layout.Easel,
		TurnAround: append([]cp.BB(nil), layout.TurnAround...),
	}
	for _, jb := range layout.Jump {
		zones.Jump = append(zones.Jump, component.JumpZone{Direction: jb.Direction, Box: jb.Box})
	}
	return zones
}

// NewCamera creates the camera that follows the player.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.CameraComponent, component.Camera{
		Zoom:       float64(common.TileSize * common.GlobalScale),
		Smoothness: 0.15,
	}); err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraTagComponent, component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add tag: %w", err)
	}
	return e, nil
}
