package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
)

const testDt = 1.0 / 60

// newLooseActor adds a 0.9x1.8 dynamic body that is not part of any space.
func newLooseActor(t *testing.T, w *ecs.World, pos cp.Vector) ecs.Entity {
	t.Helper()
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.RigidBodyComponent, component.RigidBody{
		Body:   body,
		Width:  0.9,
		Height: 1.8,
		Mass:   1,
	}); err != nil {
		t.Fatalf("add rigid body: %v", err)
	}
	if err := ecs.Add(w, e, component.CollisionStateComponent, component.CollisionState{}); err != nil {
		t.Fatalf("add collision state: %v", err)
	}
	return e
}

// addSpaceBox adds a box that PhysicsSystem.Sync will turn into a body.
func addSpaceBox(t *testing.T, w *ecs.World, center cp.Vector, width, height float64, static bool) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: center.X, Y: center.Y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent, component.RigidBody{
		Width:  width,
		Height: height,
		Mass:   1,
		Static: static,
	}); err != nil {
		t.Fatalf("add rigid body: %v", err)
	}
	if !static {
		if err := ecs.Add(w, e, component.CollisionStateComponent, component.CollisionState{}); err != nil {
			t.Fatalf("add collision state: %v", err)
		}
	}
	return e
}

func rigidBody(t *testing.T, w *ecs.World, e ecs.Entity) *component.RigidBody {
	t.Helper()
	rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
	if !ok {
		t.Fatalf("entity %s has no rigid body", e)
	}
	return rb
}

func collisionState(t *testing.T, w *ecs.World, e ecs.Entity) *component.CollisionState {
	t.Helper()
	cs, ok := ecs.Get(w, e, component.CollisionStateComponent)
	if !ok {
		t.Fatalf("entity %s has no collision state", e)
	}
	return cs
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
