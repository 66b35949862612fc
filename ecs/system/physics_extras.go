package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/prefabs"
)

// PhysicsExtrasSystem applies gravity and velocity-proportional friction to
// every dynamic body with footing. Friction is divided by dt so the damping
// per step stays constant across frame rates; callers clamp dt away from zero.
type PhysicsExtrasSystem struct {
	spec *prefabs.PhysicsSpec
}

func NewPhysicsExtrasSystem(spec *prefabs.PhysicsSpec) *PhysicsExtrasSystem {
	if spec == nil {
		def := prefabs.DefaultPhysicsSpec()
		spec = &def
	}
	return &PhysicsExtrasSystem{spec: spec}
}

func (px *PhysicsExtrasSystem) Update(w *ecs.World, f *ecs.Frame) error {
	if px == nil || w == nil || f == nil || f.Dt <= 0 {
		return nil
	}

	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.CollisionStateComponent.Kind(), func(_ ecs.Entity, rb *component.RigidBody, state *component.CollisionState) {
		if rb.Static {
			return
		}
		rb.AddForce(px.Gravity(rb.Mass))
		rb.AddForce(px.Friction(rb.Velocity(), rb.Mass, state.Ground, f.Dt))
	})
	return nil
}

// Gravity is the downward force on a body of the given mass.
func (px *PhysicsExtrasSystem) Gravity(mass float64) cp.Vector {
	return cp.Vector{X: 0, Y: px.spec.Gravity * mass}
}

// Friction is the force opposing velocity for one step of length dt.
func (px *PhysicsExtrasSystem) Friction(velocity cp.Vector, mass float64, grounded bool, dt float64) cp.Vector {
	coefficient := px.spec.AirFriction
	if grounded {
		coefficient = px.spec.GroundFriction
	}
	k := coefficient / dt * mass
	return cp.Vector{X: -velocity.X * k, Y: -velocity.Y * k}
}
