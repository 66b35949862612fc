package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/prefabs"
)

// PlayerControllerSystem publishes the player's pose for this tick and turns
// the frame input into walk and jump forces.
type PlayerControllerSystem struct {
	spec  *prefabs.PlayerSpec
	state PlayerPublisher
}

func NewPlayerControllerSystem(spec *prefabs.PlayerSpec, state PlayerPublisher) *PlayerControllerSystem {
	if spec == nil {
		def := prefabs.DefaultPlayerSpec()
		spec = &def
	}
	return &PlayerControllerSystem{spec: spec, state: state}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, f *ecs.Frame) error {
	if p == nil || w == nil || f == nil {
		return nil
	}

	input := f.Input.Clamped()
	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		component.CollisionStateComponent.Kind(),
	)
	for _, e := range entities {
		rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
		if !ok {
			continue
		}
		state, ok := ecs.Get(w, e, component.CollisionStateComponent)
		if !ok {
			continue
		}

		if p.state != nil {
			p.state.Publish(e, rb.Position(), rb.Bounds())
		}

		speed := p.spec.AirSpeed
		if state.Ground {
			speed = p.spec.WalkSpeed
		}
		rb.AddForce(cp.Vector{X: input.MoveX * speed})

		if input.Jump && state.CanJump() {
			rb.AddForce(cp.Vector{Y: -p.spec.JumpForce})
			state.JumpCooldown = p.spec.JumpCooldown
		}
	}
	return nil
}
