package system

import (
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/prefabs"
)

// CollisionStateSystem rebuilds footing at the start of every tick: ground is
// cleared, jump cooldowns decay, and contacts from the previous step mark
// entities standing on something as grounded.
type CollisionStateSystem struct {
	spec     *prefabs.PhysicsSpec
	contacts *ecs.EventChannel[ContactEvent]
	reader   ecs.ReaderID
}

func NewCollisionStateSystem(spec *prefabs.PhysicsSpec, contacts *ecs.EventChannel[ContactEvent]) *CollisionStateSystem {
	cs := &CollisionStateSystem{spec: spec, contacts: contacts}
	if contacts != nil {
		cs.reader = contacts.Register()
	}
	return cs
}

func (cs *CollisionStateSystem) Update(w *ecs.World, f *ecs.Frame) error {
	if cs == nil || w == nil || f == nil {
		return nil
	}

	ecs.ForEach(w, component.CollisionStateComponent.Kind(), func(_ ecs.Entity, state *component.CollisionState) {
		state.Ground = false
		state.JumpCooldown = common.DecayToZero(state.JumpCooldown, f.Dt)
	})

	if cs.contacts == nil {
		return nil
	}
	threshold := cs.groundThreshold()
	for _, ev := range cs.contacts.Read(cs.reader) {
		state, ok := ecs.Get(w, ev.Entity, component.CollisionStateComponent)
		if !ok {
			continue
		}
		// y grows downward, so a normal toward the other body with positive y
		// means the other body is underneath
		if ev.Normal.Y > threshold {
			state.Ground = true
		}
	}
	return nil
}

func (cs *CollisionStateSystem) groundThreshold() float64 {
	if cs.spec == nil {
		return prefabs.DefaultPhysicsSpec().GroundThreshold
	}
	return cs.spec.GroundThreshold
}
