package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
)

// ContactEvent describes one touching pair from the last solver step, seen
// from Entity. Normal points from Entity toward Other.
type ContactEvent struct {
	Entity ecs.Entity
	Other  ecs.Entity
	Normal cp.Vector
	Point  cp.Vector
	Depth  float64
}

// ContactEventSystem publishes the contacts resolved by the last step. Every
// dynamic body reports each arbiter it takes part in, so a pair of dynamic
// bodies produces one event per side.
type ContactEventSystem struct {
	contacts *ecs.EventChannel[ContactEvent]
	buf      []ContactEvent
}

func NewContactEventSystem(contacts *ecs.EventChannel[ContactEvent]) *ContactEventSystem {
	return &ContactEventSystem{contacts: contacts}
}

func (cs *ContactEventSystem) Update(w *ecs.World, _ *ecs.Frame) error {
	if cs == nil || cs.contacts == nil || w == nil {
		return nil
	}

	cs.buf = cs.buf[:0]
	ecs.ForEach(w, component.RigidBodyComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody) {
		if rb.Static || rb.Body == nil {
			return
		}
		rb.Body.EachArbiter(func(arb *cp.Arbiter) {
			if arb.Count() == 0 {
				return
			}
			_, other := arb.Shapes()
			set := arb.ContactPointSet()
			cs.buf = append(cs.buf, ContactEvent{
				Entity: e,
				Other:  shapeEntity(other),
				Normal: set.Normal,
				Point:  set.Points[0].PointA,
				Depth:  set.Points[0].Distance,
			})
		})
	})
	cs.contacts.Publish(cs.buf...)
	return nil
}

// shapeEntity returns the entity a shape was created for, or the zero entity
// for shapes the physics system does not own.
func shapeEntity(shape *cp.Shape) ecs.Entity {
	if shape == nil {
		return 0
	}
	e, _ := shape.UserData.(ecs.Entity)
	return e
}
