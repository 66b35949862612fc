package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/prefabs"
)

var ErrNonFiniteBody = errors.New("physics: non-finite body state")

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeSolid
)

// PhysicsSystem owns the Chipmunk2D space. It creates bodies for new rigid
// bodies, hands their accumulated forces to the solver and steps the space.
// The step integrates velocities, re-sorts the broad phase, runs the narrow
// phase and resolves contacts.
type PhysicsSystem struct {
	space    *cp.Space
	spec     *prefabs.PhysicsSpec
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(spec *prefabs.PhysicsSpec) *PhysicsSystem {
	if spec == nil {
		def := prefabs.DefaultPhysicsSpec()
		spec = &def
	}
	space := cp.NewSpace()
	if spec.Iterations > 0 {
		space.Iterations = spec.Iterations
	}
	// gravity is applied as a force by PhysicsExtrasSystem
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:    space,
		spec:     spec,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World, f *ecs.Frame) error {
	if ps == nil || w == nil || f == nil {
		return nil
	}

	ps.Sync(w)

	var err error
	ecs.ForEach(w, component.RigidBodyComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody) {
		if rb.Static || rb.Body == nil || err != nil {
			return
		}
		if !common.Finite(rb.Force.X, rb.Force.Y) {
			err = fmt.Errorf("%w: entity %s force %v", ErrNonFiniteBody, e, rb.Force)
			return
		}
		rb.Body.SetForce(rb.Force)
	})
	if err != nil {
		return err
	}

	ps.space.Step(f.Dt)
	return nil
}

// Sync creates bodies for rigid bodies added since the last call and removes
// bodies whose entity is gone.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)

	entities := w.Query(component.RigidBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
		if !ok || rb.Body != nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		info := ps.createBodyInfo(e, *transform, *rb)
		ps.entities[e] = info
		rb.Body = info.body
		rb.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform component.Transform, rb component.RigidBody) *bodyInfo {
	center := cp.Vector{X: transform.X, Y: transform.Y}

	if rb.Static {
		bb := cp.NewBBForExtents(center, rb.Width/2, rb.Height/2)
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(ps.spec.WallFriction)
		shape.SetCollisionType(collisionTypeSolid)
		shape.UserData = e
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := rb.Mass
	if mass <= 0 {
		mass = 1
	}

	// infinite moment keeps boxes upright
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(center)
	body.UserData = e

	shape := cp.NewBox(body, rb.Width, rb.Height, 0)
	shape.SetFriction(rb.Friction)
	shape.SetCollisionType(collisionTypeActor)
	shape.UserData = e

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.RigidBodyComponent) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// RayFirst returns the entity owning the nearest shape crossed by the segment
// from -> to, ignoring exclude's own shape.
func (ps *PhysicsSystem) RayFirst(from, to cp.Vector, exclude ecs.Entity) (ecs.Entity, bool) {
	if ps == nil || ps.space == nil || from == to {
		return 0, false
	}

	best := math.Inf(1)
	var hit ecs.Entity
	found := false
	ps.space.SegmentQuery(from, to, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _, _ cp.Vector, alpha float64, _ interface{}) {
		e := shapeEntity(shape)
		if e == exclude || !e.Valid() {
			return
		}
		if alpha < best || (alpha == best && e < hit) {
			best = alpha
			hit = e
			found = true
		}
	}, nil)
	return hit, found
}

// NextFrameSystem clears force accumulators, checks the solver output and
// copies poses into transforms for rendering.
type NextFrameSystem struct{}

func NewNextFrameSystem() *NextFrameSystem {
	return &NextFrameSystem{}
}

func (NextFrameSystem) Update(w *ecs.World, _ *ecs.Frame) error {
	if w == nil {
		return nil
	}

	var err error
	ecs.ForEach(w, component.RigidBodyComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody) {
		rb.Force = cp.Vector{}
		if rb.Static || rb.Body == nil || err != nil {
			return
		}
		pos := rb.Body.Position()
		vel := rb.Body.Velocity()
		if !common.Finite(pos.X, pos.Y, vel.X, vel.Y) {
			err = fmt.Errorf("%w: entity %s position %v velocity %v", ErrNonFiniteBody, e, pos, vel)
			return
		}
		if transform, ok := ecs.Get(w, e, component.TransformComponent); ok {
			transform.X = pos.X
			transform.Y = pos.Y
			transform.Rotation = rb.Body.Angle()
		}
	})
	return err
}
