package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
)

// WorldRayCaster traces segments against the bounds of every rigid body in a
// world by brute force. It needs no physics space, which makes it the
// reference the broad-phase query is checked against.
type WorldRayCaster struct {
	World *ecs.World
}

func (rc WorldRayCaster) RayFirst(from, to cp.Vector, exclude ecs.Entity) (ecs.Entity, bool) {
	if rc.World == nil || from == to {
		return 0, false
	}

	dx := to.X - from.X
	dy := to.Y - from.Y
	closestT := math.Inf(1)
	var hit ecs.Entity
	found := false

	ecs.ForEach(rc.World, component.RigidBodyComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody) {
		if e == exclude {
			return
		}
		bb := rb.Bounds()
		if ok, t := segmentAABBHit(from.X, from.Y, dx, dy, bb.L, bb.B, bb.R, bb.T); ok && t < closestT {
			closestT = t
			hit = e
			found = true
		}
	})
	return hit, found
}

func segmentAABBHit(x0, y0, dx, dy, minX, minY, maxX, maxY float64) (bool, float64) {
	tmin := 0.0
	tmax := 1.0

	if dx != 0 {
		invD := 1.0 / dx
		t1 := (minX - x0) * invD
		t2 := (maxX - x0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if x0 < minX || x0 > maxX {
		return false, 0
	}

	if dy != 0 {
		invD := 1.0 / dy
		t1 := (minY - y0) * invD
		t2 := (maxY - y0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if y0 < minY || y0 > maxY {
		return false, 0
	}

	if tmax >= tmin {
		return true, tmin
	}
	return false, 0
}
