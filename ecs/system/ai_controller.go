package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/logger"
	"github.com/milk9111/artsmajor/prefabs"
	"github.com/sirupsen/logrus"
)

// visionReach scales the guard-to-player displacement into the ray length so
// the ray always ends past the player's center.
const visionReach = 2.0

// RayCaster answers nearest-hit segment queries against the broad phase.
type RayCaster interface {
	RayFirst(from, to cp.Vector, exclude ecs.Entity) (ecs.Entity, bool)
}

// GuardAISystem runs the patrol/search/chase state machine for every guard.
// It must run after the player controller so the player snapshot is current.
type GuardAISystem struct {
	spec     *prefabs.GuardSpec
	player   PlayerView
	latch    CaptureLatch
	zones    *component.Zones
	rays     RayCaster
	captured bool
	log      *logrus.Entry
}

func NewGuardAISystem(spec *prefabs.GuardSpec, player PlayerView, latch CaptureLatch, zones *component.Zones, rays RayCaster) *GuardAISystem {
	if spec == nil {
		def := prefabs.DefaultGuardSpec()
		spec = &def
	}
	if zones == nil {
		zones = &component.Zones{}
	}
	return &GuardAISystem{
		spec:   spec,
		player: player,
		latch:  latch,
		zones:  zones,
		rays:   rays,
		log:    logger.Log.WithFields(logrus.Fields{"component": "guard_ai"}),
	}
}

func (g *GuardAISystem) Update(w *ecs.World, f *ecs.Frame) error {
	if g == nil || w == nil || f == nil || g.player == nil {
		return nil
	}

	entities := w.Query(
		component.GuardAIComponent.Kind(),
		component.DirectionalComponent.Kind(),
		component.CollisionStateComponent.Kind(),
		component.RigidBodyComponent.Kind(),
	)
	for _, e := range entities {
		ai, _ := ecs.Get(w, e, component.GuardAIComponent)
		dir, _ := ecs.Get(w, e, component.DirectionalComponent)
		state, _ := ecs.Get(w, e, component.CollisionStateComponent)
		rb, _ := ecs.Get(w, e, component.RigidBodyComponent)
		if ai == nil || dir == nil || state == nil || rb == nil {
			continue
		}
		g.think(e, ai, dir, state, rb, f.Dt)
	}
	return nil
}

func (g *GuardAISystem) think(e ecs.Entity, ai *component.GuardAI, dir *component.Directional, state *component.CollisionState, rb *component.RigidBody, dt float64) {
	pos := rb.Position()
	playerPos := g.player.Position()
	toPlayer := playerPos.Sub(pos)

	foundPlayer := false
	if toPlayer.X*dir.Multiplier() > 0 || ai.State != component.GuardPatrolling {
		foundPlayer = g.canSee(e, pos, rb.Height, toPlayer)
	}

	ai.TurnAroundCooldown = common.DecayToZero(ai.TurnAroundCooldown, dt)

	playerDirection := common.DirectionTowards(pos.X, playerPos.X)
	bound := rb.Bounds()
	prev := ai.State

	switch ai.State {
	case component.GuardSearching:
		if foundPlayer {
			ai.State = component.GuardChasing
			break
		}
		if state.Ground {
			g.jumpZones(rb, state, bound, playerDirection, true)
		}

	case component.GuardChasing:
		if !foundPlayer {
			ai.State = component.GuardSearching
			break
		}
		if bound.Intersects(g.player.Bounds()) {
			g.capture(e)
		}

		playerAbove := playerPos.Y < pos.Y
		speed := g.spec.ChaseAirSpeed
		if state.Ground {
			speed = g.spec.ChaseSpeed
		}
		rb.AddForce(cp.Vector{X: playerDirection.Multiplier() * speed})

		if state.Ground {
			g.jumpZones(rb, state, bound, playerDirection, playerAbove)
		}

	case component.GuardPatrolling:
		if foundPlayer {
			ai.State = component.GuardChasing
			break
		}
		speed := g.spec.PatrolAirSpeed
		if state.Ground {
			speed = g.spec.PatrolSpeed
		}
		rb.AddForce(cp.Vector{X: dir.Multiplier() * speed})

		for _, box := range g.zones.TurnAround {
			if bound.Intersects(box) && ai.TurnAroundCooldown <= component.JumpEpsilon {
				dir.Invert()
				ai.TurnAroundCooldown = g.spec.TurnAroundCooldown
			}
		}
	}

	if prev != ai.State {
		g.log.WithFields(logrus.Fields{
			"entity": e.String(),
			"from":   prev.String(),
			"to":     ai.State.String(),
		}).Debug("guard state changed")
	}
}

// canSee casts from the guard's eyes toward the player and reports whether the
// player is the first thing hit.
func (g *GuardAISystem) canSee(e ecs.Entity, pos cp.Vector, height float64, toPlayer cp.Vector) bool {
	if g.rays == nil || (toPlayer.X == 0 && toPlayer.Y == 0) {
		return false
	}
	eye := cp.Vector{X: pos.X, Y: pos.Y - height*g.spec.EyeOffset}
	hit, ok := g.rays.RayFirst(eye, eye.Add(toPlayer.Mult(visionReach)), e)
	return ok && hit == g.player.Entity()
}

// jumpZones jumps once per matching zone while the cooldown allows; the first
// jump resets the cooldown so later zones in the same tick are ignored.
func (g *GuardAISystem) jumpZones(rb *component.RigidBody, state *component.CollisionState, bound cp.BB, toward common.Direction, allowed bool) {
	if !allowed {
		return
	}
	for _, zone := range g.zones.Jump {
		if !bound.Intersects(zone.Box) {
			continue
		}
		if zone.Direction == toward && state.JumpCooldown <= component.JumpEpsilon {
			rb.AddForce(cp.Vector{Y: -g.spec.JumpForce})
			state.JumpCooldown = g.spec.JumpCooldown
		}
	}
}

func (g *GuardAISystem) capture(e ecs.Entity) {
	if g.latch != nil {
		g.latch.Capture()
	}
	if !g.captured {
		g.captured = true
		g.log.WithField("entity", e.String()).Info("player captured")
	}
}
