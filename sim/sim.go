// Package sim drives one level: it owns the world, the physics space, the
// contact stream and the fixed system pipeline, and advances them one tick
// at a time.
package sim

import (
	"fmt"
	"math"

	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/ecs/entity"
	"github.com/milk9111/artsmajor/ecs/system"
	"github.com/milk9111/artsmajor/levels"
	"github.com/milk9111/artsmajor/logger"
	"github.com/milk9111/artsmajor/prefabs"
	"github.com/sirupsen/logrus"
)

// Stage names in run order.
const (
	StageCollisionState = "collision_state"
	StagePlayer         = "player"
	StageGravity        = "gravity"
	StageGuardAI        = "guard_ai"
	StageSolver         = "solver"
	StageContacts       = "contacts"
	StageNextFrame      = "next_frame"
)

type Sim struct {
	world     *ecs.World
	specs     *prefabs.Specs
	layout    *levels.Layout
	level     *entity.Level
	physics   *system.PhysicsSystem
	contacts  *ecs.EventChannel[system.ContactEvent]
	player    *system.PlayerState
	scheduler *ecs.Scheduler
	input     component.Input
	frame     ecs.Frame
	log       *logrus.Entry
}

// NewFromLevel builds a simulation from a decoded map.
func NewFromLevel(lvl *levels.Level, specs *prefabs.Specs) (*Sim, error) {
	if lvl == nil {
		return nil, fmt.Errorf("sim: nil level")
	}
	layout, err := lvl.Layout()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return New(layout, specs)
}

// New builds the world for layout and assembles the pipeline. specs is
// copied; later changes go through ApplySpecs.
func New(layout *levels.Layout, specs *prefabs.Specs) (*Sim, error) {
	if layout == nil {
		return nil, fmt.Errorf("sim: nil layout")
	}
	if specs == nil {
		specs = prefabs.DefaultSpecs()
	}
	if err := specs.Physics.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	owned := *specs

	s := &Sim{
		world:    ecs.NewWorld(),
		specs:    &owned,
		layout:   layout,
		contacts: ecs.NewEventChannel[system.ContactEvent](0),
		player:   system.NewPlayerState(),
		log:      logger.Log.WithFields(logrus.Fields{"component": "sim"}),
	}

	level, err := entity.LoadLevelToWorld(s.world, layout, s.specs)
	if err != nil {
		return nil, fmt.Errorf("sim: build level: %w", err)
	}
	s.level = level

	s.physics = system.NewPhysicsSystem(&s.specs.Physics)
	s.physics.Sync(s.world)

	if err := s.assemble(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"guards":       len(level.Guards),
		"walls":        len(level.Walls),
		"jump_zones":   len(level.Zones.Jump),
		"turn_zones":   len(level.Zones.TurnAround),
		"player_spawn": layout.PlayerSpawn,
	}).Info("level loaded")
	return s, nil
}

func (s *Sim) assemble() error {
	sched := ecs.NewScheduler()
	stages := []struct {
		name   string
		system ecs.System
		deps   []string
	}{
		{StageCollisionState, system.NewCollisionStateSystem(&s.specs.Physics, s.contacts), nil},
		{StagePlayer, system.NewPlayerControllerSystem(&s.specs.Player, s.player), []string{StageCollisionState}},
		{StageGravity, system.NewPhysicsExtrasSystem(&s.specs.Physics), []string{StageCollisionState}},
		{StageGuardAI, system.NewGuardAISystem(&s.specs.Guard, s.player, s.player, s.level.Zones, s.physics), []string{StageCollisionState, StagePlayer}},
		{StageSolver, s.physics, []string{StagePlayer, StageGravity, StageGuardAI}},
		{StageContacts, system.NewContactEventSystem(s.contacts), []string{StageSolver}},
		{StageNextFrame, system.NewNextFrameSystem(), []string{StageContacts}},
	}
	for _, st := range stages {
		if err := sched.Add(st.name, st.system, st.deps...); err != nil {
			return fmt.Errorf("sim: assemble pipeline: %w", err)
		}
	}
	s.scheduler = sched
	return nil
}

// SetInput stores the control state used by the following ticks.
func (s *Sim) SetInput(in component.Input) {
	s.input = in.Clamped()
}

// Tick advances the simulation by dt seconds. Non-positive dt is ignored;
// other values are clamped to the configured delta range. Once the player is
// captured input is ignored but the world keeps running.
func (s *Sim) Tick(dt float64) error {
	if s == nil || dt <= 0 || math.IsNaN(dt) {
		return nil
	}
	dt = common.Clamp(dt, s.specs.Physics.MinDelta, s.specs.Physics.MaxDelta)

	input := s.input
	if s.player.Captured() {
		input = component.Input{}
	}
	s.frame = ecs.Frame{Dt: dt, Input: input, Index: s.frame.Index + 1}
	if err := s.scheduler.Update(s.world, &s.frame); err != nil {
		return fmt.Errorf("sim: tick %d: %w", s.frame.Index, err)
	}
	return nil
}

func (s *Sim) IsPlayerCaptured() bool {
	return s.player.Captured()
}

// PlayerAtEasel reports whether the player's center lies inside the easel zone.
func (s *Sim) PlayerAtEasel() bool {
	rb, ok := ecs.Get(s.world, s.level.Player, component.RigidBodyComponent)
	if !ok {
		return false
	}
	return s.level.Zones.Easel.ContainsVect(rb.Position())
}

// ApplySpecs replaces the tuning values. Body sizes and masses only apply to
// bodies created afterwards; everything else takes effect on the next tick.
func (s *Sim) ApplySpecs(specs *prefabs.Specs) error {
	if specs == nil {
		return nil
	}
	if err := specs.Physics.Validate(); err != nil {
		return fmt.Errorf("sim: apply specs: %w", err)
	}
	*s.specs = *specs
	s.log.Info("specs applied")
	return nil
}

func (s *Sim) World() *ecs.World                                { return s.world }
func (s *Sim) Physics() *system.PhysicsSystem                   { return s.physics }
func (s *Sim) Contacts() *ecs.EventChannel[system.ContactEvent] { return s.contacts }
func (s *Sim) PlayerState() *system.PlayerState                 { return s.player }
func (s *Sim) Level() *entity.Level                             { return s.level }
func (s *Sim) Layout() *levels.Layout                           { return s.layout }
func (s *Sim) Specs() prefabs.Specs                             { return *s.specs }

// Frame returns the frame passed to the last tick.
func (s *Sim) Frame() ecs.Frame { return s.frame }

// Stages returns the pipeline stage names in run order.
func (s *Sim) Stages() []string { return s.scheduler.Names() }
