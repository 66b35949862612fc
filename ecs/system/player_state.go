package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs"
)

// PlayerState is the per-tick snapshot of the player shared between systems.
// The player controller writes the pose through PlayerPublisher; guards read
// it through PlayerView and may only latch the capture flag.
type PlayerState struct {
	entity   ecs.Entity
	position cp.Vector
	bounds   cp.BB
	captured bool
}

// PlayerPublisher is the write side handed to the player controller.
type PlayerPublisher interface {
	Publish(e ecs.Entity, position cp.Vector, bounds cp.BB)
}

// PlayerView is the read side handed to guards.
type PlayerView interface {
	Entity() ecs.Entity
	Position() cp.Vector
	Bounds() cp.BB
}

// CaptureLatch records that a guard caught the player. It never resets.
type CaptureLatch interface {
	Capture()
}

func NewPlayerState() *PlayerState {
	return &PlayerState{}
}

func (s *PlayerState) Publish(e ecs.Entity, position cp.Vector, bounds cp.BB) {
	s.entity = e
	s.position = position
	s.bounds = bounds
}

func (s *PlayerState) Entity() ecs.Entity  { return s.entity }
func (s *PlayerState) Position() cp.Vector { return s.position }
func (s *PlayerState) Bounds() cp.BB       { return s.bounds }

func (s *PlayerState) Capture() {
	s.captured = true
}

func (s *PlayerState) Captured() bool {
	return s.captured
}
