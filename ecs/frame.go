package ecs

import "github.com/milk9111/artsmajor/ecs/component"

// Frame carries the per-tick inputs every system sees.
type Frame struct {
	// Dt is the clamped elapsed time in seconds.
	Dt    float64
	Input component.Input
	// Index counts ticks since the world was built, starting at 1.
	Index uint64
}
