package component

import "github.com/jakecoffman/cp"

// GuardAI is the per-guard controller state. Spawn is fixed at level load.
type GuardAI struct {
	State              GuardState
	Spawn              cp.Vector
	TurnAroundCooldown float64
}

// NewGuardAI returns a patrolling guard spawned at spawn.
func NewGuardAI(spawn cp.Vector) GuardAI {
	return GuardAI{State: GuardPatrolling, Spawn: spawn}
}

var GuardAIComponent = NewComponent[GuardAI]()
