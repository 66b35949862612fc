package component

// GuardState identifies a guard FSM state.
type GuardState int

const (
	GuardPatrolling GuardState = iota
	GuardSearching
	GuardChasing
)

func (s GuardState) String() string {
	switch s {
	case GuardPatrolling:
		return "patrolling"
	case GuardSearching:
		return "searching"
	case GuardChasing:
		return "chasing"
	default:
		return "unknown"
	}
}
