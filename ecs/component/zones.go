package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/common"
)

// JumpZone makes a guard jump when it stands inside Box and its target lies
// in Direction.
type JumpZone struct {
	Direction common.Direction
	Box       cp.BB
}

// Zones is the static, level-scoped zone data. It is never mutated after the
// level is built.
type Zones struct {
	Jump       []JumpZone
	TurnAround []cp.BB
	Easel      cp.BB
}
