package entity

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/prefabs"
	"golang.org/x/image/colornames"
)

func NewGuardAt(w *ecs.World, spec *prefabs.GuardSpec, pos cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		def := prefabs.DefaultGuardSpec()
		spec = &def
	}
	e := w.CreateEntity()
	if err := addActor(w, e, spec.Body, pos, spec.Color.Or(colornames.Firebrick)); err != nil {
		return 0, fmt.Errorf("guard: %w", err)
	}
	if err := ecs.Add(w, e, component.GuardTagComponent, component.GuardTag{}); err != nil {
		return 0, fmt.Errorf("guard: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.GuardAIComponent, component.NewGuardAI(pos)); err != nil {
		return 0, fmt.Errorf("guard: add ai: %w", err)
	}
	facing := common.Left
	if strings.EqualFold(spec.Facing, "right") {
		facing = common.Right
	}
	if err := ecs.Add(w, e, component.DirectionalComponent, component.Directional{Direction: facing}); err != nil {
		return 0, fmt.Errorf("guard: add directional: %w", err)
	}
	return e, nil
}
