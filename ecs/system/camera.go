package system

import (
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
)

// CameraSystem keeps the camera centered on the player, eased by the camera's
// smoothness and clamped to the level bounds. Positions are in tile units.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update moves the camera for a viewport of viewW x viewH screen pixels.
func (cs *CameraSystem) Update(w *ecs.World, viewW, viewH float64) {
	if cs == nil || w == nil {
		return
	}
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}
	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		if target, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			cs.targetEntity = target
		}
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}

	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	halfW := viewW / zoom / 2
	halfH := viewH / zoom / 2
	goalX := target.X - halfW
	goalY := target.Y - halfH

	if bounds, ok := levelBounds(w); ok {
		goalX = clampAxis(goalX, bounds.Width, halfW*2)
		goalY = clampAxis(goalY, bounds.Height, halfH*2)
	}

	t := 1.0
	if cam.Smoothness > 0 && cam.Smoothness < 1 {
		t = cam.Smoothness
	}
	cam.X = common.Lerp(cam.X, goalX, t)
	cam.Y = common.Lerp(cam.Y, goalY, t)
}

// clampAxis keeps a view of length view inside [0, extent]; a view larger
// than the level is centered.
func clampAxis(pos, extent, view float64) float64 {
	if extent <= 0 {
		return pos
	}
	if view >= extent {
		return (extent - view) / 2
	}
	return common.Clamp(pos, 0, extent-view)
}

func levelBounds(w *ecs.World) (*component.LevelBounds, bool) {
	e, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LevelBoundsComponent)
}

// cameraTransform returns the camera's top-left corner and pixels per tile.
func cameraTransform(w *ecs.World) (float64, float64, float64) {
	camX, camY := 0.0, 0.0
	zoom := float64(common.TileSize * common.GlobalScale)
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return camX, camY, zoom
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent); ok {
		camX = cam.X
		camY = cam.Y
		if cam.Zoom > 0 {
			zoom = cam.Zoom
		}
	}
	return camX, camY, zoom
}
