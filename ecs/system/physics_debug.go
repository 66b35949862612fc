package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	debugDotSize      = 4
	debugNormalLength = 0.75
)

// PhysicsDebug is the F12 overlay. It reads the contact stream through its
// own cursor, so draining it never affects the collision state tracker.
type PhysicsDebug struct {
	contacts *ecs.EventChannel[ContactEvent]
	reader   ecs.ReaderID
	recent   []ContactEvent
	zones    *component.Zones
}

func NewPhysicsDebug(contacts *ecs.EventChannel[ContactEvent], zones *component.Zones) *PhysicsDebug {
	d := &PhysicsDebug{contacts: contacts, zones: zones}
	if contacts != nil {
		d.reader = contacts.Register()
	}
	return d
}

// Collect keeps the contacts published since the last call. Call it after
// every tick, even while the overlay is hidden.
func (d *PhysicsDebug) Collect() {
	if d == nil || d.contacts == nil {
		return
	}
	d.recent = append(d.recent[:0], d.contacts.Read(d.reader)...)
}

func (d *PhysicsDebug) Recent() []ContactEvent {
	if d == nil {
		return nil
	}
	return d.recent
}

func (d *PhysicsDebug) Draw(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if d == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := cameraTransform(w)
	drawer := &physicsDebugDrawer{
		screen: screen,
		camX:   camX,
		camY:   camY,
		zoom:   zoom,
	}

	if d.zones != nil {
		for _, box := range d.zones.TurnAround {
			drawer.strokeBB(box, colornames.Orange)
		}
		for _, zone := range d.zones.Jump {
			drawer.strokeBB(zone.Box, colornames.Deepskyblue)
		}
		drawer.strokeBB(d.zones.Easel, colornames.Gold)
	}

	if space != nil {
		cp.DrawSpace(space, drawer)
	}

	for _, ev := range d.recent {
		end := ev.Point.Add(ev.Normal.Mult(debugNormalLength))
		drawer.line(ev.Point, end, cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1})
	}

	ecs.ForEach2(w, component.GuardAIComponent.Kind(), component.RigidBodyComponent.Kind(), func(_ ecs.Entity, ai *component.GuardAI, rb *component.RigidBody) {
		bb := rb.Bounds()
		x, y := drawer.toScreen(cp.Vector{X: bb.L, Y: bb.B})
		ebitenutil.DebugPrintAt(screen, ai.State.String(), int(x), int(y)-16)
	})
}

// DrawPlayerStateDebug prints the player's footing in the screen corner.
func DrawPlayerStateDebug(w *ecs.World, state *PlayerState, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	cs, ok := ecs.Get(w, player, component.CollisionStateComponent)
	if !ok {
		return
	}
	captured := false
	pos := cp.Vector{}
	if state != nil {
		captured = state.Captured()
		pos = state.Position()
	}
	text := fmt.Sprintf("Pos: %.2f, %.2f\nGrounded: %v\nJumpCooldown: %.2f\nCaptured: %v", pos.X, pos.Y, cs.Ground, cs.JumpCooldown, captured)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

// physicsDebugDrawer implements cp.Drawer on top of ebiten's vector package.
type physicsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
	zoom   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, _ cp.FColor, _ interface{}) {
	x, y := d.toScreen(pos)
	vector.StrokeCircle(d.screen, float32(x), float32(y), float32(radius*d.zoom), 1, toNRGBA(outline), true)
	d.line(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	d.line(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, _ cp.FColor, _ interface{}) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	width := float32(math.Max(1, 2*radius*d.zoom))
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), width, toNRGBA(outline), true)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	if count <= 1 || count > len(verts) {
		return
	}
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], outline)
	}
}

// DrawDot marks a contact point; size is in screen pixels.
func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.toScreen(pos)
	vector.DrawFilledCircle(d.screen, float32(x), float32(y), float32(size/2), toNRGBA(fill), true)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(*cp.Shape, interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) line(a, b cp.Vector, clr cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(clr), true)
}

func (d *physicsDebugDrawer) strokeBB(bb cp.BB, clr color.Color) {
	x, y := d.toScreen(cp.Vector{X: bb.L, Y: bb.B})
	w := (bb.R - bb.L) * d.zoom
	h := (bb.T - bb.B) * d.zoom
	if w <= 0 || h <= 0 {
		return
	}
	vector.StrokeRect(d.screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	return (v.X - d.camX) * d.zoom, (v.Y - d.camY) * d.zoom
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(common.Clamp(float64(c.R), 0, 1) * 255),
		G: uint8(common.Clamp(float64(c.G), 0, 1) * 255),
		B: uint8(common.Clamp(float64(c.B), 0, 1) * 255),
		A: uint8(common.Clamp(float64(c.A), 0, 1) * 255),
	}
}
