package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/ecs/entity"
	"github.com/milk9111/artsmajor/ecs/system"
	"github.com/milk9111/artsmajor/levels"
	"github.com/milk9111/artsmajor/logger"
	"github.com/milk9111/artsmajor/prefabs"
	"github.com/milk9111/artsmajor/sim"
	"github.com/sirupsen/logrus"
)

type Game struct {
	frames int

	level   *levels.Level
	specs   *prefabs.Specs
	sim     *sim.Sim
	camera  *system.CameraSystem
	render  *system.RenderSystem
	debug   *system.PhysicsDebug
	watcher *prefabs.Watcher

	debugOn bool
	paused  bool
	quit    bool

	pauseUI   *ebitenui.UI
	captureUI *ebitenui.UI
	log       *logrus.Entry
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		return nil, err
	}

	g := &Game{
		level:   lvl,
		specs:   specs,
		render:  system.NewRenderSystem(),
		debugOn: debug,
		log:     logger.For("game"),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			g.log.WithError(err).Warn("spec hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	g.captureUI = NewCaptureUI(g)
	return g, nil
}

// restart rebuilds the level from the loaded map and the current specs.
func (g *Game) restart() error {
	s, err := sim.NewFromLevel(g.level, g.specs)
	if err != nil {
		return err
	}
	if _, err := entity.NewCamera(s.World()); err != nil {
		return err
	}
	g.sim = s
	g.camera = system.NewCameraSystem()
	g.debug = system.NewPhysicsDebug(s.Contacts(), s.Level().Zones)
	g.paused = false
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.debugOn = !g.debugOn
	}

	g.reloadSpecs()

	captured := g.sim.IsPlayerCaptured()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !captured {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	if captured {
		g.captureUI.Update()
		g.sim.SetInput(component.Input{})
	} else {
		g.sim.SetInput(system.PollInput())
	}

	if err := g.sim.Tick(1 / float64(ebiten.TPS())); err != nil {
		return err
	}
	g.debug.Collect()
	g.camera.Update(g.sim.World(), common.BaseWidth, common.BaseHeight)
	return nil
}

// reloadSpecs applies edited spec files between ticks. A bad edit keeps the
// previous values.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Err(); err != nil {
		g.log.WithError(err).Warn("spec watcher error")
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		g.log.WithError(err).WithField("files", changed).Warn("spec reload failed")
		return
	}
	if err := g.sim.ApplySpecs(specs); err != nil {
		g.log.WithError(err).Warn("spec reload rejected")
		return
	}
	g.specs = specs
	g.log.WithField("files", changed).Info("specs reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.sim.World()
	g.render.Draw(w, screen)

	if g.debugOn {
		g.debug.Draw(g.sim.Physics().Space(), w, screen)
		system.DrawPlayerStateDebug(w, g.sim.PlayerState(), screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 10, common.BaseHeight-20)
	}

	if g.sim.PlayerAtEasel() && !g.sim.IsPlayerCaptured() {
		ebitenutil.DebugPrintAt(screen, "At the easel", common.BaseWidth/2-36, 16)
	}

	switch {
	case g.sim.IsPlayerCaptured():
		g.captureUI.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
