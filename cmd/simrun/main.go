// Command simrun plays a level headless with a fixed input and reports how it
// ended. It is used to smoke-test levels and tuning changes.
package main

import (
	"flag"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs/component"
	"github.com/milk9111/artsmajor/levels"
	"github.com/milk9111/artsmajor/logger"
	"github.com/milk9111/artsmajor/prefabs"
	"github.com/milk9111/artsmajor/sim"
	"github.com/sirupsen/logrus"
)

type options struct {
	ticks     int
	dt        float64
	input     component.Input
	stopEarly bool
}

type result struct {
	Ticks      int
	Captured   bool
	CapturedAt int
	AtEasel    bool
	Player     cp.Vector
}

func main() {
	levelName := flag.String("level", "level_1", "level name in levels/ (basename, .json optional)")
	ticks := flag.Int("ticks", 600, "number of ticks to run")
	dt := flag.Float64("dt", 1.0/60, "seconds per tick")
	move := flag.Float64("move", 0, "horizontal input held for the whole run (-1, 0 or 1)")
	jump := flag.Bool("jump", false, "hold jump for the whole run")
	stop := flag.Bool("stop", false, "stop at capture or on reaching the easel")
	logLevel := flag.String("log-level", "", "log level (defaults to LOG_LEVEL, then info)")
	flag.Parse()

	logger.Init(*logLevel, "")
	log := logger.For("simrun")

	lvl, err := levels.Load(*levelName)
	if err != nil {
		log.WithError(err).Fatal("failed to load level")
	}
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		log.WithError(err).Fatal("failed to load specs")
	}
	s, err := sim.NewFromLevel(lvl, specs)
	if err != nil {
		log.WithError(err).Fatal("failed to build level")
	}

	res, err := run(s, options{
		ticks:     *ticks,
		dt:        *dt,
		input:     component.Input{MoveX: *move, Jump: *jump},
		stopEarly: *stop,
	})
	fields := logrus.Fields{
		"ticks":       res.Ticks,
		"captured":    res.Captured,
		"captured_at": res.CapturedAt,
		"at_easel":    res.AtEasel,
		"player_x":    res.Player.X,
		"player_y":    res.Player.Y,
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Fatal("simulation failed")
	}
	log.WithFields(fields).Info("run finished")
}

func run(s *sim.Sim, opts options) (result, error) {
	var res result
	s.SetInput(opts.input)

	for res.Ticks < opts.ticks {
		if err := s.Tick(opts.dt); err != nil {
			return res, err
		}
		res.Ticks++

		if !res.Captured && s.IsPlayerCaptured() {
			res.Captured = true
			res.CapturedAt = res.Ticks
		}
		res.AtEasel = s.PlayerAtEasel()
		if opts.stopEarly && (res.Captured || res.AtEasel) {
			break
		}
	}

	res.Player = s.PlayerState().Position()
	return res, nil
}
