package main

import (
	"github.com/ebitenui/ebitenui"
)

// NewCaptureUI builds the overlay shown once a guard has caught the player.
// Control has already ended; the level keeps running underneath.
func NewCaptureUI(g *Game) *ebitenui.UI {
	face := menuFace()
	return menuUI("You were captured!", face,
		menuButton("Try again", face, func() {
			if err := g.restart(); err != nil {
				g.log.WithError(err).Error("restart failed")
				g.quit = true
			}
		}),
		menuButton("Quit", face, func() { g.quit = true }),
	)
}
