// Package game adapts the scene stack to ebiten.Game.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/scene"
)

// Game runs one scene at a time at a fixed tick rate
type Game struct {
	scene  scene.Scene
	width  int
	height int
	dt     float64
}

// New enters initial and returns a game ticking tps times per second.
// tps <= 0 uses ebiten's default rate.
func New(initial scene.Scene, width, height, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{width: width, height: height, dt: 1 / float64(tps)}
	g.switchTo(initial)
	return g
}

func (g *Game) switchTo(next scene.Scene) {
	if g.scene != nil {
		g.scene.OnExit()
	}
	g.scene = next
	g.scene.OnEnter()
}

// Update ticks the active scene. scene.ErrQuit lets the scene clean up
// and then stops the ebiten loop without an error.
func (g *Game) Update() error {
	next, err := g.scene.Update(g.dt)
	switch {
	case errors.Is(err, scene.ErrQuit):
		g.scene.OnExit()
		return ebiten.Termination
	case err != nil:
		return err
	case next != nil:
		g.switchTo(next)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen at the arena size; ebiten scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// DT is the tick length handed to scenes, in seconds
func (g *Game) DT() float64 {
	return g.dt
}
