package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/scene"
)

// stubScene counts lifecycle calls and returns scripted results
type stubScene struct {
	name    string
	log     *[]string
	updates int
	draws   int
	dt      float64
	next    scene.Scene
	err     error
}

func (s *stubScene) Update(dt float64) (scene.Scene, error) {
	s.updates++
	s.dt = dt
	return s.next, s.err
}

func (s *stubScene) Draw(*ebiten.Image) { s.draws++ }
func (s *stubScene) OnEnter()           { s.record("enter") }
func (s *stubScene) OnExit()            { s.record("exit") }

func (s *stubScene) record(event string) {
	if s.log != nil {
		*s.log = append(*s.log, s.name+":"+event)
	}
}

func TestNew(t *testing.T) {
	var events []string
	initial := &stubScene{name: "play", log: &events}

	g := New(initial, 1200, 1000, 60)

	assert.Equal(t, []string{"play:enter"}, events)
	assert.InDelta(t, 1.0/60.0, g.DT(), 1e-12)
}

func TestNew_DefaultTPS(t *testing.T) {
	g := New(&stubScene{}, 1200, 1000, 0)

	assert.InDelta(t, 1.0/float64(ebiten.DefaultTPS), g.DT(), 1e-12)
}

func TestGame_UpdatePassesTickLength(t *testing.T) {
	s := &stubScene{}
	g := New(s, 1200, 1000, 30)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}

	assert.Equal(t, 5, s.updates)
	assert.InDelta(t, 1.0/30.0, s.dt, 1e-12)
}

func TestGame_Draw(t *testing.T) {
	s := &stubScene{}
	g := New(s, 320, 240, 60)

	g.Draw(ebiten.NewImage(320, 240))

	assert.Equal(t, 1, s.draws)
}

func TestGame_LayoutIgnoresWindowSize(t *testing.T) {
	g := New(&stubScene{}, 1200, 1000, 60)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 1000, h)
}

func TestGame_SceneTransition(t *testing.T) {
	var events []string
	second := &stubScene{name: "second", log: &events}
	first := &stubScene{name: "first", log: &events, next: second}
	g := New(first, 1200, 1000, 60)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, []string{"first:enter", "first:exit", "second:enter"}, events)
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 1, second.updates)
}

func TestGame_UpdateError(t *testing.T) {
	var events []string
	s := &stubScene{name: "play", log: &events, err: assert.AnError}
	g := New(s, 1200, 1000, 60)

	assert.ErrorIs(t, g.Update(), assert.AnError)
	assert.Equal(t, []string{"play:enter"}, events, "a failing scene is not exited")
}

func TestGame_Quit(t *testing.T) {
	var events []string
	s := &stubScene{name: "play", log: &events, err: scene.ErrQuit}
	g := New(s, 1200, 1000, 60)

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, []string{"play:enter", "play:exit"}, events, "quitting scene gets to clean up")
}
