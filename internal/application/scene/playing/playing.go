// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/scene"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/state"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/system"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorProjectile = color.RGBA{230, 230, 230, 255}
	colorHitbox     = color.RGBA{255, 255, 0, 160}

	// indexed by rank
	colorBall = [entity.MaxRank + 1]color.RGBA{
		{},
		{120, 200, 255, 255},
		{90, 220, 140, 255},
		{250, 210, 70, 255},
		{250, 140, 60, 255},
		{230, 70, 80, 255},
	}
)

// popHitstop is how many frames the world freezes after a pop
const popHitstop = 3

// Options configures a Playing scene
type Options struct {
	Sim        *system.Simulation
	Keys       system.KeyReader // nil reads the live keyboard
	Bindings   system.KeyBindings
	Logger     *log.Logger // nil discards
	RecordPath string      // empty disables recording
	ConfigName string
}

// Playing is the main gameplay scene
type Playing struct {
	sim         *system.Simulation
	keys        system.KeyReader
	inputSystem *system.InputSystem
	logger      *log.Logger
	state       state.GameState
	screenW     int
	screenH     int

	// Feedback
	hitstopFrames int
	pendingFire   bool // fire pressed during hitstop
	showHitboxes  bool

	recorder *Recorder // nil when not recording
}

// New creates a new Playing scene.
// If RecordPath is not empty, gameplay will be recorded.
func New(opts Options) *Playing {
	keys := opts.Keys
	if keys == nil {
		keys = system.LiveKeys()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	arena := opts.Sim.Config().Arena

	p := &Playing{
		sim:         opts.Sim,
		keys:        keys,
		inputSystem: system.NewInputSystemWithReader(keys, opts.Bindings),
		logger:      logger,
		state:       opts.Sim.State(),
		screenW:     int(arena.Width),
		screenH:     int(arena.Height),
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.RecordPath, opts.ConfigName)
		logger.Info("recording enabled", "path", opts.RecordPath)
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	// Handle hitstop. Fire presses are edges, so hold one for the next tick.
	if p.hitstopFrames > 0 {
		p.hitstopFrames--
		if p.inputSystem.GetInput().Fire {
			p.pendingFire = true
		}
		return nil, nil
	}

	if p.keys.IsJustPressed(ebiten.KeyTab) {
		p.showHitboxes = !p.showHitboxes
	}

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if p.keys.IsJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver, state.StateCleared:
		if p.keys.IsJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
		if p.keys.IsJustPressed(ebiten.KeyZ) || p.keys.IsJustPressed(ebiten.KeySpace) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	// Check for pause
	if p.keys.IsJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if p.keys.IsJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.inputSystem.GetInput()
	if p.pendingFire {
		input.Fire = true
		p.pendingFire = false
	}
	if p.recorder != nil {
		p.recorder.Record(input)
	}

	res := p.sim.Step(input)
	if res.Pops.Popped > 0 {
		p.hitstopFrames = popHitstop
		p.logger.Debug("pop", "tick", res.Tick, "spawned", res.Pops.Spawned, "balls", p.sim.World().CountBalls())
	}

	switch res.State {
	case state.StateGameOver:
		p.state = res.State
		p.logger.Info("game over", "tick", res.Tick, "balls", p.sim.World().CountBalls())
		p.saveRecording()
	case state.StateCleared:
		p.state = res.State
		p.logger.Info("stage cleared", "tick", res.Tick)
		p.saveRecording()
	}
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.Save(); err != nil {
		p.logger.Warn("failed to save recording", "path", p.recorder.Path(), "error", err)
		return
	}
	p.logger.Info("recording saved", "path", p.recorder.Path(), "frames", p.recorder.Frames())
}

func (p *Playing) restart() {
	p.sim.Reset()
	p.state = p.sim.State()
	p.hitstopFrames = 0
	p.pendingFire = false

	if p.recorder != nil {
		p.recorder.Restart()
	}
	p.logger.Info("restart")
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	arena := p.sim.Config().Arena
	for _, d := range p.sim.Drawables() {
		p.drawEntity(screen, arena, d)
	}

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nBalls left: %d\n\nZ: restart  Q: quit", p.sim.World().CountBalls()))
	case state.StateCleared:
		p.drawOverlay(screen, color.RGBA{0, 80, 0, 180},
			fmt.Sprintf("CLEARED in %d ticks\n\nZ: restart  Q: quit", p.sim.Tick()))
	}
}

func (p *Playing) drawEntity(screen *ebiten.Image, arena entity.Arena, d ecs.Drawable) {
	x, y, w, h := ScreenRect(arena, d.Shape.Rect)

	switch d.Kind {
	case ecs.DrawBoundary:
		ebitenutil.DrawRect(screen, x, y, w, h, colorWall)
	case ecs.DrawBall:
		clr := colorBall[d.Rank]
		if d.Shape.Kind == entity.ShapeCircle {
			vector.DrawFilledCircle(screen, float32(x+w/2), float32(y+h/2), float32(d.Shape.Radius()), clr, true)
		} else {
			ebitenutil.DrawRect(screen, x, y, w, h, clr)
		}
	case ecs.DrawProjectile:
		ebitenutil.DrawRect(screen, x, y, w, h, colorProjectile)
	case ecs.DrawPlayer:
		ebitenutil.DrawRect(screen, x, y, w, h, colorPlayer)
	}

	if p.showHitboxes && d.Kind != ecs.DrawBoundary {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorHitbox, false)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := fmt.Sprintf("Tick: %d  Balls: %d", p.sim.Tick(), p.sim.World().CountBalls())
	ebitenutil.DebugPrintAt(screen, status, 30, p.screenH-40)

	debugText := "A/D or Arrows: Move | Space/W/Up: Fire | Tab: Hitboxes | ESC: Pause"
	if p.recorder != nil {
		debugText += " | F5: Save replay"
	}
	ebitenutil.DebugPrintAt(screen, debugText, 30, 25)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, clr color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), clr)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// ScreenRect converts a world rect (centre, +Y up) to a screen rect
// (top-left corner, +Y down).
func ScreenRect(arena entity.Arena, r entity.Rect) (x, y, w, h float64) {
	x, y = arena.ToScreen(r.Left(), r.Top())
	return x, y, r.W, r.H
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
