package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

// KeyBindings maps each action to the keys that trigger it
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Fire  []ebiten.Key
}

// DefaultKeyBindings returns arrow keys plus WASD, with Space or Up to fire
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Fire:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	}
}

// KeyReader is the subset of keyboard state the input system needs
type KeyReader interface {
	IsPressed(k ebiten.Key) bool
	IsJustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the live keyboard
type ebitenKeys struct{}

func (ebitenKeys) IsPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// InputSystem handles player input
type InputSystem struct {
	keys     KeyReader
	bindings KeyBindings
}

// NewInputSystem creates an input system on the live keyboard
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return NewInputSystemWithReader(ebitenKeys{}, bindings)
}

// NewInputSystemWithReader creates an input system on any key source
func NewInputSystemWithReader(keys KeyReader, bindings KeyBindings) *InputSystem {
	return &InputSystem{keys: keys, bindings: bindings}
}

// GetInput reads the current input state. Movement is level-triggered;
// fire is edge-triggered so holding the key launches once.
func (s *InputSystem) GetInput() ecs.Input {
	return ecs.Input{
		MoveLeft:  s.any(s.keys.IsPressed, s.bindings.Left),
		MoveRight: s.any(s.keys.IsPressed, s.bindings.Right),
		Fire:      s.any(s.keys.IsJustPressed, s.bindings.Fire),
	}
}

func (s *InputSystem) any(test func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if test(k) {
			return true
		}
	}
	return false
}

// LiveKeys returns a KeyReader backed by the ebiten keyboard
func LiveKeys() KeyReader {
	return ebitenKeys{}
}
