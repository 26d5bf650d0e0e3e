package ecs

import "github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"

// Position is an entity's location in world units (origin at arena centre, +Y up).
// Balls and the player are positioned by their centre; projectiles by the
// centre of their base so a growing arrow stays anchored to the floor.
type Position struct {
	X, Y float64
}

// Velocity is world units per tick
type Velocity struct {
	X, Y float64
}

// Ball is a splittable bouncing ball. Its footprint is never stored;
// it always comes from the size table.
type Ball struct {
	Rank entity.Rank
}

// Projectile is an arrow or bullet fired by the player
type Projectile struct {
	Width  float64
	Height float64 // current height; single arrows grow each tick
	Active bool
}

// Player holds the movement parameters of the player entity
type Player struct {
	Speed         float64 // units per tick
	Width, Height float64
}

// Input is the per-tick command set. Fire is edge-triggered: it is true
// only on the tick the key went down.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
}

// Axis returns -1, 0 or +1 for the horizontal intent
func (in Input) Axis() float64 {
	var axis float64
	if in.MoveRight {
		axis++
	}
	if in.MoveLeft {
		axis--
	}
	return axis
}
