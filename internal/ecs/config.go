package ecs

import "github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"

// BouncePolicy selects how a ball leaves the floor
type BouncePolicy int

const (
	// BounceImpulse sets the upward speed from the size table, so every
	// ball of a rank reaches the same apex forever.
	BounceImpulse BouncePolicy = iota
	// BounceReflect keeps the incoming speed and only forces it upward.
	BounceReflect
)

func (p BouncePolicy) String() string {
	switch p {
	case BounceImpulse:
		return "impulse"
	case BounceReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// ParseBouncePolicy converts a config string. Empty input yields BounceImpulse.
func ParseBouncePolicy(s string) (BouncePolicy, bool) {
	switch s {
	case "", "impulse":
		return BounceImpulse, true
	case "reflect":
		return BounceReflect, true
	default:
		return BounceImpulse, false
	}
}

// ProjectilePolicy selects how many projectiles may be in flight
type ProjectilePolicy int

const (
	// PolicySingle is one persistent arrow that grows from the player
	// up to the ceiling. Firing while it is out does nothing.
	PolicySingle ProjectilePolicy = iota
	// PolicyMulti spawns a fresh bullet on every fire.
	PolicyMulti
)

func (p ProjectilePolicy) String() string {
	switch p {
	case PolicySingle:
		return "single"
	case PolicyMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// ParseProjectilePolicy converts a config string. Empty input yields PolicySingle.
func ParseProjectilePolicy(s string) (ProjectilePolicy, bool) {
	switch s {
	case "", "single":
		return PolicySingle, true
	case "multi":
		return PolicyMulti, true
	default:
		return PolicySingle, false
	}
}

// ProjectileConfig holds projectile parameters (world units, per tick)
type ProjectileConfig struct {
	Policy  ProjectilePolicy
	Width   float64
	Height  float64 // initial height
	Growth  float64 // single arrow height gain per tick
	Speed   float64 // multi bullet rise per tick
	OffsetX float64 // spawn offset from the player centre
	OffsetY float64
}

// PlayerConfig holds player parameters
type PlayerConfig struct {
	Speed  float64 // units per tick
	Width  float64
	Height float64
}

// BallConfig holds ball motion and split parameters
type BallConfig struct {
	Gravity    float64 // subtracted from vy every tick
	Bounce     BouncePolicy
	Shape      entity.ShapeKind
	SplitSpeed float64 // horizontal speed of each child
	SplitLift  float64 // upward speed of each child
}

// SpawnConfig is the opening layout of a round
type SpawnConfig struct {
	Rank   entity.Rank
	X, Y   float64
	VX, VY float64
}

// Config is everything the systems need. It is immutable during a run.
type Config struct {
	Arena      entity.Arena
	Sizes      entity.SizeTable
	Ball       BallConfig
	Projectile ProjectileConfig
	Player     PlayerConfig
	Spawn      SpawnConfig
}

// DefaultConfig returns the stock tuning for a width x height window
func DefaultConfig(width, height float64) Config {
	return Config{
		Arena: entity.NewArena(width, height, 40, 0),
		Sizes: entity.DefaultSizeTable(),
		Ball: BallConfig{
			Gravity:    0.1,
			Bounce:     BounceImpulse,
			Shape:      entity.ShapeBox,
			SplitSpeed: 1,
			SplitLift:  4,
		},
		Projectile: ProjectileConfig{
			Policy:  PolicySingle,
			Width:   10,
			Height:  30,
			Growth:  15,
			Speed:   10,
			OffsetX: 0,
			OffsetY: -20,
		},
		Player: PlayerConfig{
			Speed:  5,
			Width:  40,
			Height: 40,
		},
		Spawn: SpawnConfig{
			Rank: 4,
			X:    0,
			Y:    0,
			VX:   1,
			VY:   0,
		},
	}
}

// PlayerSpawn returns the player's starting centre: standing on the floor
func (c Config) PlayerSpawn() (x, y float64) {
	return 0, c.Arena.Floor.Y + c.Arena.Thickness/2 + c.Player.Height/2
}
