package config

import (
	"fmt"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

// Collision backends
const (
	BackendAABB   = "aabb"
	BackendResolv = "resolv"
)

// Validate checks ranges and enum strings
func (c *GameConfig) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display: size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("display: framerate must be positive, got %d", c.Display.Framerate)
	}
	if c.Arena.WallThickness <= 0 {
		return fmt.Errorf("arena: wallThickness must be positive, got %v", c.Arena.WallThickness)
	}
	if c.Arena.ContactSlack < 0 {
		return fmt.Errorf("arena: contactSlack must not be negative, got %v", c.Arena.ContactSlack)
	}

	b := c.Balls
	if b.Gravity < 0 {
		return fmt.Errorf("balls: gravity must not be negative, got %v", b.Gravity)
	}
	if len(b.Diameters) != int(entity.MaxRank) || len(b.Impulses) != int(entity.MaxRank) {
		return fmt.Errorf("balls: need %d diameters and %d impulses, got %d and %d",
			entity.MaxRank, entity.MaxRank, len(b.Diameters), len(b.Impulses))
	}
	if _, err := c.sizeTable(); err != nil {
		return fmt.Errorf("balls: %w", err)
	}
	if _, ok := ecs.ParseBouncePolicy(b.BouncePolicy); !ok {
		return fmt.Errorf("balls: unknown bouncePolicy %q", b.BouncePolicy)
	}
	if _, ok := entity.ParseShapeKind(b.Shape); !ok {
		return fmt.Errorf("balls: unknown shape %q", b.Shape)
	}
	if !entity.Rank(b.Start.Rank).Valid() {
		return fmt.Errorf("balls: start rank %d outside [%d, %d]", b.Start.Rank, entity.MinRank, entity.MaxRank)
	}

	p := c.Projectile
	if _, ok := ecs.ParseProjectilePolicy(p.Policy); !ok {
		return fmt.Errorf("projectile: unknown policy %q", p.Policy)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("projectile: size must be positive, got %vx%v", p.Width, p.Height)
	}
	if p.Growth <= 0 {
		return fmt.Errorf("projectile: growth must be positive, got %v", p.Growth)
	}
	if p.Speed <= 0 {
		return fmt.Errorf("projectile: speed must be positive, got %v", p.Speed)
	}

	if c.Player.Speed < 0 || c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player: invalid speed %v or size %vx%v", c.Player.Speed, c.Player.Width, c.Player.Height)
	}
	if float64(c.Display.Width) <= c.Arena.WallThickness+c.Player.Width {
		return fmt.Errorf("player: width %v does not fit between the walls", c.Player.Width)
	}

	switch c.Collision.Backend {
	case "", BackendAABB, BackendResolv:
	default:
		return fmt.Errorf("collision: unknown backend %q", c.Collision.Backend)
	}
	if c.Collision.CellSize < 0 {
		return fmt.Errorf("collision: cellSize must not be negative, got %d", c.Collision.CellSize)
	}

	return nil
}

func (c *GameConfig) sizeTable() (entity.SizeTable, error) {
	var d, i [entity.MaxRank]float64
	copy(d[:], c.Balls.Diameters)
	copy(i[:], c.Balls.Impulses)
	return entity.NewSizeTable(d, i)
}

// SimConfig converts the document into the immutable simulation config
func (c *GameConfig) SimConfig() (ecs.Config, error) {
	if err := c.Validate(); err != nil {
		return ecs.Config{}, err
	}
	sizes, err := c.sizeTable()
	if err != nil {
		return ecs.Config{}, fmt.Errorf("balls: %w", err)
	}
	bounce, _ := ecs.ParseBouncePolicy(c.Balls.BouncePolicy)
	shape, _ := entity.ParseShapeKind(c.Balls.Shape)
	policy, _ := ecs.ParseProjectilePolicy(c.Projectile.Policy)

	return ecs.Config{
		Arena: entity.NewArena(float64(c.Display.Width), float64(c.Display.Height), c.Arena.WallThickness, c.Arena.ContactSlack),
		Sizes: sizes,
		Ball: ecs.BallConfig{
			Gravity:    c.Balls.Gravity,
			Bounce:     bounce,
			Shape:      shape,
			SplitSpeed: c.Balls.SplitSpeed,
			SplitLift:  c.Balls.SplitLift,
		},
		Projectile: ecs.ProjectileConfig{
			Policy:  policy,
			Width:   c.Projectile.Width,
			Height:  c.Projectile.Height,
			Growth:  c.Projectile.Growth,
			Speed:   c.Projectile.Speed,
			OffsetX: c.Projectile.OffsetX,
			OffsetY: c.Projectile.OffsetY,
		},
		Player: ecs.PlayerConfig{
			Speed:  c.Player.Speed,
			Width:  c.Player.Width,
			Height: c.Player.Height,
		},
		Spawn: ecs.SpawnConfig{
			Rank: entity.Rank(c.Balls.Start.Rank),
			X:    c.Balls.Start.X,
			Y:    c.Balls.Start.Y,
			VX:   c.Balls.Start.VX,
			VY:   c.Balls.Start.VY,
		},
	}, nil
}
