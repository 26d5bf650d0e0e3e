package ecs

import "github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"

// Collider answers whether two footprints overlap. The systems never
// test geometry themselves so the narrow phase can be swapped.
type Collider interface {
	Overlaps(a, b entity.Shape) bool
}

// AABB tests the bounding boxes of both shapes. Circles are treated as
// their enclosing square.
type AABB struct{}

// Overlaps implements Collider
func (AABB) Overlaps(a, b entity.Shape) bool {
	return a.Rect.Intersects(b.Rect)
}

// BallShape returns the footprint of a ball, sized from the table
func BallShape(w *World, cfg Config, id EntityID) entity.Shape {
	pos := w.Position[id]
	d := cfg.Sizes.Diameter(w.BallData[id].Rank)
	if cfg.Ball.Shape == entity.ShapeCircle {
		return entity.Circle(pos.X, pos.Y, d)
	}
	return entity.Box(pos.X, pos.Y, d, d)
}

// ProjectileShape returns the footprint of a projectile. Position is the
// base, so the box extends upward by the current height.
func ProjectileShape(w *World, id EntityID) entity.Shape {
	pos := w.Position[id]
	p := w.ProjectileData[id]
	return entity.Box(pos.X, pos.Y+p.Height/2, p.Width, p.Height)
}

// PlayerShape returns the footprint of the player
func PlayerShape(w *World, id EntityID) entity.Shape {
	pos := w.Position[id]
	p := w.PlayerData[id]
	return entity.Box(pos.X, pos.Y, p.Width, p.Height)
}
