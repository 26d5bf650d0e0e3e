package ecs

import "github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"

// DrawKind tells the renderer what an entity is
type DrawKind int

const (
	DrawBoundary DrawKind = iota
	DrawBall
	DrawProjectile
	DrawPlayer
)

// Drawable is one entry of the render feed, in world coordinates
type Drawable struct {
	ID    EntityID // 0 for boundaries
	Kind  DrawKind
	Shape entity.Shape
	Rank  entity.Rank // balls only
}

// Drawables lists everything visible this tick: boundaries first, then
// balls, projectiles and the player. Parked arrows are left out.
func Drawables(w *World, cfg Config) []Drawable {
	out := make([]Drawable, 0, 4+len(w.BallData)+len(w.ProjectileData)+1)

	for _, r := range cfg.Arena.Boundaries() {
		out = append(out, Drawable{Kind: DrawBoundary, Shape: entity.Shape{Kind: entity.ShapeBox, Rect: r}})
	}
	for _, id := range w.Balls() {
		out = append(out, Drawable{ID: id, Kind: DrawBall, Shape: BallShape(w, cfg, id), Rank: w.BallData[id].Rank})
	}
	for _, id := range w.Projectiles() {
		if !w.ProjectileData[id].Active {
			continue
		}
		out = append(out, Drawable{ID: id, Kind: DrawProjectile, Shape: ProjectileShape(w, id)})
	}
	if id, ok := w.Player(); ok {
		out = append(out, Drawable{ID: id, Kind: DrawPlayer, Shape: PlayerShape(w, id)})
	}

	return out
}
