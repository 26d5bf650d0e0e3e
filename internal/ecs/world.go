package ecs

import (
	"fmt"
	"slices"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position       map[EntityID]Position
	Velocity       map[EntityID]Velocity
	BallData       map[EntityID]Ball
	ProjectileData map[EntityID]Projectile
	PlayerData     map[EntityID]Player

	// Singleton references
	PlayerID EntityID
	ArrowID  EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:         1, // 0 is "nil"
		Position:       make(map[EntityID]Position),
		Velocity:       make(map[EntityID]Velocity),
		BallData:       make(map[EntityID]Ball),
		ProjectileData: make(map[EntityID]Projectile),
		PlayerData:     make(map[EntityID]Player),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.BallData, id)
	delete(w.ProjectileData, id)
	delete(w.PlayerData, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
	if w.ArrowID == id {
		w.ArrowID = 0
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// Player returns the player entity. ok is false once the player is gone,
// which callers treat as game over.
func (w *World) Player() (EntityID, bool) {
	if w.PlayerID == 0 || !w.Exists(w.PlayerID) {
		return 0, false
	}
	return w.PlayerID, true
}

// Arrow returns the single-instance arrow, if one was created
func (w *World) Arrow() (EntityID, bool) {
	if w.ArrowID == 0 || !w.Exists(w.ArrowID) {
		return 0, false
	}
	return w.ArrowID, true
}

// CreateBall creates a ball entity. Panics on an invalid rank.
func (w *World) CreateBall(x, y, vx, vy float64, rank entity.Rank) EntityID {
	if !rank.Valid() {
		panic(fmt.Sprintf("ecs: cannot create ball with rank %d", rank))
	}
	id := w.NewEntity()

	w.Position[id] = Position{X: x, Y: y}
	w.Velocity[id] = Velocity{X: vx, Y: vy}
	w.BallData[id] = Ball{Rank: rank}

	return id
}

// CreatePlayer creates the player entity. Any previous player is replaced.
func (w *World) CreatePlayer(x, y float64, cfg PlayerConfig) EntityID {
	if old, ok := w.Player(); ok {
		w.DestroyEntity(old)
	}
	id := w.NewEntity()

	w.Position[id] = Position{X: x, Y: y}
	w.PlayerData[id] = Player{Speed: cfg.Speed, Width: cfg.Width, Height: cfg.Height}

	w.PlayerID = id
	return id
}

// CreateArrow creates the single-instance arrow, parked and inactive
func (w *World) CreateArrow(arena entity.Arena, cfg ProjectileConfig) EntityID {
	if old, ok := w.Arrow(); ok {
		return old
	}
	id := w.NewEntity()

	w.Position[id] = parkedPosition(arena)
	w.Velocity[id] = Velocity{}
	w.ProjectileData[id] = Projectile{Width: cfg.Width, Height: cfg.Height}

	w.ArrowID = id
	return id
}

// CreateBullet creates an active multi-instance projectile with its base at (x, y)
func (w *World) CreateBullet(x, y float64, cfg ProjectileConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: x, Y: y}
	w.Velocity[id] = Velocity{X: 0, Y: cfg.Speed}
	w.ProjectileData[id] = Projectile{Width: cfg.Width, Height: cfg.Height, Active: true}

	return id
}

// Balls returns all ball IDs in creation order
func (w *World) Balls() []EntityID {
	return sortedKeys(w.BallData)
}

// Projectiles returns all projectile IDs in creation order
func (w *World) Projectiles() []EntityID {
	return sortedKeys(w.ProjectileData)
}

// CountBalls returns the number of live balls
func (w *World) CountBalls() int {
	return len(w.BallData)
}

// CountActiveProjectiles returns the number of projectiles in flight
func (w *World) CountActiveProjectiles() int {
	n := 0
	for _, p := range w.ProjectileData {
		if p.Active {
			n++
		}
	}
	return n
}

// sortedKeys gives systems a deterministic iteration order over a component map
func sortedKeys[T any](m map[EntityID]T) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func parkedPosition(arena entity.Arena) Position {
	return Position{X: arena.Width * 2, Y: arena.Height}
}
