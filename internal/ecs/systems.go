package ecs

import (
	"math"
)

// HitResult summarises one detection pass
type HitResult struct {
	Pops      int  // pop requests queued
	PlayerHit bool // the player was touched and removed
}

// PopResult summarises one drain of the pop queue
type PopResult struct {
	Popped   int // balls removed
	Spawned  int // children created
	Vanished int // rank 1 balls removed without children
	Stale    int // requests for balls that were already gone
}

// MovePlayer applies horizontal input to the player, then clamps it
// between the walls. Velocity is never touched.
func MovePlayer(w *World, cfg Config, in Input) {
	id, ok := w.Player()
	if !ok {
		return
	}
	pos := w.Position[id]
	pos.X += in.Axis() * w.PlayerData[id].Speed
	w.Position[id] = pos

	ClampPlayer(w, cfg)
}

// ClampPlayer keeps the player's body fully inside the walls
func ClampPlayer(w *World, cfg Config) {
	id, ok := w.Player()
	if !ok {
		return
	}
	pos := w.Position[id]
	minX, maxX := cfg.Arena.PlayerBounds(w.PlayerData[id].Width / 2)
	pos.X = max(minX, min(pos.X, maxX))
	w.Position[id] = pos
}

// FireProjectile handles a fire trigger. It returns false when nothing was
// launched: no player, or the single arrow is still in flight.
func FireProjectile(w *World, cfg Config) bool {
	pid, ok := w.Player()
	if !ok {
		return false
	}
	pp := w.Position[pid]
	x := pp.X + cfg.Projectile.OffsetX
	y := pp.Y + cfg.Projectile.OffsetY

	if cfg.Projectile.Policy == PolicyMulti {
		w.CreateBullet(x, y, cfg.Projectile)
		return true
	}

	id, ok := w.Arrow()
	if !ok {
		id = w.CreateArrow(cfg.Arena, cfg.Projectile)
	}
	p := w.ProjectileData[id]
	if p.Active {
		return false
	}
	p.Active = true
	p.Height = cfg.Projectile.Height
	w.ProjectileData[id] = p
	w.Position[id] = Position{X: x, Y: y}
	return true
}

// UpdateProjectiles advances every active projectile and retires the ones
// that reached the ceiling or left the top of the screen.
func UpdateProjectiles(w *World, cfg Config) {
	a := cfg.Arena
	ceiling := a.Ceiling.Y - a.Margin

	for _, id := range w.Projectiles() {
		p := w.ProjectileData[id]
		if !p.Active {
			continue
		}
		pos := w.Position[id]
		if id == w.ArrowID {
			p.Height += cfg.Projectile.Growth
			w.ProjectileData[id] = p
		} else {
			pos.Y += w.Velocity[id].Y
			w.Position[id] = pos
		}

		if pos.Y+p.Height >= ceiling || a.AboveScreen(pos.Y) {
			deactivateProjectile(w, cfg, id)
		}
	}
}

// DetectHits tests projectiles and the player against every ball.
// Projectiles travel upward, so of the balls a projectile touches it pops
// the one whose bottom edge is lowest; ties go to the older ball. The ball
// is queued for popping and the projectile is retired at once. A ball
// touching the player removes the player.
func DetectHits(w *World, cfg Config, col Collider, q *PopQueue) HitResult {
	var res HitResult
	balls := w.Balls()

	for _, pid := range w.Projectiles() {
		if !w.ProjectileData[pid].Active {
			continue
		}
		shape := ProjectileShape(w, pid)
		var hit EntityID
		lowest := math.Inf(1)
		for _, bid := range balls {
			bs := BallShape(w, cfg, bid)
			if bs.Bottom() < lowest && col.Overlaps(shape, bs) {
				hit, lowest = bid, bs.Bottom()
			}
		}
		if hit != 0 {
			q.Push(Pop{Ball: hit})
			res.Pops++
			deactivateProjectile(w, cfg, pid)
		}
	}

	if id, ok := w.Player(); ok {
		shape := PlayerShape(w, id)
		for _, bid := range balls {
			if col.Overlaps(shape, BallShape(w, cfg, bid)) {
				w.DestroyEntity(id)
				res.PlayerHit = true
				break
			}
		}
	}

	return res
}

// ConsumePops drains the queue. Each live ball above rank 1 is replaced by
// two balls one rank smaller, moving apart and upward from the parent's
// position. Requests for balls that are already gone are skipped.
func ConsumePops(w *World, cfg Config, q *PopQueue) PopResult {
	var res PopResult

	for _, pop := range q.Drain() {
		ball, ok := w.BallData[pop.Ball]
		if !ok {
			res.Stale++
			continue
		}
		pos := w.Position[pop.Ball]

		if child, ok := ball.Rank.Child(); ok {
			w.CreateBall(pos.X, pos.Y, -cfg.Ball.SplitSpeed, cfg.Ball.SplitLift, child)
			w.CreateBall(pos.X, pos.Y, cfg.Ball.SplitSpeed, cfg.Ball.SplitLift, child)
			res.Spawned += 2
		} else {
			res.Vanished++
		}

		w.DestroyEntity(pop.Ball)
		res.Popped++
	}

	return res
}

// BounceBalls resolves contact with the floor and both walls. All three
// checks run for every ball. Wall responses force the sign of vx rather
// than negating it, so a ball that stays inside the contact band for
// several ticks keeps heading away from the wall.
func BounceBalls(w *World, cfg Config) {
	a := cfg.Arena
	m := a.Margin

	for _, id := range w.Balls() {
		rank := w.BallData[id].Rank
		r := cfg.Sizes.Diameter(rank) / 2
		pos := w.Position[id]
		vel := w.Velocity[id]

		if pos.Y-r <= a.Floor.Y+m {
			switch cfg.Ball.Bounce {
			case BounceReflect:
				vel.Y = math.Abs(vel.Y)
			default:
				vel.Y = cfg.Sizes.BounceImpulse(rank)
			}
		}
		if pos.X+r >= a.RightWall.X-m {
			vel.X = -math.Abs(vel.X)
		}
		if pos.X-r <= a.LeftWall.X+m {
			vel.X = math.Abs(vel.X)
		}

		w.Velocity[id] = vel
	}
}

// IntegrateBalls applies gravity to vy, then moves each ball by its velocity
func IntegrateBalls(w *World, cfg Config) {
	for id := range w.BallData {
		vel := w.Velocity[id]
		vel.Y -= cfg.Ball.Gravity
		w.Velocity[id] = vel

		pos := w.Position[id]
		pos.X += vel.X
		pos.Y += vel.Y
		w.Position[id] = pos
	}
}

// deactivateProjectile parks the single arrow off-screen for reuse, or
// removes a bullet outright.
func deactivateProjectile(w *World, cfg Config, id EntityID) {
	if id != w.ArrowID {
		w.DestroyEntity(id)
		return
	}
	p := w.ProjectileData[id]
	p.Active = false
	p.Height = cfg.Projectile.Height
	w.ProjectileData[id] = p
	w.Position[id] = parkedPosition(cfg.Arena)
}
