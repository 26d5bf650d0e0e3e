package system

import (
	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/state"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

// TickResult reports what happened during one Step
type TickResult struct {
	Tick  int
	State state.GameState
	Fired bool
	Hits  ecs.HitResult
	Pops  ecs.PopResult
}

// Simulation owns a world and advances it one fixed tick at a time.
// It never draws and never reads devices, so it runs the same in the
// window, in tests and in headless replays.
type Simulation struct {
	cfg      ecs.Config
	collider ecs.Collider
	world    *ecs.World
	pops     ecs.PopQueue
	state    state.GameState
	tick     int
}

// NewSimulation creates a simulation and lays out the opening round
func NewSimulation(cfg ecs.Config, collider ecs.Collider) *Simulation {
	if collider == nil {
		collider = ecs.AABB{}
	}
	s := &Simulation{cfg: cfg, collider: collider}
	s.Reset()
	return s
}

// Reset discards the world and starts a fresh round
func (s *Simulation) Reset() {
	w := ecs.NewWorld()
	px, py := s.cfg.PlayerSpawn()
	w.CreatePlayer(px, py, s.cfg.Player)
	if s.cfg.Projectile.Policy == ecs.PolicySingle {
		w.CreateArrow(s.cfg.Arena, s.cfg.Projectile)
	}
	sp := s.cfg.Spawn
	w.CreateBall(sp.X, sp.Y, sp.VX, sp.VY, sp.Rank)

	s.world = w
	s.pops.Reset()
	s.state = state.StatePlaying
	s.tick = 0
}

// Step runs one tick in fixed order: player, projectiles, detection,
// pop drain, bounce, integration. Once the round is finished further
// calls only report the final state.
func (s *Simulation) Step(in ecs.Input) TickResult {
	if s.state.Finished() {
		return TickResult{Tick: s.tick, State: s.state}
	}
	s.tick++
	res := TickResult{Tick: s.tick}
	w, cfg := s.world, s.cfg

	ecs.MovePlayer(w, cfg, in)

	if in.Fire {
		res.Fired = ecs.FireProjectile(w, cfg)
	}
	ecs.UpdateProjectiles(w, cfg)

	res.Hits = ecs.DetectHits(w, cfg, s.collider, &s.pops)
	res.Pops = ecs.ConsumePops(w, cfg, &s.pops)

	ecs.BounceBalls(w, cfg)
	ecs.IntegrateBalls(w, cfg)

	switch {
	case res.Hits.PlayerHit:
		s.state = state.StateGameOver
	case w.CountBalls() == 0:
		s.state = state.StateCleared
	}
	res.State = s.state

	return res
}

// State returns the current round state
func (s *Simulation) State() state.GameState {
	return s.state
}

// Tick returns the number of ticks simulated since the last Reset
func (s *Simulation) Tick() int {
	return s.tick
}

// World exposes the registry for inspection. Callers must not mutate it.
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Config returns the immutable simulation config
func (s *Simulation) Config() ecs.Config {
	return s.cfg
}

// Drawables returns the render feed for the current tick
func (s *Simulation) Drawables() []ecs.Drawable {
	return ecs.Drawables(s.world, s.cfg)
}
