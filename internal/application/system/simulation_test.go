package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/state"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

func createTestConfig() ecs.Config {
	return ecs.DefaultConfig(1200, 1000)
}

// runUntil steps with a fixed input until the state leaves Playing
func runUntil(sim *Simulation, in func(tick int) ecs.Input, limit int) TickResult {
	var res TickResult
	for i := 0; i < limit && sim.State() == state.StatePlaying; i++ {
		res = sim.Step(in(i))
	}
	return res
}

func idle(int) ecs.Input { return ecs.Input{} }

func TestNewSimulation(t *testing.T) {
	sim := NewSimulation(createTestConfig(), nil)
	w := sim.World()

	assert.Equal(t, state.StatePlaying, sim.State())
	assert.Zero(t, sim.Tick())

	pid, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, ecs.Position{X: 0, Y: -460}, w.Position[pid])

	aid, ok := w.Arrow()
	require.True(t, ok)
	assert.False(t, w.ProjectileData[aid].Active)

	balls := w.Balls()
	require.Len(t, balls, 1)
	assert.Equal(t, entity.Rank(4), w.BallData[balls[0]].Rank)
	assert.Equal(t, ecs.Velocity{X: 1, Y: 0}, w.Velocity[balls[0]])
}

func TestSimulation_StepMovesBall(t *testing.T) {
	sim := NewSimulation(createTestConfig(), nil)
	ball := sim.World().Balls()[0]

	res := sim.Step(ecs.Input{})

	assert.Equal(t, 1, res.Tick)
	assert.Equal(t, state.StatePlaying, res.State)
	pos := sim.World().Position[ball]
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.InDelta(t, -0.1, pos.Y, 1e-9)
}

func TestSimulation_GameOver(t *testing.T) {
	cfg := createTestConfig()
	cfg.Spawn = ecs.SpawnConfig{Rank: 2, X: 0, Y: -300}
	sim := NewSimulation(cfg, ecs.AABB{})

	res := runUntil(sim, idle, 500)

	require.Equal(t, state.StateGameOver, sim.State())
	assert.True(t, res.Hits.PlayerHit)
	_, ok := sim.World().Player()
	assert.False(t, ok)

	// Finished rounds stay put
	tick := sim.Tick()
	after := sim.Step(ecs.Input{MoveLeft: true, Fire: true})
	assert.Equal(t, tick, after.Tick)
	assert.Equal(t, state.StateGameOver, after.State)
	assert.False(t, after.Fired)
}

func TestSimulation_Cleared(t *testing.T) {
	cfg := createTestConfig()
	cfg.Spawn = ecs.SpawnConfig{Rank: 1, X: 0, Y: 0}
	sim := NewSimulation(cfg, nil)

	first := sim.Step(ecs.Input{Fire: true})
	require.True(t, first.Fired)

	res := runUntil(sim, idle, 500)

	assert.Equal(t, state.StateCleared, sim.State())
	assert.Equal(t, 1, res.Pops.Vanished)
	_, ok := sim.World().Player()
	assert.True(t, ok)
}

func TestSimulation_SplitKeepsPlaying(t *testing.T) {
	cfg := createTestConfig()
	cfg.Spawn = ecs.SpawnConfig{Rank: 3, X: 0, Y: 0}
	sim := NewSimulation(cfg, nil)

	sim.Step(ecs.Input{Fire: true})
	var res TickResult
	for i := 0; i < 100 && res.Pops.Popped == 0; i++ {
		res = sim.Step(ecs.Input{})
	}

	require.Equal(t, 1, res.Pops.Popped)
	assert.Equal(t, 2, res.Pops.Spawned)
	assert.Equal(t, state.StatePlaying, res.State)
	for _, id := range sim.World().Balls() {
		assert.Equal(t, entity.Rank(2), sim.World().BallData[id].Rank)
	}
}

func TestSimulation_SingleArrowRefire(t *testing.T) {
	sim := NewSimulation(createTestConfig(), nil)

	assert.True(t, sim.Step(ecs.Input{Fire: true}).Fired)
	assert.False(t, sim.Step(ecs.Input{Fire: true}).Fired, "arrow still in flight")
}

func TestSimulation_Reset(t *testing.T) {
	cfg := createTestConfig()
	cfg.Spawn = ecs.SpawnConfig{Rank: 2, X: 0, Y: -300}
	sim := NewSimulation(cfg, nil)
	runUntil(sim, idle, 500)
	require.Equal(t, state.StateGameOver, sim.State())

	sim.Reset()

	assert.Equal(t, state.StatePlaying, sim.State())
	assert.Zero(t, sim.Tick())
	_, ok := sim.World().Player()
	assert.True(t, ok)
	assert.Equal(t, 1, sim.World().CountBalls())
}

func TestSimulation_Deterministic(t *testing.T) {
	cfg := createTestConfig()
	cfg.Projectile.Policy = ecs.PolicyMulti
	script := func(i int) ecs.Input {
		return ecs.Input{MoveLeft: i%90 < 30, MoveRight: i%90 >= 60, Fire: i%7 == 0}
	}

	a := NewSimulation(cfg, nil)
	b := NewSimulation(cfg, nil)
	for i := 0; i < 600; i++ {
		ra := a.Step(script(i))
		rb := b.Step(script(i))
		require.Equal(t, ra, rb, "tick %d", i)
	}

	assert.Equal(t, a.Drawables(), b.Drawables())
}
