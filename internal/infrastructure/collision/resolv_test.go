package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

func newTestCollider() *Resolv {
	return NewResolv(entity.NewArena(1200, 1000, 40, 0), 32)
}

func TestResolv_Boxes(t *testing.T) {
	col := newTestCollider()

	tests := []struct {
		name string
		a, b entity.Shape
		want bool
	}{
		{"same box", entity.Box(0, 0, 20, 20), entity.Box(0, 0, 20, 20), true},
		{"partial overlap", entity.Box(0, 0, 20, 20), entity.Box(15, 5, 20, 20), true},
		{"apart on x", entity.Box(0, 0, 20, 20), entity.Box(30, 0, 20, 20), false},
		{"apart on y", entity.Box(0, 0, 20, 20), entity.Box(0, -40, 20, 20), false},
		{"arrow through ball", entity.Box(100, -330, 10, 300), entity.Box(100, -300, 60, 60), true},
		{"near the floor", entity.Box(-590, -490, 10, 10), entity.Box(-585, -485, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, col.Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, col.Overlaps(tt.b, tt.a))
		})
	}
}

func TestResolv_CircleCorner(t *testing.T) {
	col := newTestCollider()
	ball := entity.Circle(0, 0, 20)
	corner := entity.Box(14, 14, 10, 10)

	assert.True(t, ecs.AABB{}.Overlaps(ball, corner), "bounding squares touch")
	assert.False(t, col.Overlaps(ball, corner), "the circle itself does not")

	assert.True(t, col.Overlaps(ball, entity.Box(12, 0, 10, 10)))
}

func TestResolv_Containment(t *testing.T) {
	col := newTestCollider()
	player := entity.Box(0, -460, 40, 40)

	tests := []struct {
		name string
		a, b entity.Shape
	}{
		{"box inside box", entity.Box(0, 0, 10, 10), entity.Box(0, 0, 40, 40)},
		{"small ball box inside player", entity.Box(0, -460, 20, 20), player},
		{"small ball circle inside player", entity.Circle(0, -460, 20), player},
		{"bullet inside large circle", entity.Box(0, 0, 10, 30), entity.Circle(0, 0, 100)},
		{"circle inside circle", entity.Circle(5, 5, 10), entity.Circle(0, 0, 100)},
		{"same circle", entity.Circle(0, 0, 40), entity.Circle(0, 0, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, ecs.AABB{}.Overlaps(tt.a, tt.b))
			assert.True(t, col.Overlaps(tt.a, tt.b), "inner shape first")
			assert.True(t, col.Overlaps(tt.b, tt.a), "outer shape first")
		})
	}
}

func TestResolv_ContainmentRespectsCircleEdge(t *testing.T) {
	col := newTestCollider()

	// inside the circle's bounding square, outside the circle
	assert.False(t, col.Overlaps(entity.Box(45, 45, 4, 4), entity.Circle(0, 0, 100)))
	assert.False(t, col.Overlaps(entity.Circle(45, 45, 4), entity.Circle(0, 0, 100)))
}

func TestResolv_SpaceIsLeftEmpty(t *testing.T) {
	col := newTestCollider()

	for i := 0; i < 10; i++ {
		col.Overlaps(entity.Box(0, 0, 20, 20), entity.Circle(5, 5, 20))
	}

	// a stale target would make this far-away query hit
	assert.False(t, col.Overlaps(entity.Box(400, 400, 20, 20), entity.Box(-400, -400, 20, 20)))
}

func TestResolv_DrivesDetection(t *testing.T) {
	cfg := ecs.DefaultConfig(1200, 1000)
	cfg.Ball.Shape = entity.ShapeCircle
	col := NewResolv(cfg.Arena, 0)

	w := ecs.NewWorld()
	w.CreateBall(100, -300, 0, 0, 3)
	w.CreateBall(-200, -300, 0, 0, 3)
	w.CreateArrow(cfg.Arena, cfg.Projectile)
	w.CreatePlayer(100, -460, cfg.Player)
	require.True(t, ecs.FireProjectile(w, cfg))
	arrow, _ := w.Arrow()
	p := w.ProjectileData[arrow]
	p.Height = 300
	w.ProjectileData[arrow] = p

	var q ecs.PopQueue
	res := ecs.DetectHits(w, cfg, col, &q)
	assert.Equal(t, 1, res.Pops)
	assert.False(t, res.PlayerHit)

	pops := ecs.ConsumePops(w, cfg, &q)
	assert.Equal(t, 2, pops.Spawned)
	assert.Equal(t, 3, w.CountBalls())
}

func TestResolv_BallInsidePlayerEndsRound(t *testing.T) {
	for _, shape := range []entity.ShapeKind{entity.ShapeBox, entity.ShapeCircle} {
		t.Run(shape.String(), func(t *testing.T) {
			cfg := ecs.DefaultConfig(1200, 1000)
			cfg.Ball.Shape = shape
			col := NewResolv(cfg.Arena, 0)

			w := ecs.NewWorld()
			px, py := cfg.PlayerSpawn()
			w.CreatePlayer(px, py, cfg.Player)
			w.CreateBall(px, py, 0, 0, entity.MinRank)

			var q ecs.PopQueue
			res := ecs.DetectHits(w, cfg, col, &q)
			assert.True(t, res.PlayerHit)
			_, alive := w.Player()
			assert.False(t, alive)
		})
	}
}

func TestNew(t *testing.T) {
	arena := entity.NewArena(1200, 1000, 40, 0)

	col, err := New("", arena, 0)
	require.NoError(t, err)
	assert.IsType(t, ecs.AABB{}, col)

	col, err = New("resolv", arena, 16)
	require.NoError(t, err)
	assert.IsType(t, &Resolv{}, col)

	_, err = New("box2d", arena, 0)
	assert.Error(t, err)
}
