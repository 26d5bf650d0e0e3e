package collision

import (
	"fmt"

	"github.com/solarlune/resolv"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/domain/entity"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/infrastructure/config"
)

const defaultCellSize = 32

var tagTarget = resolv.NewTag("target")

// Resolv answers overlap queries with SAT tests from solarlune/resolv,
// so circle balls are tested as true circles. Shapes live in a scratch
// space only for the duration of one query.
type Resolv struct {
	space            *resolv.Space
	offsetX, offsetY float64
}

// NewResolv builds a collider whose space covers twice the arena in each
// direction, enough for anything the systems can place.
func NewResolv(arena entity.Arena, cellSize int) *Resolv {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &Resolv{
		space:   resolv.NewSpace(int(arena.Width*2), int(arena.Height*2), cellSize, cellSize),
		offsetX: arena.Width,
		offsetY: arena.Height,
	}
}

// Overlaps implements ecs.Collider
func (r *Resolv) Overlaps(a, b entity.Shape) bool {
	sa := r.shape(a)
	sb := r.shape(b)
	sb.Tags().Set(tagTarget)

	r.space.Add(sa)
	r.space.Add(sb)
	defer func() {
		r.space.Remove(sa)
		r.space.Remove(sb)
	}()

	hit := sa.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: sa.SelectTouchingCells(0).FilterShapes().ByTags(tagTarget),
		OnIntersect: func(resolv.IntersectionSet) bool { return false },
	})
	if hit {
		return true
	}
	// Intersection tests only report crossing edges
	return contains(sa, sb) || contains(sb, sa)
}

// contains reports whether inner lies wholly inside outer
func contains(outer, inner resolv.IShape) bool {
	switch o := outer.(type) {
	case *resolv.ConvexPolygon:
		switch in := inner.(type) {
		case *resolv.ConvexPolygon:
			return in.IsContainedBy(o)
		case *resolv.Circle:
			for _, axis := range o.SATAxes() {
				if !in.Project(axis).IsInside(o.Project(axis)) {
					return false
				}
			}
			return true
		}
	case *resolv.Circle:
		// With no crossing edges, inner is inside exactly when its
		// centre is.
		r := o.Radius()
		return inner.Position().DistanceSquared(o.Position()) <= r*r
	}
	return false
}

// shape converts a world shape (+Y up, centred origin) into space
// coordinates (+Y down, top-left origin).
func (r *Resolv) shape(s entity.Shape) resolv.IShape {
	x := s.X + r.offsetX
	y := r.offsetY - s.Y
	if s.Kind == entity.ShapeCircle {
		return resolv.NewCircle(x, y, s.Radius())
	}
	return resolv.NewRectangleTopLeft(x-s.W/2, y-s.H/2, s.W, s.H)
}

// New returns the collider for a config backend name. Empty selects AABB.
func New(backend string, arena entity.Arena, cellSize int) (ecs.Collider, error) {
	switch backend {
	case "", config.BackendAABB:
		return ecs.AABB{}, nil
	case config.BackendResolv:
		return NewResolv(arena, cellSize), nil
	default:
		return nil, fmt.Errorf("unknown collision backend %q", backend)
	}
}
