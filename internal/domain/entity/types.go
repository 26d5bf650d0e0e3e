package entity

// Rank is a ball size class. Rank 1 is the smallest and never splits.
type Rank int

const (
	MinRank Rank = 1
	MaxRank Rank = 5
)

// Valid reports whether r is within [MinRank, MaxRank]
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// Child returns the rank of the two balls produced by popping r.
// ok is false for terminal balls.
func (r Rank) Child() (child Rank, ok bool) {
	child = r - 1
	return child, child >= MinRank
}

// ShapeKind selects how an entity footprint is tested and drawn
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParseShapeKind converts a config string into a ShapeKind.
// Empty input yields ShapeBox.
func ParseShapeKind(s string) (ShapeKind, bool) {
	switch s {
	case "", "box":
		return ShapeBox, true
	case "circle":
		return ShapeCircle, true
	default:
		return ShapeBox, false
	}
}

// Rect is an axis-aligned box given by its centre and full size.
// World space has its origin at the arena centre with +Y up.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64   { return r.X - r.W/2 }
func (r Rect) Right() float64  { return r.X + r.W/2 }
func (r Rect) Bottom() float64 { return r.Y - r.H/2 }
func (r Rect) Top() float64    { return r.Y + r.H/2 }

// Intersects reports whether two rects overlap. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() <= o.Right() && o.Left() <= r.Right() &&
		r.Bottom() <= o.Top() && o.Bottom() <= r.Top()
}

// Shape is a collider footprint. Circles use W as their diameter.
type Shape struct {
	Kind ShapeKind
	Rect
}

// Box returns a box shape centred on (x, y)
func Box(x, y, w, h float64) Shape {
	return Shape{Kind: ShapeBox, Rect: Rect{X: x, Y: y, W: w, H: h}}
}

// Circle returns a circle shape centred on (x, y)
func Circle(x, y, diameter float64) Shape {
	return Shape{Kind: ShapeCircle, Rect: Rect{X: x, Y: y, W: diameter, H: diameter}}
}

// Radius is half the width. Only meaningful for circles.
func (s Shape) Radius() float64 { return s.W / 2 }
