package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_Valid(t *testing.T) {
	tests := []struct {
		name string
		rank Rank
		want bool
	}{
		{"zero", 0, false},
		{"smallest", MinRank, true},
		{"middle", 3, true},
		{"largest", MaxRank, true},
		{"too large", MaxRank + 1, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rank.Valid())
		})
	}
}

func TestRank_Child(t *testing.T) {
	child, ok := Rank(3).Child()
	assert.True(t, ok)
	assert.Equal(t, Rank(2), child)

	_, ok = MinRank.Child()
	assert.False(t, ok, "rank 1 balls vanish without children")
}

func TestParseShapeKind(t *testing.T) {
	tests := []struct {
		in     string
		want   ShapeKind
		wantOK bool
	}{
		{"", ShapeBox, true},
		{"box", ShapeBox, true},
		{"circle", ShapeCircle, true},
		{"hexagon", ShapeBox, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseShapeKind(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
	assert.Equal(t, "circle", ShapeCircle.String())
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: -20, W: 40, H: 30}

	assert.Equal(t, -10.0, r.Left())
	assert.Equal(t, 30.0, r.Right())
	assert.Equal(t, -35.0, r.Bottom())
	assert.Equal(t, -5.0, r.Top())
}

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"contained", Rect{X: 1, Y: 1, W: 2, H: 2}, true},
		{"partial", Rect{X: 15, Y: 5, W: 20, H: 20}, true},
		{"touching edge", Rect{X: 20, Y: 0, W: 20, H: 20}, true},
		{"apart on x", Rect{X: 21, Y: 0, W: 20, H: 20}, false},
		{"apart on y", Rect{X: 0, Y: -30, W: 20, H: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "overlap must be symmetric")
		})
	}
}

func TestShapeConstructors(t *testing.T) {
	b := Box(1, 2, 3, 4)
	assert.Equal(t, ShapeBox, b.Kind)
	assert.Equal(t, Rect{X: 1, Y: 2, W: 3, H: 4}, b.Rect)

	c := Circle(5, 6, 20)
	assert.Equal(t, ShapeCircle, c.Kind)
	assert.Equal(t, 20.0, c.H)
	assert.Equal(t, 10.0, c.Radius())
}
