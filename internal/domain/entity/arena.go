package entity

// Arena holds the four static boundaries of the play area.
// Boundaries are centred on the window edges, so half of each one
// is inside the visible area.
type Arena struct {
	Width, Height float64
	Thickness     float64

	// Margin is the contact band used by every boundary check:
	// half the boundary thickness plus an optional slack.
	Margin float64

	Floor     Rect
	Ceiling   Rect
	LeftWall  Rect
	RightWall Rect
}

// NewArena lays out the boundaries for a width x height window
func NewArena(width, height, thickness, slack float64) Arena {
	return Arena{
		Width:     width,
		Height:    height,
		Thickness: thickness,
		Margin:    thickness/2 + slack,
		Floor:     Rect{X: 0, Y: -height / 2, W: width, H: thickness},
		Ceiling:   Rect{X: 0, Y: height / 2, W: width, H: thickness},
		LeftWall:  Rect{X: -width / 2, Y: 0, W: thickness, H: height},
		RightWall: Rect{X: width / 2, Y: 0, W: thickness, H: height},
	}
}

// Boundaries returns the four boundary rects in a fixed order
func (a Arena) Boundaries() [4]Rect {
	return [4]Rect{a.Floor, a.Ceiling, a.LeftWall, a.RightWall}
}

// PlayerBounds returns the allowed range for the centre x of a
// body with the given half width.
func (a Arena) PlayerBounds(halfWidth float64) (minX, maxX float64) {
	minX = a.LeftWall.X + a.Thickness/2 + halfWidth
	maxX = a.RightWall.X - a.Thickness/2 - halfWidth
	return minX, maxX
}

// AboveScreen reports whether y has left the top of the visible area
func (a Arena) AboveScreen(y float64) bool {
	return y > a.Height/2
}

// ToScreen converts a world point to screen pixels (origin top-left, +Y down)
func (a Arena) ToScreen(x, y float64) (sx, sy float64) {
	return x + a.Width/2, a.Height/2 - y
}
