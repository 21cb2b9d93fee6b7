package vmath

// Rect is an axis-aligned rectangle with top-left origin
type Rect struct {
	X, Y, W, H float64
}

func R(x, y, w, h float64) Rect {
	return Rect{x, y, w, h}
}

// Min returns the top-left corner
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}

// Max returns the bottom-right corner
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.W, r.Y + r.H}
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether the rectangles overlap. Touching edges do not
// count as overlap, matching scene-graph bounds intersection semantics.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
