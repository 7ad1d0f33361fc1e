package layout

// Point is an (X, Y) coordinate in pixels.
type Point struct {
	X, Y int
}

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In reports whether the point lies inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Size is a width and height pair.
type Size struct {
	Width, Height int
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// main returns the extent along the main axis of a row or column.
func (s Size) main(row bool) int {
	if row {
		return s.Width
	}
	return s.Height
}

func (s Size) cross(row bool) int {
	if row {
		return s.Height
	}
	return s.Width
}
