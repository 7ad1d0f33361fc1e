package layout

// Edges holds a value for each of the four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns Edges with n on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric returns Edges with v on top and bottom and h on left and right.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL returns Edges in CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Add returns the side-wise sum of e and other.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// IsZero reports whether every side is zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

func (e Edges) main(row bool) int {
	if row {
		return e.Horizontal()
	}
	return e.Vertical()
}

func (e Edges) cross(row bool) int {
	if row {
		return e.Vertical()
	}
	return e.Horizontal()
}
