package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-gui/internal/layout"
)

// Shadow is an outer box shadow. The zero value paints nothing.
type Shadow struct {
	X, Y   int // offset
	Blur   int
	Spread int
	Color  Color
}

// IsZero reports whether s paints nothing.
func (s Shadow) IsZero() bool {
	return s.Color.IsTransparent() || s.Blur == 0 && s.Spread <= 0 && s.X == 0 && s.Y == 0
}

// Outset returns how far s reaches past each side of the box it is cast
// by. Sides the shadow does not reach are zero.
func (s Shadow) Outset() layout.Edges {
	if s.IsZero() {
		return layout.Edges{}
	}
	reach := s.Blur + s.Spread
	return layout.EdgeTRBL(
		max(0, reach-s.Y),
		max(0, reach+s.X),
		max(0, reach+s.Y),
		max(0, reach-s.X),
	)
}

// Bounds returns the area the shadow of box covers, box included.
func (s Shadow) Bounds(box layout.Rect) layout.Rect {
	if s.IsZero() || box.IsEmpty() {
		return box
	}
	return box.Outset(s.Outset())
}

func (s Shadow) String() string {
	if s == (Shadow{}) {
		return "none"
	}
	return fmt.Sprintf("%d %d %d %d %s", s.X, s.Y, s.Blur, s.Spread, s.Color)
}

// ShadowValue returns a box-shadow value.
func ShadowValue(s Shadow) Value { return Value{Kind: KindShadow, Shadow: s} }

// parseShadow reads "none" or "x y [blur [spread]] [color]". Lengths may
// carry a px suffix; the color defaults to black.
func parseShadow(s string) (Value, error) {
	if s == "none" {
		return ShadowValue(Shadow{}), nil
	}
	fields := strings.Fields(s)
	sh := Shadow{Color: Black}
	if n := len(fields); n > 0 {
		if c, err := ParseColor(fields[n-1]); err == nil {
			sh.Color = c
			fields = fields[:n-1]
		}
	}
	if len(fields) < 2 || len(fields) > 4 {
		return Value{}, fmt.Errorf("%s: want x y [blur [spread]] [color], got %q", PropBoxShadow, s)
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil || !finite(n) {
			return Value{}, fmt.Errorf("%s: bad length %q", PropBoxShadow, f)
		}
		nums[i] = int(n)
	}
	sh.X, sh.Y = nums[0], nums[1]
	if len(nums) > 2 {
		sh.Blur = nums[2]
	}
	if len(nums) > 3 {
		sh.Spread = nums[3]
	}
	return ShadowValue(sh), nil
}
