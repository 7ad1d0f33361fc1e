package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Basic measures with the x/image 7x13 bitmap face scaled linearly to the
// requested size. It needs no font data and never fails.
type Basic struct{}

const basicSize = 13

// Advance implements Metrics.
func (Basic) Advance(s string, size float64) int {
	adv := font.MeasureString(basicfont.Face7x13, Normalize(s))
	return int(math.Ceil(float64(adv) / 64 * size / basicSize))
}

// LineHeight implements Metrics.
func (Basic) LineHeight(size float64) int {
	h := basicfont.Face7x13.Metrics().Height
	return int(math.Ceil(float64(h) / 64 * size / basicSize))
}
