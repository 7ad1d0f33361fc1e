// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package gui

import "github.com/grindlemire/go-gui/internal/layout"

// Display selects how a container places its children.
type Display = layout.Display

const (
	DisplayFlex  = layout.DisplayFlex
	DisplayBlock = layout.DisplayBlock
	DisplayNone  = layout.DisplayNone
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignAuto    = layout.AlignAuto
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Overflow controls whether children may extend past a container.
type Overflow = layout.Overflow

const (
	OverflowFit  = layout.OverflowFit
	OverflowClip = layout.OverflowClip
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Box is the computed layout of a node.
type Box = layout.Layout

// Fixed creates a Value of n pixels.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
