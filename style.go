// style.go re-exports style types from internal/style.
package gui

import (
	"io"

	"github.com/grindlemire/go-gui/internal/style"
)

// Color is an 8-bit straight alpha RGBA color.
type Color = style.Color

var (
	Transparent = style.Transparent
	Black       = style.Black
	White       = style.White
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return style.RGB(r, g, b)
}

// ParseColor reads #rgb, #rrggbb, #rrggbbaa or a color name.
func ParseColor(s string) (Color, error) {
	return style.ParseColor(s)
}

// Shadow is an outer box shadow.
type Shadow = style.Shadow

// Property identifies one style property.
type Property = style.Property

// Declaration assigns a value to a property.
type Declaration = style.Declaration

// Sheet is an ordered list of style rules.
type Sheet = style.Sheet

// Style is the fully resolved style of a node.
type Style = style.Resolved

// TextAlign positions text inside its content box.
type TextAlign = style.TextAlign

const (
	TextAlignStart  = style.TextAlignStart
	TextAlignCenter = style.TextAlignCenter
	TextAlignEnd    = style.TextAlignEnd
)

// ParseSheet reads a YAML style sheet.
func ParseSheet(data []byte) (*Sheet, error) {
	return style.ParseSheet(data)
}

// LoadSheet reads a YAML style sheet from r.
func LoadSheet(r io.Reader) (*Sheet, error) {
	return style.LoadSheet(r)
}
