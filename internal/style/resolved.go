package style

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-gui/internal/layout"
)

// TextAlign positions text inside its content rect.
type TextAlign uint8

const (
	TextAlignStart TextAlign = iota
	TextAlignCenter
	TextAlignEnd
)

// DefaultFontSize is the font size of a node with no font-size anywhere in
// its ancestry.
const DefaultFontSize = 14

// Resolved is the fully specified style of one node. It is comparable.
type Resolved struct {
	Layout layout.Style

	Color       Color
	Background  Color
	BorderColor Color
	FontSize    float64
	Opacity     float64
	Visible     bool
	TextAlign   TextAlign

	// BorderRadius rounds the corners of the background and border.
	BorderRadius int
	Shadow       Shadow
}

// Default returns the style of a node with no declarations.
func Default() Resolved {
	return Resolved{
		Layout:      layout.DefaultStyle(),
		Color:       Black,
		Background:  Transparent,
		BorderColor: Black,
		FontSize:    DefaultFontSize,
		Opacity:     1,
		Visible:     true,
	}
}

// GeometryDiffers reports whether moving from r to o can change a box.
func (r Resolved) GeometryDiffers(o Resolved) bool {
	return r.Layout != o.Layout || r.FontSize != o.FontSize
}

// inherit copies every property in set from parent.
func (r *Resolved) inherit(parent *Resolved, set PropertySet) {
	for p := Property(0); p < propCount; p++ {
		if set.Has(p) {
			r.copyFrom(parent, p)
		}
	}
}

func (r *Resolved) copyFrom(src *Resolved, p Property) {
	switch p {
	case PropDisplay:
		r.Layout.Display = src.Layout.Display
	case PropWidth:
		r.Layout.Width = src.Layout.Width
	case PropHeight:
		r.Layout.Height = src.Layout.Height
	case PropMinWidth:
		r.Layout.MinWidth = src.Layout.MinWidth
	case PropMinHeight:
		r.Layout.MinHeight = src.Layout.MinHeight
	case PropMaxWidth:
		r.Layout.MaxWidth = src.Layout.MaxWidth
	case PropMaxHeight:
		r.Layout.MaxHeight = src.Layout.MaxHeight
	case PropDirection:
		r.Layout.Direction = src.Layout.Direction
	case PropJustifyContent:
		r.Layout.JustifyContent = src.Layout.JustifyContent
	case PropAlignItems:
		r.Layout.AlignItems = src.Layout.AlignItems
	case PropAlignSelf:
		r.Layout.AlignSelf = src.Layout.AlignSelf
	case PropGap:
		r.Layout.Gap = src.Layout.Gap
	case PropFlexGrow:
		r.Layout.FlexGrow = src.Layout.FlexGrow
	case PropFlexShrink:
		r.Layout.FlexShrink = src.Layout.FlexShrink
	case PropPadding:
		r.Layout.Padding = src.Layout.Padding
	case PropBorder:
		r.Layout.Border = src.Layout.Border
	case PropMargin:
		r.Layout.Margin = src.Layout.Margin
	case PropOverflow:
		r.Layout.Overflow = src.Layout.Overflow
	case PropColor:
		r.Color = src.Color
	case PropBackground:
		r.Background = src.Background
	case PropBorderColor:
		r.BorderColor = src.BorderColor
	case PropFontSize:
		r.FontSize = src.FontSize
	case PropOpacity:
		r.Opacity = src.Opacity
	case PropVisibility:
		r.Visible = src.Visible
	case PropTextAlign:
		r.TextAlign = src.TextAlign
	case PropBorderRadius:
		r.BorderRadius = src.BorderRadius
	case PropBoxShadow:
		r.Shadow = src.Shadow
	}
}

var keywords = map[Property]map[string]uint8{
	PropDisplay: {
		"flex":  uint8(layout.DisplayFlex),
		"block": uint8(layout.DisplayBlock),
		"none":  uint8(layout.DisplayNone),
	},
	PropDirection: {
		"row":    uint8(layout.Row),
		"column": uint8(layout.Column),
	},
	PropJustifyContent: {
		"start":         uint8(layout.JustifyStart),
		"end":           uint8(layout.JustifyEnd),
		"center":        uint8(layout.JustifyCenter),
		"space-between": uint8(layout.JustifySpaceBetween),
		"space-around":  uint8(layout.JustifySpaceAround),
		"space-evenly":  uint8(layout.JustifySpaceEvenly),
	},
	PropAlignItems: {
		"start":   uint8(layout.AlignStart),
		"end":     uint8(layout.AlignEnd),
		"center":  uint8(layout.AlignCenter),
		"stretch": uint8(layout.AlignStretch),
	},
	PropAlignSelf: {
		"auto":    uint8(layout.AlignAuto),
		"start":   uint8(layout.AlignStart),
		"end":     uint8(layout.AlignEnd),
		"center":  uint8(layout.AlignCenter),
		"stretch": uint8(layout.AlignStretch),
	},
	PropOverflow: {
		"fit":    uint8(layout.OverflowFit),
		"clip":   uint8(layout.OverflowClip),
		"hidden": uint8(layout.OverflowClip),
	},
	PropVisibility: {
		"visible": 1,
		"hidden":  0,
	},
	PropTextAlign: {
		"start":  uint8(TextAlignStart),
		"left":   uint8(TextAlignStart),
		"center": uint8(TextAlignCenter),
		"end":    uint8(TextAlignEnd),
		"right":  uint8(TextAlignEnd),
	},
}

// apply sets one declared property on r. parent supplies the value for the
// inherit keyword. A returned error means the declaration was dropped.
func (r *Resolved) apply(parent *Resolved, d Declaration) error {
	v := d.Value
	p := d.Property
	if p >= propCount {
		return fmt.Errorf("unknown property %d", uint8(p))
	}
	if v.Kind == KindInherit {
		r.copyFrom(parent, p)
		return nil
	}

	if table, ok := keywords[p]; ok {
		if v.Kind != KindKeyword {
			return wrongKind(p, v)
		}
		k, ok := table[v.Keyword]
		if !ok {
			return fmt.Errorf("unknown keyword %q", v.Keyword)
		}
		r.setKeyword(p, k)
		return nil
	}

	switch p {
	case PropWidth, PropHeight, PropMinWidth, PropMinHeight, PropMaxWidth, PropMaxHeight:
		l, err := lengthOf(p, v)
		if err != nil {
			return err
		}
		*r.length(p) = l
	case PropGap:
		n, err := numberOf(p, v)
		if err != nil {
			return err
		}
		r.Layout.Gap = int(n)
	case PropFlexGrow, PropFlexShrink, PropFontSize, PropOpacity:
		n, err := numberOf(p, v)
		if err != nil {
			return err
		}
		switch p {
		case PropFlexGrow:
			r.Layout.FlexGrow = n
		case PropFlexShrink:
			r.Layout.FlexShrink = n
		case PropFontSize:
			r.FontSize = n
		case PropOpacity:
			r.Opacity = n
		}
	case PropPadding, PropBorder, PropMargin:
		e, err := edgesOf(p, v)
		if err != nil {
			return err
		}
		switch p {
		case PropPadding:
			r.Layout.Padding = e
		case PropBorder:
			r.Layout.Border = e
		case PropMargin:
			r.Layout.Margin = e
		}
	case PropColor, PropBackground, PropBorderColor:
		if v.Kind != KindColor {
			return wrongKind(p, v)
		}
		switch p {
		case PropColor:
			r.Color = v.Color
		case PropBackground:
			r.Background = v.Color
		case PropBorderColor:
			r.BorderColor = v.Color
		}
	case PropBorderRadius:
		l, err := lengthOf(p, v)
		if err != nil {
			return err
		}
		if l.Unit != layout.UnitFixed {
			return fmt.Errorf("%s accepts only fixed lengths", p)
		}
		r.BorderRadius = int(l.Amount)
	case PropBoxShadow:
		if v.Kind != KindShadow {
			return wrongKind(p, v)
		}
		r.Shadow = v.Shadow
	}
	return nil
}

func (r *Resolved) setKeyword(p Property, k uint8) {
	switch p {
	case PropDisplay:
		r.Layout.Display = layout.Display(k)
	case PropDirection:
		r.Layout.Direction = layout.Direction(k)
	case PropJustifyContent:
		r.Layout.JustifyContent = layout.Justify(k)
	case PropAlignItems:
		r.Layout.AlignItems = layout.Align(k)
	case PropAlignSelf:
		r.Layout.AlignSelf = layout.Align(k)
	case PropOverflow:
		r.Layout.Overflow = layout.Overflow(k)
	case PropVisibility:
		r.Visible = k == 1
	case PropTextAlign:
		r.TextAlign = TextAlign(k)
	}
}

func (r *Resolved) length(p Property) *layout.Value {
	switch p {
	case PropWidth:
		return &r.Layout.Width
	case PropHeight:
		return &r.Layout.Height
	case PropMinWidth:
		return &r.Layout.MinWidth
	case PropMinHeight:
		return &r.Layout.MinHeight
	case PropMaxWidth:
		return &r.Layout.MaxWidth
	default:
		return &r.Layout.MaxHeight
	}
}

func wrongKind(p Property, v Value) error {
	return fmt.Errorf("%s does not accept a %s value", p, v.Kind)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func numberOf(p Property, v Value) (float64, error) {
	if v.Kind != KindNumber {
		return 0, wrongKind(p, v)
	}
	if !finite(v.Number) {
		return 0, fmt.Errorf("non-finite number %v", v.Number)
	}
	return v.Number, nil
}

func lengthOf(p Property, v Value) (layout.Value, error) {
	switch v.Kind {
	case KindNumber:
		if !finite(v.Number) {
			return layout.Value{}, fmt.Errorf("non-finite number %v", v.Number)
		}
		return layout.Px(v.Number), nil
	case KindLength:
		if !v.Length.IsFinite() {
			return layout.Value{}, fmt.Errorf("non-finite length %v", v.Length.Amount)
		}
		return v.Length, nil
	default:
		return layout.Value{}, wrongKind(p, v)
	}
}

func edgesOf(p Property, v Value) (layout.Edges, error) {
	var e [4]float64
	switch v.Kind {
	case KindNumber:
		e = [4]float64{v.Number, v.Number, v.Number, v.Number}
	case KindEdges:
		e = v.Edges
	case KindLength:
		if v.Length.Unit != layout.UnitFixed {
			return layout.Edges{}, fmt.Errorf("%s accepts only fixed lengths", p)
		}
		n := v.Length.Amount
		e = [4]float64{n, n, n, n}
	default:
		return layout.Edges{}, wrongKind(p, v)
	}
	for _, f := range e {
		if !finite(f) {
			return layout.Edges{}, fmt.Errorf("non-finite edge %v", f)
		}
	}
	return layout.EdgeTRBL(int(e[0]), int(e[1]), int(e[2]), int(e[3])), nil
}

// normalize floors negative amounts at zero and clamps opacity into [0,1].
func (r *Resolved) normalize() {
	l := &r.Layout
	for _, v := range []*layout.Value{&l.Width, &l.Height, &l.MinWidth, &l.MinHeight, &l.MaxWidth, &l.MaxHeight} {
		if v.Amount < 0 {
			v.Amount = 0
		}
	}
	l.Gap = max(0, l.Gap)
	l.FlexGrow = max(0, l.FlexGrow)
	l.FlexShrink = max(0, l.FlexShrink)
	l.Padding = floorEdges(l.Padding)
	l.Border = floorEdges(l.Border)
	l.Margin = floorEdges(l.Margin)
	r.FontSize = max(0, r.FontSize)
	r.Opacity = min(1, max(0, r.Opacity))
	r.BorderRadius = max(0, r.BorderRadius)
	r.Shadow.Blur = max(0, r.Shadow.Blur)
}

func floorEdges(e layout.Edges) layout.Edges {
	return layout.EdgeTRBL(max(0, e.Top), max(0, e.Right), max(0, e.Bottom), max(0, e.Left))
}
