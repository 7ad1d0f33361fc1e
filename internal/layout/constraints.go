package layout

import "math"

// sanitize returns s with every amount the engine cannot use clamped, and
// records an *Error for each clamp.
func (n *node) sanitize(s Style) Style {
	s.Width = n.checkValue("width", s.Width)
	s.Height = n.checkValue("height", s.Height)
	s.MinWidth = n.checkValue("min-width", s.MinWidth)
	s.MinHeight = n.checkValue("min-height", s.MinHeight)
	s.MaxWidth = n.checkValue("max-width", s.MaxWidth)
	s.MaxHeight = n.checkValue("max-height", s.MaxHeight)
	s.Gap = n.checkInt("gap", s.Gap)
	s.FlexGrow = n.checkFactor("flex-grow", s.FlexGrow)
	s.FlexShrink = n.checkFactor("flex-shrink", s.FlexShrink)
	s.Padding = n.checkEdges("padding", s.Padding)
	s.Border = n.checkEdges("border", s.Border)
	s.Margin = n.checkEdges("margin", s.Margin)
	n.checkMinMax("width", s.MinWidth, s.MaxWidth)
	n.checkMinMax("height", s.MinHeight, s.MaxHeight)
	return s
}

func (n *node) report(property string, value float64, reason string) {
	n.errs = append(n.errs, &Error{
		Node:     n.src,
		Label:    labelOf(n.src),
		Property: property,
		Value:    value,
		Reason:   reason,
	})
}

func (n *node) checkValue(property string, v Value) Value {
	if v.IsAuto() {
		return v
	}
	if !v.IsFinite() {
		n.report(property, v.Amount, "non-finite amount clamped to zero")
		return Value{Unit: v.Unit}
	}
	if v.Amount < 0 {
		n.report(property, v.Amount, "negative amount clamped to zero")
		return Value{Unit: v.Unit}
	}
	return v
}

func (n *node) checkInt(property string, v int) int {
	if v < 0 {
		n.report(property, float64(v), "negative amount clamped to zero")
		return 0
	}
	return v
}

func (n *node) checkFactor(property string, f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		n.report(property, f, "factor must be finite and non-negative; clamped to zero")
		return 0
	}
	return f
}

func (n *node) checkEdges(property string, e Edges) Edges {
	return Edges{
		Top:    n.checkInt(property+"-top", e.Top),
		Right:  n.checkInt(property+"-right", e.Right),
		Bottom: n.checkInt(property+"-bottom", e.Bottom),
		Left:   n.checkInt(property+"-left", e.Left),
	}
}

// checkMinMax reports a minimum above the maximum when both use the same
// unit. Resolution lets the minimum win either way.
func (n *node) checkMinMax(axis string, lo, hi Value) {
	if lo.IsAuto() || hi.IsAuto() || lo.Unit != hi.Unit {
		return
	}
	if lo.Amount > hi.Amount {
		n.report("min-"+axis, lo.Amount, "minimum exceeds maximum; minimum wins")
	}
}
