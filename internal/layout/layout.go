package layout

// Layout is the computed box of one node.
type Layout struct {
	// Rect is the border box: the slot the parent allocated after removing
	// this node's margin. Hit-testing and backgrounds use it.
	Rect Rect

	// ContentRect is Rect minus border and padding. Children and content
	// are placed inside it.
	ContentRect Rect

	Padding Edges
	Border  Edges
	Margin  Edges

	// Intrinsic is the border-box size measured bottom-up, before the
	// parent's distribution.
	Intrinsic Size

	// Clips is set when the node clips its children to Clip.
	Clips bool
	Clip  Rect
}

// PaintBounds returns the rectangle painting of this node may touch.
func (l Layout) PaintBounds() Rect {
	return l.Rect
}
