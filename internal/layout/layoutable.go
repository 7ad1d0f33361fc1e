package layout

// Layoutable is anything that can take part in layout calculation. The
// engine works entirely through this interface.
type Layoutable interface {
	// LayoutStyle returns the node's layout properties.
	LayoutStyle() Style

	// LayoutChildren returns the children in paint order.
	LayoutChildren() []Layoutable

	// SetLayout stores the computed box.
	SetLayout(Layout)

	// GetLayout returns the last computed box.
	GetLayout() Layout

	// IntrinsicSize returns the natural size of the node's own content,
	// excluding padding and border. maxWidth is the content width the node
	// is measured against, or -1 when it is unconstrained. It is called
	// again during placement once the width a node gets is known. Containers
	// without content of their own return zero.
	IntrinsicSize(maxWidth int) Size
}

// Labeler is implemented by nodes that can name themselves in errors and
// logs.
type Labeler interface {
	LayoutLabel() string
}
