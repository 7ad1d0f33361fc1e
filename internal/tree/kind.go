package tree

import (
	"image"

	"github.com/grindlemire/go-gui/internal/layout"
)

// Kind is the closed set of node kinds.
type Kind uint8

const (
	KindContainer Kind = iota
	KindText
	KindImage
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// HasTexture reports whether the kind keeps its content in a texture.
func (k Kind) HasTexture() bool {
	return k != KindContainer
}

// Content is the payload of a custom node.
type Content interface {
	// Measure returns the natural size of the content. maxWidth is -1
	// when unconstrained.
	Measure(maxWidth int) layout.Size
	// PaintBounds returns the area painting may touch, given the node's
	// border box.
	PaintBounds(box layout.Rect) layout.Rect
	// HitTest reports whether p falls on the content inside box.
	HitTest(box layout.Rect, p layout.Point) bool
	// Equal reports whether other paints identically.
	Equal(other Content) bool
}

// Payload is the kind specific content of a node.
type Payload struct {
	Text   string      // KindText, NFC normalized
	Image  image.Image // KindImage, compared by identity
	Custom Content     // KindCustom
}

// Equal reports whether p and o paint identically.
func (p Payload) Equal(o Payload) bool {
	if p.Text != o.Text || p.Image != o.Image {
		return false
	}
	if p.Custom == nil || o.Custom == nil {
		return p.Custom == nil && o.Custom == nil
	}
	return p.Custom.Equal(o.Custom)
}

// PaintBounds returns the area painting n may touch, its box shadow
// included.
func (n *Node) PaintBounds() layout.Rect {
	box := n.Box.Rect
	bounds := box
	if n.Kind == KindCustom && n.Payload.Custom != nil {
		bounds = n.Payload.Custom.PaintBounds(box)
	}
	if sh := n.Style.Shadow; !sh.IsZero() && !box.IsEmpty() {
		bounds = bounds.Union(sh.Bounds(box))
	}
	return bounds
}

// HitTest reports whether p hits n's own shape. Ancestor clips are the
// caller's concern.
func (n *Node) HitTest(p layout.Point) bool {
	if !n.Style.Visible || !p.In(n.Box.Rect) {
		return false
	}
	if n.Kind == KindCustom && n.Payload.Custom != nil {
		return n.Payload.Custom.HitTest(n.Box.Rect, p)
	}
	return true
}

// ContentSize is the size of the texture a node's content needs.
func (n *Node) ContentSize() layout.Size {
	return n.Box.ContentRect.Size()
}
