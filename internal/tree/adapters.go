package tree

import (
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/style"
	"github.com/grindlemire/go-gui/internal/text"
)

// The Tree is the style resolver's input.
var _ style.Input = (*Tree)(nil)

// Children implements style.Input.
func (t *Tree) Children(i int) []int { return t.nodes[i].Children }

// Subject implements style.Input.
func (t *Tree) Subject(i int) style.Subject { return t.nodes[i].Subject() }

// Declarations implements style.Input.
func (t *Tree) Declarations(i int) []style.Declaration { return t.nodes[i].Declarations }

// Inherit implements style.Input.
func (t *Tree) Inherit(i int) style.PropertySet { return t.nodes[i].Inherit }

// SubtreeSize implements style.Input.
func (t *Tree) SubtreeSize(i int) int { return t.nodes[i].size }

// SetStyles stores resolved styles, indexed like the tree.
func (t *Tree) SetStyles(styles []style.Resolved) {
	for i := range t.nodes {
		t.nodes[i].Style = styles[i]
	}
}

// Layoutable returns the layout view of node i.
func (t *Tree) Layoutable(i int) layout.Layoutable {
	return layoutNode{t: t, i: i}
}

type layoutNode struct {
	t *Tree
	i int
}

func (l layoutNode) node() *Node { return &l.t.nodes[l.i] }

func (l layoutNode) LayoutStyle() layout.Style { return l.node().Style.Layout }

func (l layoutNode) LayoutChildren() []layout.Layoutable {
	kids := l.node().Children
	out := make([]layout.Layoutable, len(kids))
	for k, c := range kids {
		out[k] = layoutNode{t: l.t, i: c}
	}
	return out
}

func (l layoutNode) SetLayout(b layout.Layout) { l.node().Box = b }
func (l layoutNode) GetLayout() layout.Layout  { return l.node().Box }
func (l layoutNode) LayoutLabel() string       { return l.node().Label() }

// IntrinsicSize measures the node's own content by kind.
func (l layoutNode) IntrinsicSize(maxWidth int) layout.Size {
	n := l.node()
	switch n.Kind {
	case KindText:
		return text.Measure(l.t.metrics, n.Payload.Text, n.Style.FontSize, maxWidth)
	case KindImage:
		if n.Payload.Image == nil {
			return layout.Size{}
		}
		b := n.Payload.Image.Bounds()
		return layout.Size{Width: b.Dx(), Height: b.Dy()}
	case KindCustom:
		if n.Payload.Custom == nil {
			return layout.Size{}
		}
		return n.Payload.Custom.Measure(maxWidth)
	default:
		return layout.Size{}
	}
}
