package gui

import (
	"image"

	"github.com/grindlemire/go-gui/internal/style"
	"github.com/grindlemire/go-gui/internal/tree"
)

// ID identifies a node across frames.
type ID = tree.ID

// Kind is the kind of a node.
type Kind = tree.Kind

const (
	KindContainer = tree.KindContainer
	KindText      = tree.KindText
	KindImage     = tree.KindImage
	KindCustom    = tree.KindCustom
)

// Content is the payload of a custom node. It measures, bounds and hit
// tests itself; a renderer that knows how may also let it paint.
type Content = tree.Content

// Node is one element of the declarative UI description. Nodes are cheap
// and rebuilt every frame; identity comes from keys and positions, not
// from the *Node pointer.
type Node struct {
	kind      Kind
	key       string
	elementID string
	classes   []string
	decls     []style.Declaration
	inherit   style.PropertySet
	focusable bool
	payload   tree.Payload
	children  []*Node
	handlers  handlers
	ref       *Ref
}

// New creates a container node.
func New(opts ...Option) *Node {
	return build(KindContainer, tree.Payload{}, opts)
}

// Text creates a text node.
func Text(s string, opts ...Option) *Node {
	return build(KindText, tree.Payload{Text: s}, opts)
}

// Image creates an image node. img is compared by identity between frames,
// so reuse the same value while the picture is unchanged.
func Image(img image.Image, opts ...Option) *Node {
	return build(KindImage, tree.Payload{Image: img}, opts)
}

// Custom creates a node whose content is drawn by c.
func Custom(c Content, opts ...Option) *Node {
	return build(KindCustom, tree.Payload{Custom: c}, opts)
}

func build(kind Kind, payload tree.Payload, opts []Option) *Node {
	n := &Node{kind: kind, payload: payload}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AddChild appends children, skipping nil ones, and returns n.
func (n *Node) AddChild(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// Children returns the node's children.
func (n *Node) Children() []*Node {
	return n.children
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Key returns the caller supplied key.
func (n *Node) Key() string {
	return n.key
}

// Text returns the payload of a text node.
func (n *Node) Text() string {
	return n.payload.Text
}
