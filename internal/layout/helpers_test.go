package layout

// testNode is a minimal Layoutable for engine tests.
type testNode struct {
	name     string
	style    Style
	content  Size
	children []*testNode
	layout   Layout
}

func newTestNode(style Style, children ...*testNode) *testNode {
	return &testNode{style: style, children: children}
}

func leaf(name string, style Style, w, h int) *testNode {
	return &testNode{name: name, style: style, content: Size{Width: w, Height: h}}
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) SetLayout(l Layout) { n.layout = l }
func (n *testNode) GetLayout() Layout  { return n.layout }

func (n *testNode) IntrinsicSize(int) Size { return n.content }

func (n *testNode) LayoutLabel() string { return n.name }

func grow(g float64) Style {
	s := DefaultStyle()
	s.FlexGrow = g
	return s
}

func widths(nodes ...*testNode) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.layout.Rect.Width
	}
	return out
}

func sum(vs []int) int {
	total := 0
	for _, v := range vs {
		total += v
	}
	return total
}
