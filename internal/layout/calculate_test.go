package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculate_GrowRemainderToLastChild(t *testing.T) {
	a, b, c := leaf("a", grow(1), 0, 0), leaf("b", grow(1), 0, 0), leaf("c", grow(1), 0, 0)
	root := newTestNode(DefaultStyle(), a, b, c)

	if errs := Calculate(root, 100, 10); len(errs) != 0 {
		t.Fatalf("Calculate() errors = %v", errs)
	}

	if diff := cmp.Diff([]int{33, 33, 34}, widths(a, b, c)); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	for i, want := range []int{0, 33, 66} {
		if got := []*testNode{a, b, c}[i].layout.Rect.X; got != want {
			t.Errorf("child %d X = %d, want %d", i, got, want)
		}
	}
	if got := a.layout.Rect.Height; got != 10 {
		t.Errorf("stretched height = %d, want 10", got)
	}
}

func TestCalculate_DistributionSumsExactly(t *testing.T) {
	type tc struct {
		weights []float64
		width   int
	}

	tests := map[string]tc{
		"thirds of 100":  {weights: []float64{1, 1, 1}, width: 100},
		"sevenths of 99": {weights: []float64{1, 1, 1, 1, 1, 1, 1}, width: 99},
		"uneven weights": {weights: []float64{0.3, 1.7, 2.9, 0.1}, width: 257},
		"single child":   {weights: []float64{5}, width: 13},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var kids []*testNode
			for _, w := range tt.weights {
				kids = append(kids, leaf("", grow(w), 0, 0))
			}
			root := newTestNode(DefaultStyle(), kids...)
			Calculate(root, tt.width, 5)

			if got := sum(widths(kids...)); got != tt.width {
				t.Errorf("sum of widths = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestCalculate_Shrink(t *testing.T) {
	type tc struct {
		styles []Style
		sizes  []int
		width  int
		want   []int
	}

	fixedMin := DefaultStyle()
	fixedMin.MinWidth = Fixed(8)

	noShrink := DefaultStyle()
	noShrink.FlexShrink = 0

	tests := map[string]tc{
		"proportional": {
			styles: []Style{DefaultStyle(), DefaultStyle()},
			sizes:  []int{10, 10},
			width:  10,
			want:   []int{5, 5},
		},
		"never below zero": {
			styles: []Style{DefaultStyle(), DefaultStyle()},
			sizes:  []int{30, 0},
			width:  10,
			want:   []int{10, 0},
		},
		"min freezes and redistributes": {
			styles: []Style{fixedMin, DefaultStyle()},
			sizes:  []int{10, 10},
			width:  10,
			want:   []int{8, 2},
		},
		"zero shrink keeps size": {
			styles: []Style{noShrink, DefaultStyle()},
			sizes:  []int{6, 10},
			width:  10,
			want:   []int{6, 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var kids []*testNode
			for i, s := range tt.styles {
				kids = append(kids, leaf("", s, tt.sizes[i], 1))
			}
			root := newTestNode(DefaultStyle(), kids...)
			Calculate(root, tt.width, 1)

			if diff := cmp.Diff(tt.want, widths(kids...)); diff != "" {
				t.Errorf("widths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_GrowRespectsMax(t *testing.T) {
	capped := grow(1)
	capped.MaxWidth = Fixed(10)
	a, b, c := leaf("a", capped, 0, 0), leaf("b", grow(1), 0, 0), leaf("c", grow(1), 0, 0)
	root := newTestNode(DefaultStyle(), a, b, c)

	Calculate(root, 100, 10)

	if diff := cmp.Diff([]int{10, 45, 45}, widths(a, b, c)); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_Block(t *testing.T) {
	rootStyle := DefaultStyle()
	rootStyle.Display = DisplayBlock
	rootStyle.Padding = EdgeAll(2)

	a := leaf("a", DefaultStyle(), 5, 10)
	fixed := DefaultStyle()
	fixed.Height = Fixed(7)
	b := leaf("b", fixed, 5, 20)
	root := newTestNode(rootStyle, a, b)

	Calculate(root, 50, 100)

	if got, want := a.layout.Rect, NewRect(2, 2, 46, 10); got != want {
		t.Errorf("a = %+v, want %+v", got, want)
	}
	if got, want := b.layout.Rect, NewRect(2, 12, 46, 7); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}
}

func TestCalculate_BoxModel(t *testing.T) {
	s := DefaultStyle()
	s.Direction = Column
	s.Padding = EdgeSymmetric(1, 2)
	s.Border = EdgeAll(1)

	childStyle := DefaultStyle()
	childStyle.Margin = EdgeAll(3)
	child := leaf("child", childStyle, 4, 4)
	root := newTestNode(s, child)

	Calculate(root, 40, 30)

	if got, want := root.layout.ContentRect, NewRect(3, 2, 34, 26); got != want {
		t.Errorf("ContentRect = %+v, want %+v", got, want)
	}
	if got, want := child.layout.Rect, NewRect(6, 5, 28, 4); got != want {
		t.Errorf("child Rect = %+v, want %+v", got, want)
	}
	if got, want := child.layout.Margin, EdgeAll(3); got != want {
		t.Errorf("child Margin = %+v, want %+v", got, want)
	}
}

func TestCalculate_IntrinsicContainer(t *testing.T) {
	inner := DefaultStyle()
	inner.Gap = 2
	inner.Padding = EdgeAll(1)
	a := leaf("a", DefaultStyle(), 10, 5)
	b := leaf("b", DefaultStyle(), 20, 8)
	box := newTestNode(inner, a, b)

	outer := DefaultStyle()
	outer.Direction = Column
	outer.AlignItems = AlignStart
	root := newTestNode(outer, box)

	Calculate(root, 200, 200)

	if got, want := box.layout.Intrinsic, (Size{Width: 34, Height: 10}); got != want {
		t.Errorf("Intrinsic = %+v, want %+v", got, want)
	}
	if got, want := box.layout.Rect, NewRect(0, 0, 34, 10); got != want {
		t.Errorf("Rect = %+v, want %+v", got, want)
	}
	if got, want := b.layout.Rect.X, 1+10+2; got != want {
		t.Errorf("b X = %d, want %d", got, want)
	}
}

func TestCalculate_JustifyAndAlign(t *testing.T) {
	type tc struct {
		justify Justify
		align   Align
		wantX   []int
		wantY   int
	}

	tests := map[string]tc{
		"start":         {justify: JustifyStart, align: AlignStart, wantX: []int{0, 10}, wantY: 0},
		"end":           {justify: JustifyEnd, align: AlignEnd, wantX: []int{80, 90}, wantY: 16},
		"center":        {justify: JustifyCenter, align: AlignCenter, wantX: []int{40, 50}, wantY: 8},
		"space between": {justify: JustifySpaceBetween, align: AlignStart, wantX: []int{0, 90}, wantY: 0},
		"space evenly":  {justify: JustifySpaceEvenly, align: AlignStart, wantX: []int{26, 62}, wantY: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := DefaultStyle()
			s.JustifyContent = tt.justify
			s.AlignItems = tt.align
			a, b := leaf("a", DefaultStyle(), 10, 4), leaf("b", DefaultStyle(), 10, 4)
			root := newTestNode(s, a, b)

			Calculate(root, 100, 20)

			if diff := cmp.Diff(tt.wantX, []int{a.layout.Rect.X, b.layout.Rect.X}); diff != "" {
				t.Errorf("X mismatch (-want +got):\n%s", diff)
			}
			if got := a.layout.Rect.Y; got != tt.wantY {
				t.Errorf("Y = %d, want %d", got, tt.wantY)
			}
		})
	}
}

func TestCalculate_AlignSelfOverrides(t *testing.T) {
	s := DefaultStyle()
	s.AlignItems = AlignStart
	self := DefaultStyle()
	self.AlignSelf = AlignEnd
	a, b := leaf("a", DefaultStyle(), 10, 4), leaf("b", self, 10, 4)
	root := newTestNode(s, a, b)

	Calculate(root, 100, 20)

	if a.layout.Rect.Y != 0 || b.layout.Rect.Y != 16 {
		t.Errorf("Y = (%d, %d), want (0, 16)", a.layout.Rect.Y, b.layout.Rect.Y)
	}
}

func TestCalculate_Overflow(t *testing.T) {
	type tc struct {
		overflow  Overflow
		wantWidth int
		wantClips bool
	}

	tests := map[string]tc{
		"fit trims child":  {overflow: OverflowFit, wantWidth: 20, wantClips: false},
		"clip keeps child": {overflow: OverflowClip, wantWidth: 50, wantClips: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := DefaultStyle()
			s.Overflow = tt.overflow
			wide := DefaultStyle()
			wide.Width = Fixed(50)
			wide.FlexShrink = 0
			child := leaf("wide", wide, 0, 0)
			root := newTestNode(s, child)

			Calculate(root, 20, 10)

			if got := child.layout.Rect.Width; got != tt.wantWidth {
				t.Errorf("child width = %d, want %d", got, tt.wantWidth)
			}
			if got := root.layout.Clips; got != tt.wantClips {
				t.Errorf("Clips = %v, want %v", got, tt.wantClips)
			}
			if tt.wantClips && root.layout.Clip != root.layout.ContentRect {
				t.Errorf("Clip = %+v, want %+v", root.layout.Clip, root.layout.ContentRect)
			}
			if !tt.wantClips && !root.layout.ContentRect.ContainsRect(child.layout.Rect) {
				t.Errorf("child %+v escapes content %+v", child.layout.Rect, root.layout.ContentRect)
			}
		})
	}
}

func TestCalculate_DisplayNone(t *testing.T) {
	hidden := grow(1)
	hidden.Display = DisplayNone
	a, b, c := leaf("a", grow(1), 0, 0), leaf("b", hidden, 30, 30), leaf("c", grow(1), 0, 0)
	root := newTestNode(DefaultStyle(), a, b, c)

	Calculate(root, 100, 10)

	if diff := cmp.Diff([]int{50, 0, 50}, widths(a, b, c)); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	if !b.layout.Rect.IsEmpty() {
		t.Errorf("hidden child rect = %+v, want empty", b.layout.Rect)
	}
}

func TestCalculate_InvalidConstraints(t *testing.T) {
	bad := DefaultStyle()
	bad.Width = Px(math.NaN())
	bad.Padding = Edges{Left: -3}
	bad.MinHeight = Fixed(9)
	bad.MaxHeight = Fixed(4)
	bad.FlexGrow = math.Inf(1)
	child := leaf("bad", bad, 5, 1)
	root := newTestNode(DefaultStyle(), child)

	errs := Calculate(root, 40, 20)

	var props []string
	for _, e := range errs {
		if !errors.Is(e, ErrConstraint) {
			t.Errorf("errors.Is(%v, ErrConstraint) = false", e)
		}
		if e.Label != "bad" {
			t.Errorf("Label = %q, want %q", e.Label, "bad")
		}
		props = append(props, e.Property)
	}
	want := []string{"width", "flex-grow", "padding-left", "min-height"}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Errorf("error properties mismatch (-want +got):\n%s", diff)
	}

	if got := child.layout.Rect.Width; got != 0 {
		t.Errorf("width = %d, want 0 after clamping", got)
	}
	if got := child.layout.Rect.Height; got != 9 {
		t.Errorf("height = %d, want 9 (min wins)", got)
	}
}

type negativeNode struct{ testNode }

func (n *negativeNode) IntrinsicSize(int) Size { return Size{Width: -5, Height: 2} }

func TestCalculate_NegativeIntrinsic(t *testing.T) {
	s := DefaultStyle()
	s.AlignItems = AlignStart
	n := &negativeNode{testNode{name: "neg", style: DefaultStyle()}}
	wrapper := &wrapperNode{style: s, kids: []Layoutable{n}}
	errs := Calculate(wrapper, 10, 10)

	if len(errs) != 1 || errs[0].Property != "intrinsic-width" {
		t.Fatalf("errors = %v, want one intrinsic-width error", errs)
	}
	if got := n.layout.Intrinsic; got != (Size{Width: 0, Height: 2}) {
		t.Errorf("Intrinsic = %+v, want {0 2}", got)
	}
}

// wrapperNode holds arbitrary Layoutable children.
type wrapperNode struct {
	style  Style
	kids   []Layoutable
	layout Layout
}

func (w *wrapperNode) LayoutStyle() Style           { return w.style }
func (w *wrapperNode) LayoutChildren() []Layoutable { return w.kids }
func (w *wrapperNode) SetLayout(l Layout)           { w.layout = l }
func (w *wrapperNode) GetLayout() Layout            { return w.layout }
func (w *wrapperNode) IntrinsicSize(int) Size       { return Size{} }

func buildWideTree(depth, fan int) *testNode {
	if depth == 0 {
		return leaf("leaf", grow(float64(fan%3)), fan, depth+1)
	}
	s := grow(1)
	if depth%2 == 0 {
		s.Direction = Column
	}
	s.Gap = depth
	s.Padding = EdgeAll(depth % 2)
	n := newTestNode(s)
	for i := 0; i < fan; i++ {
		n.children = append(n.children, buildWideTree(depth-1, fan+i%2))
	}
	return n
}

func snapshot(n *testNode, out []Layout) []Layout {
	out = append(out, n.layout)
	for _, c := range n.children {
		out = snapshot(c, out)
	}
	return out
}

func TestCalculate_Deterministic(t *testing.T) {
	first := buildWideTree(4, 3)
	second := buildWideTree(4, 3)

	Calculate(first, 997, 613)
	Calculate(second, 997, 613)

	if diff := cmp.Diff(snapshot(first, nil), snapshot(second, nil)); diff != "" {
		t.Errorf("layouts differ between runs (-first +second):\n%s", diff)
	}
}

func TestCalculate_ParallelMatchesSequential(t *testing.T) {
	seq := buildWideTree(5, 3)
	par := buildWideTree(5, 3)

	CalculateWith(seq, 1280, 720, Options{ParallelThreshold: -1})
	CalculateWith(par, 1280, 720, Options{ParallelThreshold: 1, Workers: 4})

	if diff := cmp.Diff(snapshot(seq, nil), snapshot(par, nil)); diff != "" {
		t.Errorf("parallel layout differs (-sequential +parallel):\n%s", diff)
	}
}

func TestCalculate_NilRoot(t *testing.T) {
	if errs := Calculate(nil, 10, 10); errs != nil {
		t.Errorf("Calculate(nil) = %v, want nil", errs)
	}
}

// wrapNode is content made of runs unbreakable words, each unit wide,
// set in 10px lines.
type wrapNode struct {
	testNode
	runs, unit int
}

func wrapping(runs, unit int) *wrapNode {
	return &wrapNode{testNode: testNode{style: DefaultStyle()}, runs: runs, unit: unit}
}

func (w *wrapNode) IntrinsicSize(maxWidth int) Size {
	if maxWidth < 0 || maxWidth >= w.runs*w.unit {
		return Size{Width: w.runs * w.unit, Height: 10}
	}
	perLine := max(1, maxWidth/w.unit)
	lines := (w.runs + perLine - 1) / perLine
	return Size{Width: perLine * w.unit, Height: lines * 10}
}

func TestCalculate_WrapsAtPlacedWidth(t *testing.T) {
	column := DefaultStyle()
	column.Direction = Column
	rowStart := DefaultStyle()
	rowStart.AlignItems = AlignStart
	block := DefaultStyle()
	block.Display = DisplayBlock
	block.Padding = EdgeAll(10)

	type tc struct {
		build    func(text *wrapNode) Layoutable
		viewport Size
		want     Rect
	}

	tests := map[string]tc{
		"auto child of a narrow column": {
			build: func(text *wrapNode) Layoutable {
				narrow := column
				narrow.Width = Fixed(40)
				inner := &wrapperNode{style: column, kids: []Layoutable{text}}
				return &wrapperNode{style: narrow, kids: []Layoutable{inner}}
			},
			viewport: Size{Width: 200, Height: 100},
			want:     Rect{X: 0, Y: 0, Width: 40, Height: 20},
		},
		"shrunk in a row": {
			build: func(text *wrapNode) Layoutable {
				return &wrapperNode{style: rowStart, kids: []Layoutable{text, wrapping(8, 10)}}
			},
			viewport: Size{Width: 100, Height: 100},
			want:     Rect{X: 0, Y: 0, Width: 50, Height: 20},
		},
		"inside block padding": {
			build: func(text *wrapNode) Layoutable {
				return &wrapperNode{style: block, kids: []Layoutable{text}}
			},
			viewport: Size{Width: 60, Height: 100},
			want:     Rect{X: 10, Y: 10, Width: 40, Height: 20},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			text := wrapping(8, 10)
			Calculate(tt.build(text), tt.viewport.Width, tt.viewport.Height)

			if diff := cmp.Diff(tt.want, text.layout.Rect); diff != "" {
				t.Errorf("text box mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_WrappedHeightPushesSiblings(t *testing.T) {
	column := DefaultStyle()
	column.Direction = Column
	column.Width = Fixed(40)
	text := wrapping(8, 10)
	after := leaf("after", DefaultStyle(), 10, 5)

	Calculate(&wrapperNode{style: column, kids: []Layoutable{text, after}}, 200, 100)

	if got := after.layout.Rect.Y; got != 20 {
		t.Errorf("sibling Y = %d, want 20 below two wrapped lines", got)
	}
}
