package layout

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-gui/internal/debug"
)

// DefaultParallelThreshold is the subtree size at which measurement of a
// child moves to its own goroutine when Options leaves it unset.
const DefaultParallelThreshold = 512

// Options tunes a layout pass.
type Options struct {
	// Workers bounds concurrent measurement goroutines per container.
	// Zero means GOMAXPROCS.
	Workers int

	// ParallelThreshold is the minimum subtree size (node count) measured
	// on a separate goroutine. Zero means DefaultParallelThreshold; a
	// negative value disables parallel measurement.
	ParallelThreshold int
}

// Calculate lays out root inside a width x height viewport at the origin
// and stores the result on every node through SetLayout. It returns the
// constraint problems it clamped, in pre-order.
func Calculate(root Layoutable, width, height int) []*Error {
	return CalculateWith(root, width, height, Options{})
}

// CalculateWith is Calculate with explicit options.
func CalculateWith(root Layoutable, width, height int, opts Options) []*Error {
	if root == nil {
		return nil
	}

	c := &calc{workers: opts.Workers, threshold: opts.ParallelThreshold}
	if c.workers <= 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	if c.threshold == 0 {
		c.threshold = DefaultParallelThreshold
	}

	n := build(root)
	c.measure(n)
	viewport := Rect{Width: max(0, width), Height: max(0, height)}
	c.place(n, rootBox(n.style, viewport))

	errs := collect(n, nil)
	log := debug.Logger()
	for _, e := range errs {
		log.Warn("layout constraint clamped",
			"node", e.Label, "property", e.Property, "value", e.Value, "reason", e.Reason)
	}
	return errs
}

// node mirrors one Layoutable for the duration of a pass.
type node struct {
	src      Layoutable
	style    Style
	children []*node
	size     int  // nodes in this subtree, self included
	measured Size // intrinsic border-box size
	errs     []*Error

	// Height for fitWidth, memoized by fit.
	fitted    bool
	fitWidth  int
	fitHeight int
}

type calc struct {
	workers   int
	threshold int
}

func build(src Layoutable) *node {
	n := &node{src: src, size: 1}
	n.style = n.sanitize(src.LayoutStyle())
	for _, child := range src.LayoutChildren() {
		if child == nil {
			continue
		}
		cn := build(child)
		n.children = append(n.children, cn)
		n.size += cn.size
	}
	return n
}

func collect(n *node, out []*Error) []*Error {
	out = append(out, n.errs...)
	for _, child := range n.children {
		out = collect(child, out)
	}
	return out
}

// each runs fn over nodes. Children whose subtree reaches the threshold run
// on their own goroutine; results land on the nodes themselves, so the
// outcome matches a sequential walk.
func (c *calc) each(nodes []*node, fn func(*node)) {
	if c.threshold < 0 || len(nodes) < 2 {
		for _, n := range nodes {
			fn(n)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	for _, n := range nodes {
		if n.size < c.threshold {
			fn(n)
			continue
		}
		g.Go(func() error {
			fn(n)
			return nil
		})
	}
	_ = g.Wait()
}

// measure computes the intrinsic border-box size bottom-up.
func (c *calc) measure(n *node) {
	c.each(n.children, c.measure)

	s := n.style
	if s.Display == DisplayNone {
		return
	}

	frame := s.frame()
	maxWidth := -1
	if s.Width.Unit == UnitFixed {
		maxWidth = max(0, s.Width.Resolve(0, 0)-frame.Horizontal())
	}
	content := n.src.IntrinsicSize(maxWidth)
	if content.Width < 0 {
		n.report("intrinsic-width", float64(content.Width), "negative size clamped to zero")
		content.Width = 0
	}
	if content.Height < 0 {
		n.report("intrinsic-height", float64(content.Height), "negative size clamped to zero")
		content.Height = 0
	}

	kids := n.childrenExtent()
	w := max(content.Width, kids.Width) + frame.Horizontal()
	h := max(content.Height, kids.Height) + frame.Vertical()
	if s.Width.Unit == UnitFixed {
		w = s.Width.Resolve(0, w)
	}
	if s.Height.Unit == UnitFixed {
		h = s.Height.Resolve(0, h)
	}
	n.measured = Size{
		Width:  clampRange(w, fixedOr(s.MinWidth, 0), fixedOr(s.MaxWidth, -1)),
		Height: clampRange(h, fixedOr(s.MinHeight, 0), fixedOr(s.MaxHeight, -1)),
	}
}

// fit returns the border-box height of n when it is width wide. Content
// of its own and of its descendants is measured again at the width it will
// actually get, so wrapped text gets the lines it needs.
func (c *calc) fit(n *node, width int) int {
	s := n.style
	if s.Display == DisplayNone {
		return 0
	}
	if s.Height.Unit == UnitFixed {
		return n.measured.Height
	}
	if n.fitted && n.fitWidth == width {
		return n.fitHeight
	}

	frame := s.frame()
	inner := max(0, width-frame.Horizontal())
	h := max(0, n.src.IntrinsicSize(inner).Height)

	row := s.isRow()
	kids, count := 0, 0
	for _, child := range n.children {
		if child.style.Display == DisplayNone {
			continue
		}
		var cw int
		if row {
			cw = min(child.measured.Width, inner)
		} else {
			cw = columnWidth(s, child, inner)
		}
		ch := c.fit(child, cw) + child.style.Margin.Vertical()
		if row {
			kids = max(kids, ch)
		} else {
			kids += ch
		}
		count++
	}
	if !row && count > 1 {
		kids += s.Gap * (count - 1)
	}

	h = clampRange(max(h, kids)+frame.Vertical(), fixedOr(s.MinHeight, 0), fixedOr(s.MaxHeight, -1))
	n.fitted, n.fitWidth, n.fitHeight = true, width, h
	return h
}

// refit replaces the measured height of n with its height at width.
func (c *calc) refit(n *node, width int) {
	if n.style.Display == DisplayNone {
		return
	}
	n.measured.Height = c.fit(n, width)
}

// columnWidth is the border-box width child gets inside a column or block
// container whose content is crossSize wide.
func columnWidth(parent Style, child *node, crossSize int) int {
	margin := child.style.Margin.Horizontal()
	_, extent := crossPlacement(parent, child.style, child.measured, false, crossSize)
	w := extent - margin
	if parent.Overflow == OverflowFit {
		w = min(w, crossSize-margin)
	}
	return max(0, w)
}

// childrenExtent sums the children's outer sizes along the main axis and
// takes their maximum across it.
func (n *node) childrenExtent() Size {
	row := n.style.isRow()
	var mainSum, crossMax, count int
	for _, child := range n.children {
		if child.style.Display == DisplayNone {
			continue
		}
		m := child.style.Margin
		outer := Size{Width: child.measured.Width + m.Horizontal(), Height: child.measured.Height + m.Vertical()}
		mainSum += outer.main(row)
		crossMax = max(crossMax, outer.cross(row))
		count++
	}
	if count > 1 {
		mainSum += n.style.Gap * (count - 1)
	}
	if row {
		return Size{Width: mainSum, Height: crossMax}
	}
	return Size{Width: crossMax, Height: mainSum}
}

func rootBox(s Style, viewport Rect) Rect {
	w := s.Width.Resolve(viewport.Width, viewport.Width)
	h := s.Height.Resolve(viewport.Height, viewport.Height)
	return Rect{
		X:      viewport.X,
		Y:      viewport.Y,
		Width:  clampRange(w, s.MinWidth.Resolve(viewport.Width, 0), resolveMax(s.MaxWidth, viewport.Width)),
		Height: clampRange(h, s.MinHeight.Resolve(viewport.Height, 0), resolveMax(s.MaxHeight, viewport.Height)),
	}
}

// place stores the box for n and distributes its content rect.
func (c *calc) place(n *node, box Rect) {
	s := n.style
	l := Layout{
		Rect:      box,
		Padding:   s.Padding,
		Border:    s.Border,
		Margin:    s.Margin,
		Intrinsic: n.measured,
	}
	l.ContentRect = box.Inset(s.frame())
	if s.Overflow == OverflowClip {
		l.Clips = true
		l.Clip = l.ContentRect
	}
	n.src.SetLayout(l)
	if s.Display == DisplayNone {
		for _, child := range n.children {
			c.hide(child, Point{X: box.X, Y: box.Y})
		}
		return
	}
	c.arrange(n, l.ContentRect)
}

// hide gives a display:none subtree empty boxes anchored at p.
func (c *calc) hide(n *node, p Point) {
	r := Rect{X: p.X, Y: p.Y}
	n.src.SetLayout(Layout{Rect: r, ContentRect: r, Margin: n.style.Margin, Padding: n.style.Padding, Border: n.style.Border})
	for _, child := range n.children {
		c.hide(child, p)
	}
}

func clampRange(v, lo, hi int) int {
	if hi >= 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// fixedOr resolves v when it does not depend on the parent.
func fixedOr(v Value, fallback int) int {
	if v.Unit == UnitFixed {
		return v.Resolve(0, fallback)
	}
	return fallback
}

// resolveMax returns -1 for an unbounded maximum.
func resolveMax(v Value, available int) int {
	if v.IsAuto() {
		return -1
	}
	return v.Resolve(available, -1)
}
