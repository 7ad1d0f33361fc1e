package layout

import "math"

// flexItem holds per-child state while a container distributes its main
// axis. Sizes are outer sizes: they include the child's main-axis margin.
type flexItem struct {
	node   *node
	base   int // hypothetical size after min/max
	main   int // final size
	min    int
	max    int // -1 when unbounded
	grow   float64
	shrink float64
	frozen bool
}

func newFlexItem(n *node, row bool, mainSize int, flex bool) flexItem {
	s := n.style
	margin := s.Margin.main(row)
	lo := s.minSize(row).Resolve(mainSize, 0)
	hi := resolveMax(s.maxSize(row), mainSize)
	content := s.size(row).Resolve(mainSize, n.measured.main(row))

	item := flexItem{node: n, min: lo + margin, max: -1}
	if hi >= 0 {
		item.max = max(hi, lo) + margin
	}
	item.base = clampRange(content, lo, hi) + margin
	item.main = item.base
	if flex {
		item.grow = s.FlexGrow
		item.shrink = s.FlexShrink
	}
	return item
}

func (it *flexItem) factor(grow bool) float64 {
	if grow {
		return it.grow
	}
	return it.shrink
}

// arrange splits content among the children of n.
func (c *calc) arrange(n *node, content Rect) {
	if len(n.children) == 0 {
		return
	}

	s := n.style
	row := s.isRow()
	flex := s.Display == DisplayFlex
	mainSize := content.Size().main(row)
	crossSize := content.Size().cross(row)
	if !row {
		for _, child := range n.children {
			c.refit(child, columnWidth(s, child, crossSize))
		}
	}

	items := make([]flexItem, 0, len(n.children))
	for _, child := range n.children {
		if child.style.Display == DisplayNone {
			c.hide(child, Point{X: content.X, Y: content.Y})
			continue
		}
		items = append(items, newFlexItem(child, row, mainSize, flex))
	}
	if len(items) == 0 {
		return
	}

	gaps := s.Gap * (len(items) - 1)
	free := mainSize - gaps
	for i := range items {
		free -= items[i].base
	}
	if flex {
		switch {
		case free > 0:
			resolveFlexible(items, free, true)
		case free < 0:
			resolveFlexible(items, -free, false)
		}
	}

	if row {
		for i := range items {
			it := &items[i]
			c.refit(it.node, max(0, it.main-it.node.style.Margin.Horizontal()))
		}
	}

	used := gaps
	for i := range items {
		used += items[i].main
	}
	free = mainSize - used

	justify := s.JustifyContent
	if !flex {
		justify = JustifyStart
	}
	offset := justifyOffset(justify, free, len(items))
	spacing := justifySpacing(justify, free, len(items))

	for i := range items {
		item := &items[i]
		crossPos, crossExtent := crossPlacement(s, item.node.style, item.node.measured, row, crossSize)

		var slot Rect
		if row {
			slot = Rect{X: content.X + offset, Y: content.Y + crossPos, Width: item.main, Height: crossExtent}
		} else {
			slot = Rect{X: content.X + crossPos, Y: content.Y + offset, Width: crossExtent, Height: item.main}
		}
		box := slot.Inset(item.node.style.Margin)
		if s.Overflow == OverflowFit {
			box = box.Fit(content)
		}
		c.place(item.node, box)

		offset += item.main + s.Gap + spacing
	}
}

// resolveFlexible grows or shrinks items by amount in proportion to their
// factors. Items whose target breaks their min or max are frozen at the
// bound and the rest of the amount is shared again among the others.
func resolveFlexible(items []flexItem, amount int, grow bool) {
	for i := range items {
		items[i].frozen = items[i].factor(grow) <= 0
	}

	remaining := amount
	active := make([]int, 0, len(items))
	weights := make([]float64, 0, len(items))
	targets := make([]int, len(items))
	for {
		active, weights = active[:0], weights[:0]
		for i := range items {
			if !items[i].frozen {
				active = append(active, i)
				weights = append(weights, items[i].factor(grow))
			}
		}
		if len(active) == 0 {
			return
		}

		shares := distribute(remaining, weights)
		violated := false
		for k, i := range active {
			target := items[i].base - shares[k]
			if grow {
				target = items[i].base + shares[k]
			}
			targets[i] = target
			items[i].main = clampRange(target, items[i].min, items[i].max)
			if items[i].main != target {
				violated = true
			}
		}
		if !violated {
			return
		}

		remaining = amount
		for i := range items {
			it := &items[i]
			if !it.frozen && it.main != targets[i] {
				it.frozen = true
			}
			if it.frozen {
				remaining -= abs(it.main - it.base)
			}
		}
		remaining = max(0, remaining)
	}
}

// distribute splits total by weight. Every share but the last is floored;
// the last takes whatever is left so the shares sum to total exactly.
func distribute(total int, weights []float64) []int {
	shares := make([]int, len(weights))
	if len(weights) == 0 {
		return shares
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	assigned := 0
	last := len(weights) - 1
	for i, w := range weights[:last] {
		shares[i] = int(math.Floor(float64(total) * w / sum))
		assigned += shares[i]
	}
	shares[last] = total - assigned
	return shares
}

// crossPlacement returns the offset and outer extent of a child on the
// cross axis.
func crossPlacement(parent, child Style, measured Size, row bool, crossSize int) (pos, extent int) {
	align := child.AlignSelf
	if align == AlignAuto {
		align = parent.AlignItems
		if parent.Display == DisplayBlock {
			align = AlignStretch
		}
	}
	if align == AlignAuto {
		align = AlignStretch
	}

	margin := child.Margin.cross(row)
	avail := max(0, crossSize-margin)
	value := child.size(!row)

	var size int
	if align == AlignStretch && value.IsAuto() {
		size = avail
	} else {
		size = value.Resolve(avail, measured.cross(row))
	}
	size = clampRange(size, child.minSize(!row).Resolve(avail, 0), resolveMax(child.maxSize(!row), avail))

	extent = size + margin
	return alignOffset(align, crossSize, extent), extent
}

func justifyOffset(justify Justify, free, count int) int {
	if free <= 0 || count == 0 {
		return 0
	}
	switch justify {
	case JustifyEnd:
		return free
	case JustifyCenter:
		return free / 2
	case JustifySpaceAround:
		return free / (count * 2)
	case JustifySpaceEvenly:
		return free / (count + 1)
	default:
		return 0
	}
}

func justifySpacing(justify Justify, free, count int) int {
	if free <= 0 || count <= 1 {
		return 0
	}
	switch justify {
	case JustifySpaceBetween:
		return free / (count - 1)
	case JustifySpaceAround:
		return free / count
	case JustifySpaceEvenly:
		return free / (count + 1)
	default:
		return 0
	}
}

func alignOffset(align Align, crossSize, extent int) int {
	switch align {
	case AlignEnd:
		return crossSize - extent
	case AlignCenter:
		return (crossSize - extent) / 2
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
