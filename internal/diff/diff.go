package diff

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/tree"
)

type differ struct {
	prev, next *tree.Tree
	out        []Patch
}

// Diff returns the patches that turn prev into next. Either tree may be
// nil or empty.
func Diff(prev, next *tree.Tree) []Patch {
	d := &differ{prev: prev, next: next}
	switch {
	case prev.Len() == 0 && next.Len() == 0:
		return nil
	case prev.Len() == 0:
		d.insert(0, 0, 0)
	case next.Len() == 0:
		d.emit(Patch{Op: OpRemove, ID: prev.Node(0).ID})
	default:
		po, no := prev.Node(0), next.Node(0)
		if po.ID != no.ID || po.Kind != no.Kind {
			d.emit(Patch{Op: OpRemove, ID: po.ID})
			d.insert(0, 0, 0)
			break
		}
		d.update(po, no)
		d.children(0, 0)
	}
	return d.out
}

func (d *differ) emit(p Patch) {
	d.out = append(d.out, p)
}

// insert emits node i of next and its subtree in pre-order.
func (d *differ) insert(i int, parent tree.ID, index int) {
	n := d.next.Node(i)
	d.emit(Patch{
		Op:        OpInsert,
		ID:        n.ID,
		Parent:    parent,
		Index:     index,
		Kind:      n.Kind,
		Key:       n.Key,
		Focusable: n.Focusable,
		Style:     n.Style,
		Box:       n.Box,
		Content:   n.Payload,
	})
	for k, c := range n.Children {
		d.insert(c, n.ID, k)
	}
}

// update emits the in-place changes between two matched nodes.
func (d *differ) update(o, n *tree.Node) {
	styleChanged := o.Style != n.Style
	boxChanged := o.Box != n.Box
	geometric := styleChanged && o.Style.GeometryDiffers(n.Style)

	if styleChanged {
		p := Patch{Op: OpUpdateStyle, ID: n.ID, Style: n.Style, Geometric: geometric}
		if geometric {
			p.Box = n.Box
		}
		d.emit(p)
	}
	if boxChanged && !geometric {
		d.emit(Patch{Op: OpUpdateGeometry, ID: n.ID, Box: n.Box})
	}
	if !o.Payload.Equal(n.Payload) || o.Focusable != n.Focusable {
		d.emit(Patch{Op: OpUpdateContent, ID: n.ID, Content: n.Payload, Focusable: n.Focusable})
	}
}

// children reconciles the child lists of the matched nodes pi (in prev)
// and ni (in next), then recurses into matched children.
func (d *differ) children(pi, ni int) {
	parent := d.next.Node(ni).ID
	oldKids := d.prev.Node(pi).Children
	newKids := d.next.Node(ni).Children

	// Old child index by ID, for matching.
	oldByID := make(map[tree.ID]int, len(oldKids))
	for _, c := range oldKids {
		oldByID[d.prev.Node(c).ID] = c
	}

	// match[k] is the prev index matched to new child k, or -1.
	match := make([]int, len(newKids))
	kept := make(map[tree.ID]bool, len(newKids))
	for k, c := range newKids {
		n := d.next.Node(c)
		match[k] = -1
		if oi, ok := oldByID[n.ID]; ok && d.prev.Node(oi).Kind == n.Kind {
			match[k] = oi
			kept[n.ID] = true
		}
	}

	// 1. Removals, in old order.
	current := make([]tree.ID, 0, len(oldKids))
	for _, c := range oldKids {
		id := d.prev.Node(c).ID
		if !kept[id] {
			d.emit(Patch{Op: OpRemove, ID: id})
			continue
		}
		current = append(current, id)
	}

	// 2. Old positions of survivors in new order; the LIS stays put.
	position := make(map[tree.ID]int, len(current))
	for p, id := range current {
		position[id] = p
	}
	var seq []int
	var seqOf []int // new child index for each seq entry
	for k, c := range newKids {
		if match[k] >= 0 {
			seq = append(seq, position[d.next.Node(c).ID])
			seqOf = append(seqOf, k)
		}
	}
	stable := make([]bool, len(newKids))
	for s, in := range lis(seq) {
		if in {
			stable[seqOf[s]] = true
		}
	}

	// 3. Right to left: insert new children and move unstable ones in
	// front of their right neighbour, which is already in its final place.
	var anchor tree.ID
	hasAnchor := false
	for k := len(newKids) - 1; k >= 0; k-- {
		id := d.next.Node(newKids[k]).ID
		switch {
		case match[k] < 0:
			at := insertionPoint(current, anchor, hasAnchor)
			current = slices.Insert(current, at, id)
			d.insert(newKids[k], parent, at)
		case !stable[k]:
			from := slices.Index(current, id)
			current = slices.Delete(current, from, from+1)
			at := insertionPoint(current, anchor, hasAnchor)
			current = slices.Insert(current, at, id)
			d.emit(Patch{Op: OpMove, ID: id, Parent: parent, Index: at})
		}
		anchor, hasAnchor = id, true
	}

	// 4. In-place updates, then recurse.
	for k, c := range newKids {
		if match[k] < 0 {
			continue
		}
		d.update(d.prev.Node(match[k]), d.next.Node(c))
		d.children(match[k], c)
	}
}

func insertionPoint(current []tree.ID, anchor tree.ID, hasAnchor bool) int {
	if !hasAnchor {
		return len(current)
	}
	return slices.Index(current, anchor)
}

// lis marks one longest strictly increasing subsequence of seq.
func lis(seq []int) []bool {
	in := make([]bool, len(seq))
	if len(seq) == 0 {
		return in
	}
	// tails[l] is the index in seq of the smallest tail of an increasing
	// run of length l+1.
	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))
	for i, v := range seq {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if seq[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}
	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		in[i] = true
	}
	return in
}
