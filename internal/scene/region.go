package scene

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/layout"
)

// DefaultMaxDirtyRects is the rect count past which a region gives up and
// repaints the whole frame.
const DefaultMaxDirtyRects = 32

// Region is a set of rectangles needing repaint, or the full frame.
// Overlapping rects and rects whose union wastes no area are merged.
type Region struct {
	rects  []layout.Rect
	full   bool
	bounds layout.Rect
	max    int
}

// NewRegion returns an empty region clipped to bounds. max <= 0 uses
// DefaultMaxDirtyRects.
func NewRegion(bounds layout.Rect, max int) *Region {
	r := &Region{}
	r.reset(bounds, max)
	return r
}

func (r *Region) reset(bounds layout.Rect, max int) {
	if max <= 0 {
		max = DefaultMaxDirtyRects
	}
	r.bounds = bounds
	r.max = max
	r.Clear()
}

// Add marks rect dirty.
func (r *Region) Add(rect layout.Rect) {
	if r.full || rect.IsEmpty() {
		return
	}
	if !r.bounds.IsEmpty() {
		rect = rect.Intersect(r.bounds)
		if rect.IsEmpty() {
			return
		}
		if rect.ContainsRect(r.bounds) {
			r.SetFull()
			return
		}
	}

	for merged := true; merged; {
		merged = false
		for i, other := range r.rects {
			if shouldMerge(rect, other) {
				rect = rect.Union(other)
				r.rects = slices.Delete(r.rects, i, i+1)
				merged = true
				break
			}
		}
	}
	r.rects = append(r.rects, rect)

	if len(r.rects) > r.max || (!r.bounds.IsEmpty() && rect.ContainsRect(r.bounds)) {
		r.SetFull()
	}
}

func shouldMerge(a, b layout.Rect) bool {
	if a.Intersects(b) || a.ContainsRect(b) || b.ContainsRect(a) {
		return true
	}
	u := a.Union(b)
	return u.Area() == a.Area()+b.Area()
}

// SetFull marks the whole frame dirty.
func (r *Region) SetFull() {
	r.full = true
	r.rects = nil
}

// Full reports whether the whole frame is dirty.
func (r *Region) Full() bool {
	return r.full
}

// IsEmpty reports whether nothing needs repainting.
func (r *Region) IsEmpty() bool {
	return !r.full && len(r.rects) == 0
}

// Rects returns the dirty rectangles. For a full region it returns the
// bounds.
func (r *Region) Rects() []layout.Rect {
	if r.full {
		if r.bounds.IsEmpty() {
			return nil
		}
		return []layout.Rect{r.bounds}
	}
	return slices.Clone(r.rects)
}

// Bounds returns the union of all dirty rectangles.
func (r *Region) Bounds() layout.Rect {
	if r.full {
		return r.bounds
	}
	var u layout.Rect
	for _, rect := range r.rects {
		u = u.Union(rect)
	}
	return u
}

// Intersects reports whether rect overlaps the dirty area.
func (r *Region) Intersects(rect layout.Rect) bool {
	if r.full {
		return r.bounds.IsEmpty() || rect.Intersects(r.bounds)
	}
	for _, d := range r.rects {
		if d.Intersects(rect) {
			return true
		}
	}
	return false
}

// Clear empties the region.
func (r *Region) Clear() {
	r.full = false
	r.rects = nil
}

// Clone returns an independent copy.
func (r *Region) Clone() *Region {
	c := *r
	c.rects = slices.Clone(r.rects)
	return &c
}
