package gui

import "slices"

// hoverChanges compares the hovered chains before and after a pointer
// move. Chains run innermost first. Nodes left are returned innermost
// first; nodes entered outermost first.
func hoverChanges(prev, next []ID) (left, entered []ID) {
	for _, id := range prev {
		if !slices.Contains(next, id) {
			left = append(left, id)
		}
	}
	for i := len(next) - 1; i >= 0; i-- {
		if !slices.Contains(prev, next[i]) {
			entered = append(entered, next[i])
		}
	}
	return left, entered
}
