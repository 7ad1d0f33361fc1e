// Package diff compares two frame trees and produces the ordered patches
// that turn the first into the second.
//
// Children are matched by stable ID. Within one sibling list the differ
// keeps the longest increasing subsequence of surviving children in place
// and moves only the rest, which is the fewest moves any alignment on
// identity can achieve. Replaying the patches in order on the retained
// form of the previous tree yields the next tree.
package diff
