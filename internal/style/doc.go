// Package style turns declared style properties into one fully specified
// Resolved record per node.
//
// Resolution is a depth-first cascade: defaults, then inherited properties
// from the parent, then matching style sheet rules by specificity, then the
// node's inline declarations, then normalization. An invalid declaration is
// dropped and reported as an *Error; it never stops the pass.
package style
