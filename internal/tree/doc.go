// Package tree holds the frame's node tree in an arena.
//
// Nodes live in one slice and refer to each other by index: a parent owns
// its children through an ordered index list and each child keeps a
// non-owning parent index for upward walks. Every node carries a stable ID
// derived from its parent's ID and either a caller key or its kind and
// position, so the same logical element keeps its ID across frames.
//
// The kinds form a closed set (container, text, image, custom). Kind
// specific behaviour is limited to measuring, paint bounds and hit shape.
package tree
