// Package layout computes integer box geometry for a tree of nodes.
//
// The engine runs two passes over a [Layoutable] tree. The first walks
// bottom-up and measures every node's intrinsic border-box size from its own
// content and its children. The second walks top-down, hands the root the
// viewport, and lets every container split its content rect among its
// children, either as a flex line (row or column, with grow, shrink, justify
// and align) or as a vertical block stack.
//
// Geometry is integral and the traversal order is fixed, so identical input
// always produces identical output. Invalid style amounts are clamped and
// reported as [*Error] values; a pass never aborts.
//
// Types are re-exported through the root gui package for public consumption.
package layout
