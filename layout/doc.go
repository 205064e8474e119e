// Package layout recovers flex-like layout structure from a normalized
// design tree. For every node it resolves a layout type (row, column, stack,
// or absolute), gap and padding, main- and cross-axis alignment, per-axis
// sizing, and positioning constraints for absolutely placed children.
//
// Explicit auto-layout metadata always wins; when a container carries none,
// positional heuristics over the children's bounding boxes decide. The walk
// is strictly top-down because a child's sizing depends on its parent's
// resolved axis.
package layout
