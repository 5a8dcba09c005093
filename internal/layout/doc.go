// Package layout implements a flexbox-style layout engine for inline
// terminal UIs, operating in discrete character cells.
//
// It supports row/column directions, justify and align modes, padding,
// margin, gap, min/max constraints, percentage and fixed dimensions,
// intrinsic (content-driven) sizing, an orthogonal grid mode with explicit
// track sizes and auto-flow placement, and absolute positioning via inset
// offsets. Types are re-exported through the root blaeck package.
//
// The main entry point is [Calculate], which takes a [Node] tree and
// computes an absolute [Rect] for each node. Trees are built fresh per
// pass; computed layouts are never cached across frames.
package layout
