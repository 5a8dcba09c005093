// Package blaeck renders declarative element trees into a live inline
// terminal region that updates in place, preserving everything printed
// above it.
//
// The pipeline is a pure transformation from (tree, terminal width) to
// terminal bytes: a flexbox/grid layout pass assigns character-cell
// rectangles, the tree is painted into a styled cell grid, and an inline
// diffing writer emits the minimal ANSI sequence that replaces the previous
// frame. It is driven entirely by a caller-owned loop; the package spawns
// no goroutines and never queries the terminal.
package blaeck
