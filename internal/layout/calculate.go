package layout

import "math"

// Calculate performs layout calculation on the tree rooted at root.
// Every node's Layout field is populated with an absolute rectangle.
//
// availableWidth is the hard horizontal bound (typically the terminal
// column count). Height is content-driven: unless the root style sets an
// explicit height, the root takes its intrinsic height, unbounded by the
// terminal. The root's computed border box is returned.
func Calculate(root *Node, availableWidth int) Rect {
	if root == nil {
		return Rect{}
	}
	if availableWidth < 0 {
		availableWidth = 0
	}

	style := root.Style
	intrinsic := root.IntrinsicSize()

	// An auto-width root fills the terminal width so that justify/center
	// layouts have space to distribute; an auto-height root hugs content.
	width := style.Width.Resolve(availableWidth, availableWidth)
	height := style.Height.Resolve(intrinsic.Height, intrinsic.Height)
	if width > availableWidth {
		width = availableWidth
	}

	calculateNode(root, NewRect(0, 0, width, height))
	return root.Layout.Rect
}

// calculateNode computes the layout for a single node within the available
// space. The available rect is the border box allocated by the parent (the
// parent has already applied this node's margin).
func calculateNode(node *Node, available Rect) {
	style := node.Style

	borderBox := computeBorderBox(style, available)
	contentRect := borderBox.Inset(style.Padding)

	if len(node.Children) > 0 {
		if style.Display == DisplayGrid {
			layoutGridChildren(node, contentRect)
		} else {
			layoutChildren(node, contentRect)
		}
		layoutAbsoluteChildren(node, contentRect)
	}

	node.Layout = Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	}
}

// computeBorderBox applies min/max constraints to the parent-allocated
// space. Width/Height were already consumed by the parent's flex or grid
// pass to size the slot, so only clamping happens here. Over-constrained
// results clamp to zero; negative dimensions never escape.
func computeBorderBox(style Style, available Rect) Rect {
	width := available.Width
	height := available.Height

	minWidth := style.MinWidth.Resolve(available.Width, 0)
	maxWidth := style.MaxWidth.Resolve(available.Width, available.Width)
	width = clamp(width, minWidth, maxWidth)

	minHeight := style.MinHeight.Resolve(available.Height, 0)
	maxHeight := style.MaxHeight.Resolve(available.Height, available.Height)
	height = clamp(height, minHeight, maxHeight)

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(0, width),
		Height: max(0, height),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// roundHalfUp is the engine-wide rounding policy for fractional cell
// results: round half away from negative infinity. Applied uniformly so
// sibling rectangles derived from cumulative positions neither overlap nor
// leave gaps.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// distribute splits amount across weights proportionally, in whole cells.
// It rounds cumulative boundaries rather than individual shares, so the
// returned parts always sum exactly to amount.
func distribute(amount int, weights []float64) []int {
	parts := make([]int, len(weights))
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 || amount == 0 {
		return parts
	}

	cum := 0.0
	prev := 0
	for i, w := range weights {
		cum += float64(amount) * w / total
		boundary := roundHalfUp(cum)
		parts[i] = boundary - prev
		prev = boundary
	}
	return parts
}
