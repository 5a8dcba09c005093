package layout

// flexItem holds intermediate calculation state for a child.
// Stack-allocated per layout call, never stored on nodes.
type flexItem struct {
	node      *Node
	baseSize  int
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
	grow      float64
	shrink    float64
}

// layoutChildren arranges the in-flow children of a flex container within
// the given content rect, implementing the classic single-pass flexbox
// resolution: base sizes first, then grow if extra space remains, then
// shrink if over-constrained.
func layoutChildren(node *Node, contentRect Rect) {
	children := flowChildren(node)
	if len(children) == 0 {
		return
	}

	style := node.Style
	isRow := style.Direction == Row

	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes and flex factors. The base size is the resolved
	// main-axis style dimension (falling back to intrinsic content size)
	// plus margin: margin is part of the child's outer size.
	items := make([]flexItem, len(children))
	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0

	for i, child := range children {
		item := &items[i]
		item.node = child

		intrinsic := child.IntrinsicSize()
		var mainMargin, intrinsicMain int
		if isRow {
			mainMargin = child.Style.Margin.Horizontal()
			intrinsicMain = intrinsic.Width
		} else {
			mainMargin = child.Style.Margin.Vertical()
			intrinsicMain = intrinsic.Height
		}

		if isRow {
			item.baseSize = child.Style.Width.Resolve(mainSize, intrinsicMain) + mainMargin
		} else {
			item.baseSize = child.Style.Height.Resolve(mainSize, intrinsicMain) + mainMargin
		}

		item.grow = child.Style.FlexGrow
		item.shrink = child.Style.FlexShrink

		totalBase += item.baseSize
		totalGrow += item.grow
		totalShrink += item.shrink
	}

	// Phase 2: distribute free space (or deficit) in whole cells.
	totalGap := style.Gap * max(0, len(children)-1)
	freeSpace := mainSize - totalBase - totalGap

	switch {
	case freeSpace > 0 && totalGrow > 0:
		weights := make([]float64, len(items))
		for i := range items {
			weights[i] = items[i].grow
		}
		extras := distribute(freeSpace, weights)
		for i := range items {
			items[i].mainSize = items[i].baseSize + extras[i]
		}
	case freeSpace < 0 && totalShrink > 0:
		weights := make([]float64, len(items))
		for i := range items {
			weights[i] = items[i].shrink
		}
		reductions := distribute(-freeSpace, weights)
		for i := range items {
			items[i].mainSize = max(0, items[i].baseSize-reductions[i])
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Phase 3: min/max constraints on the main axis.
	for i, child := range children {
		minMain := resolveMinMain(child.Style, isRow, mainSize)
		maxMain := resolveMaxMain(child.Style, isRow, mainSize)
		items[i].mainSize = clamp(items[i].mainSize, minMain, maxMain)
	}

	// Recalculate free space after clamping, for justify placement.
	totalUsed := 0
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: main-axis positions (justify).
	offset := justifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := justifySpacing(style.JustifyContent, freeSpace, len(items))

	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}

	// Phase 5: cross-axis sizing and alignment.
	for i, child := range children {
		align := style.AlignItems
		if child.Style.AlignSelf != nil {
			align = *child.Style.AlignSelf
		}

		intrinsic := child.IntrinsicSize()
		var crossStyleValue Value
		var crossMargin, intrinsicCross int
		if isRow {
			crossStyleValue = child.Style.Height
			crossMargin = child.Style.Margin.Vertical()
			intrinsicCross = intrinsic.Height
		} else {
			crossStyleValue = child.Style.Width
			crossMargin = child.Style.Margin.Horizontal()
			intrinsicCross = intrinsic.Width
		}

		availableCross := crossSize - crossMargin

		if align == AlignStretch && crossStyleValue.IsAuto() {
			// Stretch fills the whole cross axis; margin is inside the slot.
			items[i].crossSize = crossSize
			items[i].crossPos = 0
		} else {
			contentCross := crossStyleValue.Resolve(availableCross, intrinsicCross)
			items[i].crossSize = contentCross + crossMargin
			items[i].crossPos = alignOffset(align, crossSize, items[i].crossSize)
		}
	}

	// Phase 6: convert to slots and recurse.
	for i, child := range children {
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + items[i].mainPos,
				Y:      contentRect.Y + items[i].crossPos,
				Width:  items[i].mainSize,
				Height: items[i].crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + items[i].crossPos,
				Y:      contentRect.Y + items[i].mainPos,
				Width:  items[i].crossSize,
				Height: items[i].mainSize,
			}
		}

		// The child's margin shrinks the slot to its border box; the child
		// does not re-apply margin.
		calculateNode(child, slot.Inset(child.Style.Margin))
	}
}

// flowChildren returns the children that participate in flow layout.
// Absolutely positioned children are placed separately.
func flowChildren(node *Node) []*Node {
	flow := make([]*Node, 0, len(node.Children))
	for _, child := range node.Children {
		if child.Style.Position != PositionAbsolute {
			flow = append(flow, child)
		}
	}
	return flow
}

// justifyOffset returns the initial main-axis offset for the justify mode.
func justifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between children for the justify mode.
func justifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default:
		return 0
	}
}

// alignOffset returns the cross-axis offset for an item under the align mode.
func alignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// resolveMinMain resolves the minimum main-axis constraint.
func resolveMinMain(style Style, isRow bool, available int) int {
	if isRow {
		return style.MinWidth.Resolve(available, 0)
	}
	return style.MinHeight.Resolve(available, 0)
}

// resolveMaxMain resolves the maximum main-axis constraint.
// An auto max means unconstrained; the available space is the upper bound.
func resolveMaxMain(style Style, isRow bool, available int) int {
	v := style.MaxWidth
	if !isRow {
		v = style.MaxHeight
	}
	if v.IsAuto() {
		return available
	}
	return v.Resolve(available, available)
}
