package layout

// layoutAbsoluteChildren places children that escape the flow entirely.
// The containing block is the parent's content rect; inset offsets resolve
// against it. Opposing insets with an auto size stretch the child between
// them; otherwise the child takes its styled or intrinsic size.
func layoutAbsoluteChildren(node *Node, contentRect Rect) {
	for _, child := range node.Children {
		if child.Style.Position != PositionAbsolute {
			continue
		}
		calculateNode(child, absoluteBox(child, contentRect))
	}
}

func absoluteBox(child *Node, cb Rect) Rect {
	style := child.Style
	intrinsic := child.IntrinsicSize()
	inset := style.Inset

	width := style.Width.Resolve(cb.Width, intrinsic.Width)
	if style.Width.IsAuto() && !inset.Left.IsAuto() && !inset.Right.IsAuto() {
		width = cb.Width - inset.Left.Resolve(cb.Width, 0) - inset.Right.Resolve(cb.Width, 0)
	}
	height := style.Height.Resolve(cb.Height, intrinsic.Height)
	if style.Height.IsAuto() && !inset.Top.IsAuto() && !inset.Bottom.IsAuto() {
		height = cb.Height - inset.Top.Resolve(cb.Height, 0) - inset.Bottom.Resolve(cb.Height, 0)
	}
	width = max(0, width)
	height = max(0, height)

	x := cb.X
	switch {
	case !inset.Left.IsAuto():
		x = cb.X + inset.Left.Resolve(cb.Width, 0)
	case !inset.Right.IsAuto():
		x = cb.Right() - inset.Right.Resolve(cb.Width, 0) - width
	}

	y := cb.Y
	switch {
	case !inset.Top.IsAuto():
		y = cb.Y + inset.Top.Resolve(cb.Height, 0)
	case !inset.Bottom.IsAuto():
		y = cb.Bottom() - inset.Bottom.Resolve(cb.Height, 0) - height
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}
