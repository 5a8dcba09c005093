package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are placed.
	ContentRect Rect
}

// Node represents an element in the layout tree. Trees are built fresh for
// every layout pass and discarded afterwards; Layout is valid only for the
// pass that produced it.
type Node struct {
	Style    Style
	Children []*Node

	// ContentSize is the intrinsic size of leaf content (e.g. text).
	// Containers leave it zero and derive their intrinsic size from children.
	ContentSize Size

	// Computed by the layout engine.
	Layout Layout
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{Style: style}
}

// AddChild appends children to this node.
func (n *Node) AddChild(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// IntrinsicSize returns the natural content-based dimensions of the node:
// the leaf content size for leaves, or the children-derived size for
// containers, both including padding. Margin is the parent's concern.
func (n *Node) IntrinsicSize() Size {
	inner := n.intrinsicInner()
	return Size{
		Width:  inner.Width + n.Style.Padding.Horizontal(),
		Height: inner.Height + n.Style.Padding.Vertical(),
	}
}

// intrinsicInner returns the intrinsic size of the node's content area,
// excluding padding.
func (n *Node) intrinsicInner() Size {
	if len(n.Children) == 0 {
		return n.ContentSize
	}
	if n.Style.Display == DisplayGrid {
		return n.gridIntrinsicInner()
	}

	isRow := n.Style.Direction == Row
	var w, h int
	flowCount := 0
	for _, child := range n.Children {
		if child.Style.Position == PositionAbsolute {
			continue
		}
		outer := child.intrinsicOuter()
		if isRow {
			w += outer.Width
			h = max(h, outer.Height)
		} else {
			w = max(w, outer.Width)
			h += outer.Height
		}
		flowCount++
	}
	if flowCount > 1 {
		gap := n.Style.Gap * (flowCount - 1)
		if isRow {
			w += gap
		} else {
			h += gap
		}
	}
	return Size{Width: w, Height: h}
}

// intrinsicOuter returns the node's intrinsic size plus margin, with fixed
// style dimensions taking precedence over content. Percent dimensions cannot
// be resolved without a parent size and fall back to content.
func (n *Node) intrinsicOuter() Size {
	s := n.IntrinsicSize()
	if n.Style.Width.Unit == UnitFixed {
		s.Width = int(n.Style.Width.Amount)
	}
	if n.Style.Height.Unit == UnitFixed {
		s.Height = int(n.Style.Height.Amount)
	}
	return Size{
		Width:  s.Width + n.Style.Margin.Horizontal(),
		Height: s.Height + n.Style.Margin.Vertical(),
	}
}
