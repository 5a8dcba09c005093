package layout

// layoutGridChildren arranges children of a grid container into column and
// row tracks. Columns come from Style.TemplateColumns (one auto column if
// empty); rows come from Style.TemplateRows, with implicit rows sized to
// their tallest item. Children with explicit GridColumn/GridRow claim their
// cell; the rest auto-flow row-major into the next free cell.
func layoutGridChildren(node *Node, contentRect Rect) {
	children := flowChildren(node)
	if len(children) == 0 {
		return
	}

	style := node.Style
	templates := style.TemplateColumns
	if len(templates) == 0 {
		templates = []Value{Auto()}
	}
	cols := len(templates)

	placements := placeGridItems(children, cols)
	rows := 0
	for _, p := range placements {
		rows = max(rows, p.row+1)
	}

	colWidths := resolveColumnTracks(templates, contentRect.Width, style.Gap, placements, children)
	rowHeights := resolveRowTracks(style.TemplateRows, contentRect.Height, rows, placements, children)

	// Track origins, gap between consecutive tracks.
	colX := trackOffsets(colWidths, style.Gap)
	rowY := trackOffsets(rowHeights, style.Gap)

	// AlignContent/JustifyContent place the whole track block when the
	// container is larger than its tracks.
	usedW := colX[len(colX)-1]
	usedH := rowY[len(rowY)-1]
	dx := justifyOffset(style.JustifyContent, contentRect.Width-usedW, 1)
	dy := alignOffset(alignFromContent(style.AlignContent), contentRect.Height, usedH)

	for i, child := range children {
		p := placements[i]
		cell := Rect{
			X:      contentRect.X + dx + colX[p.col],
			Y:      contentRect.Y + dy + rowY[p.row],
			Width:  colWidths[p.col],
			Height: rowHeights[p.row],
		}
		calculateNode(child, cell.Inset(child.Style.Margin))
	}
}

type gridPlacement struct {
	col, row int
}

// placeGridItems assigns a cell to each child. Explicitly placed items are
// pinned first; auto-flow items fill remaining cells row-major.
func placeGridItems(children []*Node, cols int) []gridPlacement {
	placements := make([]gridPlacement, len(children))
	occupied := map[gridPlacement]bool{}

	for i, child := range children {
		c, r := child.Style.GridColumn, child.Style.GridRow
		if c > 0 && r > 0 {
			p := gridPlacement{col: min(c-1, cols-1), row: r - 1}
			placements[i] = p
			occupied[p] = true
		} else {
			placements[i] = gridPlacement{col: -1, row: -1}
		}
	}

	cursor := gridPlacement{}
	advance := func() {
		cursor.col++
		if cursor.col >= cols {
			cursor.col = 0
			cursor.row++
		}
	}
	for i := range children {
		if placements[i].col >= 0 {
			continue
		}
		for occupied[cursor] {
			advance()
		}
		placements[i] = cursor
		occupied[cursor] = true
		advance()
	}
	return placements
}

// resolveColumnTracks computes column widths: fixed and percent tracks
// resolve against the content width; auto tracks split the leftover space
// evenly, but never below the widest intrinsic item in the track.
func resolveColumnTracks(templates []Value, width, gap int, placements []gridPlacement, children []*Node) []int {
	widths := make([]int, len(templates))
	autoWeights := make([]float64, len(templates))
	fixedTotal := 0
	autos := 0

	for i, tmpl := range templates {
		if tmpl.IsAuto() {
			autoWeights[i] = 1
			autos++
			continue
		}
		widths[i] = max(0, tmpl.Resolve(width, 0))
		fixedTotal += widths[i]
	}

	if autos > 0 {
		leftover := width - fixedTotal - gap*max(0, len(templates)-1)
		shares := distribute(max(0, leftover), autoWeights)
		for i := range templates {
			if !templates[i].IsAuto() {
				continue
			}
			widest := 0
			for j, p := range placements {
				if p.col == i {
					widest = max(widest, children[j].intrinsicOuter().Width)
				}
			}
			widths[i] = max(shares[i], widest)
		}
	}
	return widths
}

// resolveRowTracks computes row heights. Rows covered by TemplateRows use
// the template value; implicit rows size to their tallest item.
func resolveRowTracks(templates []Value, height, rows int, placements []gridPlacement, children []*Node) []int {
	heights := make([]int, rows)
	for r := 0; r < rows; r++ {
		tallest := 0
		for j, p := range placements {
			if p.row == r {
				tallest = max(tallest, children[j].intrinsicOuter().Height)
			}
		}
		if r < len(templates) && !templates[r].IsAuto() {
			heights[r] = max(0, templates[r].Resolve(height, tallest))
		} else {
			heights[r] = tallest
		}
	}
	return heights
}

// trackOffsets returns len(sizes)+1 origins, where the last entry is the
// total extent including gaps.
func trackOffsets(sizes []int, gap int) []int {
	offsets := make([]int, len(sizes)+1)
	pos := 0
	for i, size := range sizes {
		offsets[i] = pos
		pos += size
		if i < len(sizes)-1 {
			pos += gap
		}
	}
	offsets[len(sizes)] = pos
	return offsets
}

// gridIntrinsicInner derives a grid container's intrinsic content size from
// its tracks: fixed columns at their size, auto columns at their widest
// item, rows at their template size or tallest item.
func (n *Node) gridIntrinsicInner() Size {
	children := flowChildren(n)
	if len(children) == 0 {
		return n.ContentSize
	}

	templates := n.Style.TemplateColumns
	if len(templates) == 0 {
		templates = []Value{Auto()}
	}
	cols := len(templates)

	placements := placeGridItems(children, cols)
	rows := 0
	for _, p := range placements {
		rows = max(rows, p.row+1)
	}

	w := 0
	for i, tmpl := range templates {
		if tmpl.Unit == UnitFixed {
			w += int(tmpl.Amount)
			continue
		}
		widest := 0
		for j, p := range placements {
			if p.col == i {
				widest = max(widest, children[j].intrinsicOuter().Width)
			}
		}
		w += widest
	}

	h := 0
	heights := resolveRowTracks(n.Style.TemplateRows, 0, rows, placements, children)
	for _, rh := range heights {
		h += rh
	}

	w += n.Style.Gap * max(0, cols-1)
	h += n.Style.Gap * max(0, rows-1)
	return Size{Width: w, Height: h}
}

// alignFromContent maps AlignContent onto the shared align offset helper.
func alignFromContent(a Align) Align {
	if a == AlignStretch {
		return AlignStart
	}
	return a
}
