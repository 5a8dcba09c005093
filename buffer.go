package blaeck

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Buffer is a fixed-size 2D grid of styled cells. Text is painted into it
// at column/row positions and the whole grid serializes to a single ANSI
// string with style-run compression.
//
// Dimensions never change after construction; a resize always means
// destroy-and-recreate. Out-of-range writes are silently clipped, never an
// error and never a wrap.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// CellChange represents a single cell position that differs between two buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a new grid of the specified dimensions, initialized
// with spaces and default styling.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	defaultCell := NewCell(' ', NewStyle())
	for i := range cells {
		cells[i] = defaultCell
	}

	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.cells[idx]
}

// SetCell sets the cell at position (x, y).
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.cells[idx] = c
}

// SetRune sets a rune at position (x, y) with the given style.
// Wide glyphs get a continuation marker in the following cell; overwriting
// half of an existing wide glyph clears the other half so the grid never
// holds a dangling continuation.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}

	width := RuneWidth(r)
	currentCell := b.Cell(x, y)

	// Overwriting a continuation cell orphans the wide glyph before it.
	if currentCell.IsContinuation() {
		b.clearWideGlyphAt(x, y)
	}

	// Overwriting the start of a wide glyph orphans its continuation.
	if currentCell.Width == 2 && x+1 < b.width {
		b.SetCell(x+1, y, NewCell(' ', NewStyle()))
	}

	// Placing a wide glyph over a neighbor that is itself wide (or a
	// continuation) clears that glyph entirely.
	if width == 2 && x+1 < b.width {
		next := b.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			b.clearWideGlyphAt(x+1, y)
		}
	}

	// A wide glyph at the last column can't fit; pad with a space instead.
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', style))
		return
	}

	b.SetCell(x, y, NewCellWithWidth(r, style, uint8(width)))
	if width == 2 {
		b.SetCell(x+1, y, NewCellWithWidth(0, style, 0))
	}
}

// clearWideGlyphAt clears the wide glyph covering position (x, y),
// whether (x, y) is its start or its continuation cell.
func (b *Buffer) clearWideGlyphAt(x, y int) {
	cell := b.Cell(x, y)
	defaultCell := NewCell(' ', NewStyle())

	if cell.IsContinuation() {
		if x > 0 {
			b.SetCell(x-1, y, defaultCell)
		}
		b.SetCell(x, y, defaultCell)
	} else if cell.Width == 2 {
		b.SetCell(x, y, defaultCell)
		if x+1 < b.width {
			b.SetCell(x+1, y, defaultCell)
		}
	}
}

// WriteString paints text starting at position (x, y) with the given style.
// The text is split on line breaks, each line starting again at column x on
// the next row. Embedded terminal escape sequences are stripped defensively
// first: styling comes exclusively from the style parameter, never from
// pass-through control codes. Writing past the right edge clips silently;
// lines never wrap. Returns the display width of the widest rendered line.
func (b *Buffer) WriteString(x, y int, text string, style Style) int {
	widest := 0
	for i, line := range strings.Split(sanitizeText(text), "\n") {
		widest = max(widest, b.writeLine(x, y+i, line, style))
	}
	return widest
}

// writeLine paints a single line of sanitized text, advancing by display
// width and stopping at the right edge.
func (b *Buffer) writeLine(x, y int, line string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}

	total := 0
	curX := x
	for _, r := range line {
		if curX >= b.width {
			break
		}
		width := RuneWidth(r)
		if curX < 0 {
			// Skip glyphs before the visible area.
			curX += width
			continue
		}
		if width == 2 && curX+1 >= b.width {
			// Wide glyph doesn't fit in the remaining columns.
			break
		}
		b.SetRune(curX, y, r, style)
		curX += width
		total += width
	}
	return total
}

// sanitizeText strips ANSI escape sequences and remaining control bytes
// from text before it reaches the grid. Tab becomes a space; unterminated
// OSC sequences are consumed leniently to end of input.
func sanitizeText(text string) string {
	if !strings.ContainsAny(text, "\x1b\t\x7f") && !hasC0(text) {
		return text
	}

	text = ansi.Strip(text)

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteRune('\n')
		case r == '\t':
			sb.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// Drop remaining C0/DEL control bytes.
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func hasC0(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 && s[i] != '\n' {
			return true
		}
	}
	return false
}

// Fill fills a rectangle with the given rune and style, clipped to the
// buffer bounds.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				x++
			} else {
				b.SetRune(x, y, r, style)
				x += width
			}
		}
	}
}

// Diff returns all cell positions where other differs from this buffer, in
// row-major order. Diffing buffers of different dimensions is a logic bug
// and panics.
func (b *Buffer) Diff(other *Buffer) []CellChange {
	if b.width != other.width || b.height != other.height {
		panic(fmt.Sprintf("blaeck: cannot diff buffers of different dimensions (%dx%d vs %dx%d)",
			b.width, b.height, other.width, other.height))
	}

	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			if !b.cells[idx].Equal(other.cells[idx]) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: other.cells[idx]})
			}
		}
	}
	return changes
}

// Apply writes the given cell changes into the buffer. Applying the result
// of a.Diff(b) to a reproduces b exactly. Out-of-range changes are clipped.
func (b *Buffer) Apply(changes []CellChange) {
	for _, ch := range changes {
		b.SetCell(ch.X, ch.Y, ch.Cell)
	}
}

// String renders the grid to a plain string for debugging.
// Continuation cells are skipped; rows are separated by newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
