package blaeck

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell represents a single character cell in the output grid.
// Wide glyphs (CJK, emoji) occupy two terminal columns: the first cell
// holds the rune, the following cell is a continuation marker that is
// skipped at serialization time, keeping grid indices aligned with real
// terminal columns.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Visual styling
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// NewCellWithWidth creates a new Cell with an explicit width.
// Use this for continuation cells (width 0) or when width is already known.
func NewCellWithWidth(r rune, style Style, width uint8) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: width,
	}
}

// IsContinuation returns true if this cell is a continuation of a wide glyph.
// Continuation cells have Width == 0 and are placed after the primary cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// IsBlank returns true if the cell contributes nothing visible: a space or
// zero rune with default styling.
func (c Cell) IsBlank() bool {
	if c.Rune != 0 && c.Rune != ' ' {
		return false
	}
	return c.Style.IsDefault()
}

// RuneWidth returns the display width of a rune in terminal cells:
// 1 for most characters, 2 for wide characters (CJK, most emoji).
// Control characters are given width 1 since they still occupy a cell
// when they reach the grid.
func RuneWidth(r rune) int {
	if r < 32 {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// stringWidth returns the display width of a string in terminal cells,
// accounting for grapheme clusters and wide glyphs.
func stringWidth(s string) int {
	return uniseg.StringWidth(s)
}
