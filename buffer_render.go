package blaeck

import "strings"

// Render serializes the grid to a single ANSI string.
//
// Cells are walked row by row; continuation cells are skipped so wide
// glyphs emit exactly one visible codepoint. A style escape is emitted only
// when a cell's style differs from the previous cell's (style-run
// compression: a row of N identically styled cells costs one SGR and one
// reset, never N). Trailing blank cells are trimmed from each row so
// shorter re-renders never leave stale characters on the same row;
// clearing prior rows remains the inline writer's job.
func (b *Buffer) Render(caps Capabilities) string {
	var sb strings.Builder
	esc := newEscBuilder(b.width * 8)

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		end := b.rowEnd(y)
		current := NewStyle()
		for x := 0; x < end; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if !cell.Style.Equal(current) {
				esc.Reset()
				if cell.Style.IsDefault() {
					esc.ResetStyle()
				} else {
					esc.SetStyle(cell.Style, caps)
				}
				sb.WriteString(esc.String())
				current = cell.Style
			}
			if cell.Rune == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}

		if !current.IsDefault() {
			esc.Reset()
			esc.ResetStyle()
			sb.WriteString(esc.String())
		}
	}

	return sb.String()
}

// rowEnd returns the exclusive end column of the last non-blank cell in a
// row. A continuation cell is kept whenever its originating glyph is.
func (b *Buffer) rowEnd(y int) int {
	for x := b.width - 1; x >= 0; x-- {
		cell := b.cells[y*b.width+x]
		if cell.IsContinuation() {
			continue
		}
		if !cell.IsBlank() {
			return x + int(cell.Width)
		}
	}
	return 0
}
