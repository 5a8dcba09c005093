package blaeck

import (
	"os"

	"golang.org/x/term"
)

// TerminalSize reports the dimensions of the terminal attached to the
// given file, in character cells. When the file is not a terminal (piped
// output, tests), it falls back to 80x24 so callers always get a usable
// layout width.
func TerminalSize(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
