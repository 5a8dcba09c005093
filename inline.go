package blaeck

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// InlineWriter updates a region of the terminal in place. It tracks how
// many lines the previous frame occupied and, on each new frame, emits the
// cursor-movement and line-erase sequences that remove exactly that
// footprint before writing the new content. Everything printed above the
// region (scrollback) is untouched.
//
// Every operation builds one buffer and flushes it in a single write.
// The writer assumes exclusive ownership of the lines it wrote; anything
// else printing to the same stream must be followed by Done or Clear to
// resynchronize.
type InlineWriter struct {
	out           io.Writer
	prevText      string
	prevLines     int
	cursorVisible bool
	esc           *escBuilder
}

// NewInlineWriter creates an inline writer targeting the given stream.
// The cursor is hidden during updates and left hidden between frames by
// default; see SetCursorVisible.
func NewInlineWriter(out io.Writer) *InlineWriter {
	return &InlineWriter{
		out: out,
		esc: newEscBuilder(4096),
	}
}

// SetCursorVisible configures whether the cursor is shown after each
// frame is written. The cursor is always hidden during the brief
// write-and-erase window itself, to avoid a visible flash.
func (w *InlineWriter) SetCursorVisible(visible bool) {
	w.cursorVisible = visible
}

// LineCount returns the number of lines the previous frame occupies on
// screen (zero after Clear or Done).
func (w *InlineWriter) LineCount() int {
	return w.prevLines
}

// Render replaces the previous frame with content.
//
// If content is byte-identical to the previous frame, nothing is emitted
// at all, so idle UIs stay flicker-free. Otherwise one buffered sequence is
// flushed: synchronized-update begin, hide cursor, erase the previous
// footprint, the new content, cursor visibility restore, synchronized-
// update end.
//
// Write errors are returned to the caller and never retried; internal
// state tracks the attempted frame, since a partial write leaves the
// terminal unknown either way and callers should treat the error as fatal
// to the session.
func (w *InlineWriter) Render(content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if content == w.prevText {
		return nil
	}

	esc := w.esc
	esc.Reset()
	esc.BeginSyncUpdate()
	esc.HideCursor()
	w.appendErase(esc)
	esc.WriteString(content)
	if w.cursorVisible {
		esc.ShowCursor()
	}
	esc.EndSyncUpdate()

	w.prevText = content
	w.prevLines = max(1, strings.Count(content, "\n"))

	if _, err := w.out.Write(esc.Bytes()); err != nil {
		return errors.Wrap(err, "blaeck: write frame")
	}
	return nil
}

// appendErase removes the previous frame's footprint: up prevLines, then a
// clear for each line with a step down between clears, then back up to
// where the first erased line began, at column 0.
func (w *InlineWriter) appendErase(esc *escBuilder) {
	n := w.prevLines
	if n <= 0 {
		return
	}

	esc.CursorUp(n)
	for i := 0; i < n; i++ {
		esc.ClearLine()
		if i < n-1 {
			esc.CursorDown(1)
		}
	}
	esc.CursorUp(n - 1)
	esc.CursorToColumn(0)
}

// Clear erases the previous frame and resets state: the next Render call
// behaves as if nothing was ever drawn, emitting no erase sequence.
func (w *InlineWriter) Clear() error {
	if w.prevLines == 0 {
		w.prevText = ""
		return nil
	}

	esc := w.esc
	esc.Reset()
	esc.HideCursor()
	w.appendErase(esc)
	if w.cursorVisible {
		esc.ShowCursor()
	}

	w.prevText = ""
	w.prevLines = 0

	if _, err := w.out.Write(esc.Bytes()); err != nil {
		return errors.Wrap(err, "blaeck: clear frame")
	}
	return nil
}

// Done detaches from the current frame without emitting any bytes: the
// visible content is left on screen permanently, and the next Render call
// prints below it instead of replacing it. This is how "finalize a block
// and keep going underneath" output is produced.
func (w *InlineWriter) Done() {
	w.prevText = ""
	w.prevLines = 0
}

// HandleResize recovers from a terminal resize. A resize can reflow how
// many screen rows the previous content actually occupies, so the
// per-line erase is unsafe; instead the cursor moves to where the frame
// began and a single erase-to-end-of-screen removes the whole footprint
// regardless of wrap width, preserving all scrollback above it. State is
// reset as in Clear.
func (w *InlineWriter) HandleResize() error {
	if w.prevLines == 0 {
		w.prevText = ""
		return nil
	}

	esc := w.esc
	esc.Reset()
	esc.CursorUp(w.prevLines)
	esc.CursorToColumn(0)
	esc.ClearToEndOfScreen()

	w.prevText = ""
	w.prevLines = 0

	if _, err := w.out.Write(esc.Bytes()); err != nil {
		return errors.Wrap(err, "blaeck: clear after resize")
	}
	return nil
}
