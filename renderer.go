package blaeck

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gustafeden/blaeck-sub001/internal/layout"
)

// Renderer drives the full pipeline for one inline region: expand the
// element tree, compute layout, paint a fresh buffer, serialize it, and
// hand the frame string to an InlineWriter. Each frame is a complete
// relayout and repaint from scratch; nothing is retained between frames
// except the previous frame's serialized text, which the inline writer
// uses to skip identical frames.
//
// A Renderer is single-threaded by contract: callers serialize Render,
// Flush, HandleResize, Clear, and Unmount themselves.
type Renderer struct {
	out           io.Writer
	inline        *InlineWriter
	width         int
	height        int
	caps          Capabilities
	cursorVisible bool

	frameDuration time.Duration
	now           func() time.Time
	lastFrameAt   time.Time
	pending       string
	hasPending    bool
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer) error

// WithOutput sets the stream frames are written to. Default is stdout.
func WithOutput(out io.Writer) RendererOption {
	return func(r *Renderer) error {
		if out == nil {
			return fmt.Errorf("output writer cannot be nil")
		}
		r.out = out
		return nil
	}
}

// WithSize sets the region dimensions in character cells. Width bounds
// layout and clips painting; height fixes the buffer's row count. A height
// of 0 sizes the buffer to the laid-out root's height each frame.
func WithSize(width, height int) RendererOption {
	return func(r *Renderer) error {
		if width < 1 {
			return fmt.Errorf("width must be at least 1 column")
		}
		if height < 0 {
			return fmt.Errorf("height cannot be negative")
		}
		r.width = width
		r.height = height
		return nil
	}
}

// WithCapabilities overrides environment capability detection.
func WithCapabilities(caps Capabilities) RendererOption {
	return func(r *Renderer) error {
		r.caps = caps
		return nil
	}
}

// WithFrameRate caps how often frames reach the terminal.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) RendererOption {
	return func(r *Renderer) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		r.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithCursor keeps the cursor visible between frames.
// By default, the cursor is hidden while the renderer owns the region.
func WithCursor() RendererOption {
	return func(r *Renderer) error {
		r.cursorVisible = true
		return nil
	}
}

// withClock injects a time source for tests.
func withClock(now func() time.Time) RendererOption {
	return func(r *Renderer) error {
		r.now = now
		return nil
	}
}

// NewRenderer creates a renderer with the given options. Defaults: stdout,
// 80 columns, content-sized height, environment-detected capabilities,
// 60 fps, hidden cursor.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		out:           os.Stdout,
		width:         80,
		caps:          DetectCapabilities(),
		frameDuration: time.Second / 60,
		now:           time.Now,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	r.inline = NewInlineWriter(r.out)
	r.inline.SetCursorVisible(r.cursorVisible)
	return r, nil
}

// Render composes a frame from the element tree and writes it to the
// terminal, unless the previous write was less than a frame interval ago.
// A throttled frame is not lost: it is retained as pending and flushed by
// the next on-time Render, by Flush, or by Unmount. The screen always
// catches up to the latest tree, it just skips intermediate states.
func (r *Renderer) Render(root Element) error {
	frame := r.composeFrame(root)

	now := r.now()
	if !r.lastFrameAt.IsZero() && now.Sub(r.lastFrameAt) < r.frameDuration {
		r.pending = frame
		r.hasPending = true
		return nil
	}

	r.pending = ""
	r.hasPending = false
	r.lastFrameAt = now
	return r.inline.Render(frame)
}

// Flush writes the pending throttled frame, if any, ignoring the frame
// interval. Call this when the UI goes idle so the last state is visible.
func (r *Renderer) Flush() error {
	if !r.hasPending {
		return nil
	}
	frame := r.pending
	r.pending = ""
	r.hasPending = false
	r.lastFrameAt = r.now()
	return r.inline.Render(frame)
}

// composeFrame runs layout and paint for one tree and returns the frame
// as a serialized ANSI string.
func (r *Renderer) composeFrame(root Element) string {
	pt := buildPaintTree(root)
	rootRect := layout.Calculate(pt.ln, r.width)

	height := r.height
	if height == 0 {
		height = rootRect.Height
	}
	buf := NewBuffer(r.width, height)
	paintTree(buf, pt)
	return buf.Render(r.caps)
}

// HandleResize adopts new region dimensions and tells the inline writer to
// recover from the reflow. The next Render lays out at the new width.
func (r *Renderer) HandleResize(width, height int) error {
	if width > 0 {
		r.width = width
	}
	if height >= 0 {
		r.height = height
	}
	return r.inline.HandleResize()
}

// Clear erases the rendered region and drops any pending frame.
func (r *Renderer) Clear() error {
	r.pending = ""
	r.hasPending = false
	return r.inline.Clear()
}

// Unmount finalizes the session: the pending frame (if any) is written so
// the last state stays visible, the inline writer detaches so the content
// is left in scrollback, and the cursor is restored. The renderer can be
// reused afterwards; rendering resumes below the finalized content.
func (r *Renderer) Unmount() error {
	if err := r.Flush(); err != nil {
		return err
	}
	r.inline.Done()
	r.lastFrameAt = time.Time{}

	if !r.cursorVisible {
		esc := newEscBuilder(8)
		esc.ShowCursor()
		if _, err := r.out.Write(esc.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
