package blaeck

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestRenderer(t *testing.T, out *bytes.Buffer, opts ...RendererOption) (*Renderer, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Unix(1000, 0)}
	opts = append([]RendererOption{
		WithOutput(out),
		WithSize(10, 0),
		WithCapabilities(DefaultCapabilities()),
		withClock(clock.now),
	}, opts...)

	r, err := NewRenderer(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return r, clock
}

func TestRenderer_RendersFrame(t *testing.T) {
	var out bytes.Buffer
	r, _ := newTestRenderer(t, &out)

	if err := r.Render(Str("hi")); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[?2026h\x1b[?25lhi\n\x1b[?2026l"
	if got := out.String(); got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestRenderer_IdenticalTreeEmitsNothing(t *testing.T) {
	var out bytes.Buffer
	r, clock := newTestRenderer(t, &out)

	if err := r.Render(Str("same")); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Second)
	out.Reset()

	if err := r.Render(Str("same")); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("identical tree wrote %q, want nothing", out.String())
	}
}

func TestRenderer_ThrottleKeepsLatestFrame(t *testing.T) {
	var out bytes.Buffer
	r, clock := newTestRenderer(t, &out)

	if err := r.Render(Str("first")); err != nil {
		t.Fatal(err)
	}
	out.Reset()

	// Two frames arrive within the interval: both are held, only the
	// latest survives as pending.
	clock.advance(time.Millisecond)
	if err := r.Render(Str("dropped")); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Millisecond)
	if err := r.Render(Str("latest")); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatalf("throttled frames wrote %q, want nothing", out.String())
	}

	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "latest") {
		t.Errorf("flush = %q, want latest frame", got)
	}
	if strings.Contains(got, "dropped") {
		t.Errorf("flush = %q, dropped frame should never reach the terminal", got)
	}
}

func TestRenderer_OnTimeFrameWritesImmediately(t *testing.T) {
	var out bytes.Buffer
	r, clock := newTestRenderer(t, &out)

	if err := r.Render(Str("first")); err != nil {
		t.Fatal(err)
	}
	out.Reset()

	clock.advance(time.Second)
	if err := r.Render(Str("second")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "second") {
		t.Errorf("on-time frame = %q, want immediate write", out.String())
	}
}

func TestRenderer_FlushWithoutPendingEmitsNothing(t *testing.T) {
	var out bytes.Buffer
	r, _ := newTestRenderer(t, &out)

	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("flush with no pending wrote %q", out.String())
	}
}

func TestRenderer_UnmountFlushesAndShowsCursor(t *testing.T) {
	var out bytes.Buffer
	r, clock := newTestRenderer(t, &out)

	if err := r.Render(Str("a")); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Millisecond)
	if err := r.Render(Str("b")); err != nil {
		t.Fatal(err)
	}
	out.Reset()

	if err := r.Unmount(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "b") {
		t.Errorf("unmount = %q, want pending frame flushed", got)
	}
	if !strings.HasSuffix(got, "\x1b[?25h") {
		t.Errorf("unmount = %q, want trailing show-cursor", got)
	}
}

func TestRenderer_RenderAfterUnmountStartsFresh(t *testing.T) {
	var out bytes.Buffer
	r, clock := newTestRenderer(t, &out)

	if err := r.Render(Str("kept")); err != nil {
		t.Fatal(err)
	}
	if err := r.Unmount(); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Second)
	out.Reset()

	if err := r.Render(Str("next")); err != nil {
		t.Fatal(err)
	}

	// The finalized content is not erased; the new frame has no cursor-up.
	got := out.String()
	if strings.Contains(got, "\x1b[A") || strings.Contains(got, "\x1b[2K") {
		t.Errorf("render after unmount = %q, want no erase sequences", got)
	}
}

func TestRenderer_HandleResizeChangesLayoutWidth(t *testing.T) {
	var out bytes.Buffer
	r, clock := newTestRenderer(t, &out)

	if err := r.Render(Str("wide content here")); err != nil {
		t.Fatal(err)
	}
	if err := r.HandleResize(5, 0); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Second)
	out.Reset()

	if err := r.Render(Str("wide content here")); err != nil {
		t.Fatal(err)
	}

	// Content clips at the new 5-column width.
	got := out.String()
	if strings.Contains(got, "content") {
		t.Errorf("frame after resize = %q, want clipped content", got)
	}
	if !strings.Contains(got, "wide") {
		t.Errorf("frame after resize = %q, want first columns kept", got)
	}
}

func TestRenderer_ClearDropsPending(t *testing.T) {
	var out bytes.Buffer
	r, clock := newTestRenderer(t, &out)

	if err := r.Render(Str("a")); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Millisecond)
	if err := r.Render(Str("pending")); err != nil {
		t.Fatal(err)
	}

	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("flush after clear wrote %q, want nothing", out.String())
	}
}

func TestRenderer_FixedHeightBoundsBuffer(t *testing.T) {
	var out bytes.Buffer
	r, _ := newTestRenderer(t, &out, WithSize(10, 2))

	if err := r.Render(Str("1\n2\n3\n4")); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if strings.Contains(got, "3") || strings.Contains(got, "4") {
		t.Errorf("frame = %q, want rows past the fixed height clipped", got)
	}
}

func TestRenderer_OptionValidation(t *testing.T) {
	type tc struct {
		opt RendererOption
	}

	tests := map[string]tc{
		"nil output":        {opt: WithOutput(nil)},
		"zero width":        {opt: WithSize(0, 5)},
		"negative height":   {opt: WithSize(10, -1)},
		"zero frame rate":   {opt: WithFrameRate(0)},
		"absurd frame rate": {opt: WithFrameRate(1000)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewRenderer(tt.opt); err == nil {
				t.Error("expected option error")
			}
		})
	}
}
