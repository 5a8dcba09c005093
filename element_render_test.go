package blaeck

import (
	"testing"

	"github.com/gustafeden/blaeck-sub001/internal/layout"
)

// renderToBuffer runs the full expand-layout-paint pipeline at a given
// width and returns the painted grid.
func renderToBuffer(t *testing.T, root Element, width int) *Buffer {
	t.Helper()
	pt := buildPaintTree(root)
	rect := layout.Calculate(pt.ln, width)
	buf := NewBuffer(width, rect.Height)
	paintTree(buf, pt)
	return buf
}

func TestRender_TextLeaf(t *testing.T) {
	buf := renderToBuffer(t, Str("hello"), 10)
	if got := buf.String(); got != "hello     " {
		t.Errorf("buffer = %q, want %q", got, "hello     ")
	}
}

func TestRender_MultiLineText(t *testing.T) {
	buf := renderToBuffer(t, Str("ab\ncd"), 5)
	if got := buf.String(); got != "ab   \ncd   " {
		t.Errorf("buffer = %q", got)
	}
}

func TestRender_EmptyRendersNothing(t *testing.T) {
	buf := renderToBuffer(t, Empty{}, 5)
	if buf.Height() != 0 {
		t.Errorf("height = %d, want 0", buf.Height())
	}
}

func TestRender_RowPlacesChildrenSideBySide(t *testing.T) {
	buf := renderToBuffer(t, Row(Str("ab"), Str("cd")), 10)
	if got := buf.String(); got != "abcd      " {
		t.Errorf("buffer = %q, want %q", got, "abcd      ")
	}
}

func TestRender_ColumnStacksChildren(t *testing.T) {
	buf := renderToBuffer(t, Column(Str("ab"), Str("cd")), 5)
	if got := buf.String(); got != "ab   \ncd   " {
		t.Errorf("buffer = %q", got)
	}
}

func TestRender_FragmentSplicesAsSiblings(t *testing.T) {
	// Fragments do not stack: inside a row they behave exactly like the
	// elements written out inline.
	frag := Row(Fragment{Str("a"), Str("b")}, Str("c"))
	inline := Row(Str("a"), Str("b"), Str("c"))

	got := renderToBuffer(t, frag, 10).String()
	want := renderToBuffer(t, inline, 10).String()
	if got != want {
		t.Errorf("fragment row = %q, inline row = %q", got, want)
	}
	if got != "abc       " {
		t.Errorf("fragment row = %q, want %q", got, "abc       ")
	}
}

func TestRender_NestedFragmentsFlatten(t *testing.T) {
	el := Row(Fragment{Str("a"), Fragment{Str("b"), Str("c")}})
	buf := renderToBuffer(t, el, 10)
	if got := buf.String(); got != "abc       " {
		t.Errorf("buffer = %q, want %q", got, "abc       ")
	}
}

func TestRender_BoxBackgroundFill(t *testing.T) {
	bg := NewStyle().Background(Blue)
	style := DefaultLayoutStyle()
	style.Width = Fixed(4)
	style.Height = Fixed(2)

	buf := renderToBuffer(t, FilledBox(style, bg), 4)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			cell := buf.Cell(x, y)
			if !cell.Style.Equal(bg) {
				t.Errorf("cell (%d, %d) style = %+v, want background fill", x, y, cell.Style)
			}
		}
	}
}

func TestRender_ChildrenPaintOverBackground(t *testing.T) {
	bg := NewStyle().Background(Blue)
	style := DefaultLayoutStyle()
	style.Width = Fixed(5)
	style.Height = Fixed(1)

	buf := renderToBuffer(t, FilledBox(style, bg, Str("hi")), 5)
	if got := buf.Cell(0, 0); got.Rune != 'h' {
		t.Errorf("cell (0, 0) = %+v, want text over fill", got)
	}
	if got := buf.Cell(4, 0); !got.Style.Equal(bg) {
		t.Errorf("cell (4, 0) = %+v, want background fill", got)
	}
}

func TestRender_RegisteredComponentExpands(t *testing.T) {
	type labelProps struct{ Text string }
	Register("label-test", Component("label-test", func(p labelProps) Element {
		return Str("[" + p.Text + "]")
	}))

	buf := renderToBuffer(t, Node{Tag: "label-test", Props: labelProps{Text: "ok"}}, 10)
	if got := buf.String(); got != "[ok]      " {
		t.Errorf("buffer = %q, want %q", got, "[ok]      ")
	}
}

func TestRender_UnknownTagPanics(t *testing.T) {
	assertPanics(t, "unregistered tag", func() {
		renderToBuffer(t, Node{Tag: "never-registered"}, 10)
	})
}

func TestRender_BoxPropsTypeMismatchPanics(t *testing.T) {
	assertPanics(t, "wrong box props", func() {
		renderToBuffer(t, Node{Tag: TagBox, Props: "bogus"}, 10)
	})
}

func TestRender_NegativeRectPanicsAtPaint(t *testing.T) {
	pn := &paintNode{ln: layout.NewNode(layout.DefaultStyle())}
	pn.ln.Layout.Rect = layout.NewRect(0, 0, -1, 1)

	buf := NewBuffer(5, 1)
	assertPanics(t, "negative rect", func() {
		paintTree(buf, pn)
	})
}

func TestRender_GradientText(t *testing.T) {
	el := GradientStr("abcd", NewGradient(RGBColor(0, 0, 0), RGBColor(255, 255, 255)))
	buf := renderToBuffer(t, el, 10)

	first := buf.Cell(0, 0)
	last := buf.Cell(3, 0)
	if first.Rune != 'a' || last.Rune != 'd' {
		t.Fatalf("gradient text misplaced: %q", buf.String())
	}
	if !first.Style.Fg.Equal(RGBColor(0, 0, 0)) {
		t.Errorf("first cell fg = %+v, want gradient start", first.Style.Fg)
	}
	if !last.Style.Fg.Equal(RGBColor(255, 255, 255)) {
		t.Errorf("last cell fg = %+v, want gradient end", last.Style.Fg)
	}
}

func TestRender_LayoutOverrideOnComponent(t *testing.T) {
	Register("padded-test", func(props any) Element {
		return Str("x")
	})

	style := DefaultLayoutStyle()
	style.Padding = EdgeAll(1)
	buf := renderToBuffer(t, Node{Tag: "padded-test", Layout: &style}, 5)

	if got := buf.Cell(1, 1); got.Rune != 'x' {
		t.Errorf("cell (1, 1) = %+v, want padded text", got)
	}
}

func TestRender_LayoutOverrideOnFragmentExpansion(t *testing.T) {
	// A component that expands to siblings still honors the node's layout
	// override: the constraints wrap the whole expansion.
	Register("pair-test", func(props any) Element {
		return Fragment{Str("a"), Str("b")}
	})

	style := DefaultLayoutStyle()
	style.Padding = EdgeAll(1)
	buf := renderToBuffer(t, Node{Tag: "pair-test", Layout: &style}, 6)

	if got := buf.Cell(1, 1); got.Rune != 'a' {
		t.Errorf("cell (1, 1) = %+v, want padded first sibling", got)
	}
	if got := buf.Cell(2, 1); got.Rune != 'b' {
		t.Errorf("cell (2, 1) = %+v, want second sibling beside it", got)
	}
}

func TestRender_GradientAdvancesByClusterWidth(t *testing.T) {
	// A ZWJ emoji sequence is one cluster of width 2; the glyph after it
	// lands at column 2, exactly where the measured width puts it.
	el := GradientStr("👩‍🚀x", NewGradient(RGBColor(0, 0, 0), RGBColor(255, 255, 255)))
	buf := renderToBuffer(t, el, 10)

	if got := buf.Cell(0, 0); got.Rune != '👩' {
		t.Fatalf("cell (0, 0) = %+v, want cluster head", got)
	}
	if !buf.Cell(1, 0).IsContinuation() {
		t.Errorf("cell (1, 0) = %+v, want continuation", buf.Cell(1, 0))
	}
	last := buf.Cell(2, 0)
	if last.Rune != 'x' {
		t.Errorf("cell (2, 0) = %+v, want 'x' right after the cluster", last)
	}
	if !last.Style.Fg.Equal(RGBColor(255, 255, 255)) {
		t.Errorf("cell (2, 0) fg = %+v, want gradient end", last.Style.Fg)
	}
}

func TestRender_StyledText(t *testing.T) {
	style := NewStyle().Bold().Foreground(Green)
	buf := renderToBuffer(t, StyledStr("ok", style), 5)

	cell := buf.Cell(0, 0)
	if !cell.Style.Equal(style) {
		t.Errorf("cell style = %+v, want %+v", cell.Style, style)
	}
}
