package blaeck

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/gustafeden/blaeck-sub001/internal/layout"
)

// paintNode pairs a layout node with what gets painted at its computed
// rectangle. The paint tree is rebuilt for every frame: component nodes
// are expanded, fragments are spliced into their parent's child list, and
// layout results are valid only for the pass that produced them.
type paintNode struct {
	ln       *layout.Node
	text     string
	style    Style
	gradient *Gradient
	bg       *Style
	children []*paintNode
}

// buildPaintTree expands an element tree into a paint tree rooted at a
// single node. A root fragment or leaf is wrapped in a default container so
// the layout engine always receives one root.
func buildPaintTree(root Element) *paintNode {
	resolved := resolveElement(root)
	if len(resolved) == 1 {
		return resolved[0]
	}

	wrapper := &paintNode{ln: layout.NewNode(layout.DefaultStyle())}
	attachChildren(wrapper, resolved)
	return wrapper
}

// resolveElement flattens one element into zero or more paint nodes.
// Fragments contribute their children as siblings, not stacked
// vertically; stacking requires an explicit column container.
func resolveElement(el Element) []*paintNode {
	switch v := el.(type) {
	case nil, Empty:
		return nil
	case Text:
		return []*paintNode{textPaintNode(v)}
	case Fragment:
		var out []*paintNode
		for _, child := range v {
			out = append(out, resolveElement(child)...)
		}
		return out
	case Node:
		return resolveNode(v)
	default:
		panic(fmt.Sprintf("blaeck: unknown element type %T", el))
	}
}

// resolveNode dispatches a component node by tag. A tag whose stored
// properties don't match the component's expected type is a programmer
// error and fails fast; it is never silently coerced.
func resolveNode(n Node) []*paintNode {
	if n.Tag == TagBox {
		props, ok := n.Props.(BoxProps)
		if !ok {
			panic(fmt.Sprintf("blaeck: component %q received props %T, want %T", n.Tag, n.Props, props))
		}

		style := layout.DefaultStyle()
		if n.Layout != nil {
			style = *n.Layout
		}
		pn := &paintNode{
			ln: layout.NewNode(style),
			bg: props.Background,
		}
		var resolved []*paintNode
		for _, child := range n.Children {
			resolved = append(resolved, resolveElement(child)...)
		}
		attachChildren(pn, resolved)
		return []*paintNode{pn}
	}

	fn, ok := registry[n.Tag]
	if !ok {
		panic(fmt.Sprintf("blaeck: no component registered for tag %q", n.Tag))
	}

	resolved := resolveElement(fn(n.Props))
	if n.Layout == nil {
		return resolved
	}

	// A node-level layout override applies to the expansion's single root.
	// Fragment expansions get a container carrying the override, so the
	// constraints are never silently dropped.
	if len(resolved) == 1 {
		resolved[0].ln.Style = *n.Layout
		return resolved
	}
	wrapper := &paintNode{ln: layout.NewNode(*n.Layout)}
	attachChildren(wrapper, resolved)
	return []*paintNode{wrapper}
}

func attachChildren(pn *paintNode, children []*paintNode) {
	pn.children = children
	for _, child := range children {
		pn.ln.AddChild(child.ln)
	}
}

// textPaintNode builds a leaf whose intrinsic size is the sanitized text's
// display footprint: widest line by terminal columns, one row per line.
func textPaintNode(t Text) *paintNode {
	content := sanitizeText(t.Content)

	width, height := 0, 0
	for _, line := range strings.Split(content, "\n") {
		width = max(width, stringWidth(line))
		height++
	}

	ln := layout.NewNode(layout.DefaultStyle())
	ln.ContentSize = layout.Size{Width: width, Height: height}
	return &paintNode{
		ln:       ln,
		text:     content,
		style:    t.Style,
		gradient: t.Gradient,
	}
}

// paintTree walks the paint tree depth-first, filling backgrounds and
// painting text leaves into the buffer at their computed rectangles.
// A negative dimension reaching this stage means the layout engine leaked
// an over-constrained result; continuing would corrupt the visible
// terminal state, so it aborts.
func paintTree(buf *Buffer, pn *paintNode) {
	rect := pn.ln.Layout.Rect
	if rect.Width < 0 || rect.Height < 0 {
		panic(fmt.Sprintf("blaeck: negative layout rect %+v reached painting", rect))
	}

	if pn.bg != nil {
		buf.Fill(rect, ' ', *pn.bg)
	}

	if pn.text != "" {
		content := pn.ln.Layout.ContentRect
		if pn.gradient != nil {
			paintGradientText(buf, content.X, content.Y, pn.text, pn.style, *pn.gradient)
		} else {
			buf.WriteString(content.X, content.Y, pn.text, pn.style)
		}
	}

	for _, child := range pn.children {
		paintTree(buf, child)
	}
}

// paintGradientText paints text with a foreground ramp, one color per
// grapheme cluster. Advancing by cluster width keeps the painted footprint
// equal to the measured one: a ZWJ emoji sequence occupies its cluster
// width, not the sum of its component runes.
func paintGradientText(buf *Buffer, x, y int, text string, base Style, g Gradient) {
	for i, line := range strings.Split(text, "\n") {
		total := uniseg.GraphemeClusterCount(line)
		clusters := uniseg.NewGraphemes(line)
		curX := x
		j := 0
		for clusters.Next() {
			t := 0.0
			if total > 1 {
				t = float64(j) / float64(total-1)
			}
			j++

			width := clusters.Width()
			if width == 0 {
				continue
			}
			style := base
			style.Fg = g.At(t)
			buf.SetRune(curX, y+i, clusters.Runes()[0], style)
			curX += width
		}
	}
}
