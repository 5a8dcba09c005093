package blaeck

import "fmt"

// Element is one entry in the declarative UI tree for a single frame.
// It is a closed tagged union: Empty, Text, Node, or Fragment. Trees are
// acyclic and owned top-down (a parent owns its children by value, with no
// shared or back references) and are rebuilt fresh by the caller every
// render, then discarded once the pipeline has consumed them.
type Element interface {
	isElement()
}

// Empty renders nothing and occupies no layout slot.
type Empty struct{}

func (Empty) isElement() {}

// Text is a leaf holding styled content. Multi-line content occupies one
// row per line at the computed rectangle.
type Text struct {
	Content string
	Style   Style

	// Gradient, when set, ramps the foreground color across each line,
	// overriding Style.Fg per character.
	Gradient *Gradient
}

func (Text) isElement() {}

// Fragment is a list of sibling elements with no implicit stacking
// container: its children are spliced into the parent as siblings, NOT
// stacked vertically. Vertical stacking requires an explicit column Node;
// callers that emit sibling runs from a single component rely on this.
type Fragment []Element

func (Fragment) isElement() {}

// Node is a component node: a stable type tag identifying which rendering
// function to invoke, a properties value for that function, optional
// layout-constraint overrides, and children.
type Node struct {
	Tag      Tag
	Props    any
	Layout   *LayoutStyle
	Children []Element
}

func (Node) isElement() {}

// Tag identifies a component kind.
type Tag string

// TagBox is the built-in container tag: a pure layout box with optional
// background fill.
const TagBox Tag = "box"

// BoxProps configures a TagBox node.
type BoxProps struct {
	// Background fills the node's rectangle before children paint over it.
	// Nil leaves the cells untouched (transparent).
	Background *Style
}

// RenderFunc resolves a component node's properties into a subtree.
// Registered functions must be pure: same props, same subtree.
type RenderFunc func(props any) Element

// registry maps component tags to their render functions. Populated at
// program init; not safe for concurrent mutation afterwards (the pipeline
// is single-threaded by contract).
var registry = map[Tag]RenderFunc{}

// Register binds a tag to a render function. Registering a tag twice is a
// programmer error and panics.
func Register(tag Tag, fn RenderFunc) {
	if tag == TagBox {
		panic("blaeck: cannot re-register built-in box tag")
	}
	if _, exists := registry[tag]; exists {
		panic(fmt.Sprintf("blaeck: component %q already registered", tag))
	}
	registry[tag] = fn
}

// Component wraps a typed render function for Register. A node carrying
// props of any other type is a programmer error: the wrapper fails fast
// rather than silently misrendering.
func Component[P any](tag Tag, render func(P) Element) RenderFunc {
	return func(props any) Element {
		p, ok := props.(P)
		if !ok {
			panic(fmt.Sprintf("blaeck: component %q received props %T, want %T", tag, props, p))
		}
		return render(p)
	}
}

// Box creates a container node with the given layout constraints.
func Box(layout LayoutStyle, children ...Element) Node {
	return Node{
		Tag:      TagBox,
		Props:    BoxProps{},
		Layout:   &layout,
		Children: children,
	}
}

// FilledBox creates a container node whose rectangle is filled with the
// given background style before children paint.
func FilledBox(layout LayoutStyle, background Style, children ...Element) Node {
	return Node{
		Tag:      TagBox,
		Props:    BoxProps{Background: &background},
		Layout:   &layout,
		Children: children,
	}
}

// Row creates a container laying children out left-to-right.
func Row(children ...Element) Node {
	layout := DefaultLayoutStyle()
	layout.Direction = RowDirection
	return Box(layout, children...)
}

// Column creates a container stacking children top-to-bottom.
func Column(children ...Element) Node {
	layout := DefaultLayoutStyle()
	layout.Direction = ColumnDirection
	return Box(layout, children...)
}

// Str creates an unstyled text leaf.
func Str(content string) Text {
	return Text{Content: content}
}

// StyledStr creates a styled text leaf.
func StyledStr(content string, style Style) Text {
	return Text{Content: content, Style: style}
}

// GradientStr creates a text leaf with a foreground color ramp.
func GradientStr(content string, g Gradient) Text {
	return Text{Content: content, Gradient: &g}
}
