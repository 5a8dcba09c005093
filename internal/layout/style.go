package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Display selects the layout algorithm a container uses for its children.
type Display uint8

const (
	DisplayFlex Display = iota // Single-axis flexbox (default)
	DisplayGrid                // Track-based grid with auto-flow placement
)

// Position specifies whether a node participates in its parent's flow.
type Position uint8

const (
	PositionFlow     Position = iota // Normal flex/grid flow (default)
	PositionAbsolute                 // Out of flow, placed by Inset offsets
)

// Inset holds offsets for absolutely positioned nodes, resolved against the
// containing block. Auto values leave the corresponding edge unconstrained.
type Inset struct {
	Top, Right, Bottom, Left Value
}

// InsetAuto returns an Inset with all edges unset.
func InsetAuto() Inset {
	return Inset{Top: Auto(), Right: Auto(), Bottom: Auto(), Left: Auto()}
}

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	AlignContent   Align // Positions the track block in grid mode
	Gap            int   // Space between children, both axes in grid mode

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Grid container properties
	Display         Display
	TemplateColumns []Value // Column track sizes (empty = one auto column)
	TemplateRows    []Value // Explicit row track sizes (rows beyond are implicit)

	// Grid item properties (1-based track index, 0 = auto-flow)
	GridColumn int
	GridRow    int

	// Positioning
	Position Position
	Inset    Inset

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
		Inset:      InsetAuto(),
	}
}
