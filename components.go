package elemtui

import "github.com/yohamta/donburi"

// SizeKind discriminates the sizing policies a node can carry per axis.
type SizeKind uint8

const (
	// SizeFit shrinks the axis to the node's content.
	SizeFit SizeKind = iota
	// SizeFixed pins the axis to an exact cell count.
	SizeFixed
	// SizeGrow expands into leftover space in proportion to its weight.
	SizeGrow
)

// Size is a sizing policy for one axis. The zero value is Fit.
type Size struct {
	Kind   SizeKind
	Cells  int     // SizeFixed only
	Weight float64 // SizeGrow only, > 0
}

// Fixed returns a policy pinning the axis to n cells. Negative values are
// clamped to zero.
func Fixed(n int) Size {
	if n < 0 {
		n = 0
	}
	return Size{Kind: SizeFixed, Cells: n}
}

// Fit returns the shrink-to-content policy. It is also the default for any
// axis left unset.
func Fit() Size {
	return Size{Kind: SizeFit}
}

// Grow returns a policy that consumes leftover space along the axis. An
// optional weight sets the node's proportional share; it defaults to 1 and
// non-positive weights are treated as 1.
func Grow(weight ...float64) Size {
	w := 1.0
	if len(weight) > 0 && weight[0] > 0 {
		w = weight[0]
	}
	return Size{Kind: SizeGrow, Weight: w}
}

// Width is the horizontal sizing policy component.
type Width Size

// Height is the vertical sizing policy component.
type Height Size

// Direction selects the main axis along which a node lays out its children.
type Direction uint8

const (
	// Horizontal places children left to right. This is the default.
	Horizontal Direction = iota
	// Vertical places children top to bottom.
	Vertical
)

// Padding insets a node's content rectangle from its own rectangle.
type Padding struct {
	Top, Right, Bottom, Left int
}

// PadAll returns uniform padding of n cells on every side.
func PadAll(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns the total left+right inset.
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the total top+bottom inset.
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}

// Gap is the number of cells inserted between consecutive children along
// the main axis.
type Gap int

// Justify distributes leftover main-axis space between children. It only
// takes effect when no child grows along the main axis; a growing child
// always consumes the leftover space itself.
type Justify uint8

const (
	// JustifyStart packs children at the start of the main axis. Default.
	JustifyStart Justify = iota
	// JustifyCenter centers the run of children.
	JustifyCenter
	// JustifyEnd packs children at the end of the main axis.
	JustifyEnd
	// JustifySpaceBetween spreads leftover space evenly between children.
	JustifySpaceBetween
	// JustifySpaceAround gives each child equal space on both sides.
	JustifySpaceAround
	// JustifySpaceEvenly spaces children and both edges equally.
	JustifySpaceEvenly
)

// Children is the ordered child list of a node. Order is both paint order
// and main-axis placement order. Written by Spawn; treat as read-only.
type Children []donburi.Entity

// widgetSlot boxes the Widget interface for component storage.
type widgetSlot struct {
	widget Widget
}

// Component tables. One typed table per layout attribute, keyed by entity,
// mirroring the parallel-array storage the solver expects.
var (
	compWidth     = donburi.NewComponentType[Width]()
	compHeight    = donburi.NewComponentType[Height]()
	compDirection = donburi.NewComponentType[Direction]()
	compPadding   = donburi.NewComponentType[Padding]()
	compGap       = donburi.NewComponentType[Gap]()
	compJustify   = donburi.NewComponentType[Justify]()
	compChildren  = donburi.NewComponentType[Children]()
	compRect      = donburi.NewComponentType[Rect]()
	compWidget    = donburi.NewComponentType[widgetSlot]()
)

// Attr is a typed layout attribute that can be attached to a node
// description. Implemented by Width, Height, Direction, Padding, Gap and
// Justify; attaching the same kind twice keeps the last value.
type Attr interface {
	applyTo(*Node)
}

func (w Width) applyTo(n *Node)     { n.width = &w }
func (h Height) applyTo(n *Node)    { n.height = &h }
func (d Direction) applyTo(n *Node) { n.direction = &d }
func (p Padding) applyTo(n *Node)   { n.padding = &p }
func (g Gap) applyTo(n *Node)       { n.gap = &g }
func (j Justify) applyTo(n *Node)   { n.justify = &j }
