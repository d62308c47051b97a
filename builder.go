package elemtui

// Node is a declarative description of one UI element: a widget, an
// optional set of layout attributes and an ordered list of children. It is
// a plain value built before any entity exists and consumed by
// [World.Spawn]; after spawning it has no further meaning.
type Node struct {
	widget    Widget
	width     *Width
	height    *Height
	direction *Direction
	padding   *Padding
	gap       *Gap
	justify   *Justify
	children  []*Node
}

// Ui starts a node description for the given widget. A nil widget produces
// an invisible container that only participates in layout.
func Ui(w Widget) *Node {
	return &Node{widget: w}
}

// With attaches layout attributes to the node. It can be called repeatedly;
// setting the same attribute kind again replaces the earlier value.
func (n *Node) With(attrs ...Attr) *Node {
	for _, a := range attrs {
		a.applyTo(n)
	}
	return n
}

// Child appends a single child description.
func (n *Node) Child(c *Node) *Node {
	n.children = append(n.children, c)
	return n
}

// Children appends child descriptions in order. Order is significant: it is
// both paint order and main-axis placement order.
func (n *Node) Children(cs ...*Node) *Node {
	n.children = append(n.children, cs...)
	return n
}
