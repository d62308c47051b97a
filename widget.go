package elemtui

// Widget is the paint capability attached to a node. The layout solver asks
// it for an intrinsic minimum size when a Fit leaf has no children; the
// render walker hands it the node's computed rectangle clipped to the
// render area.
type Widget interface {
	// Paint draws the widget into buf. It must not write outside r.
	Paint(r Rect, buf *Buffer)

	// IntrinsicSize reports the widget's natural minimum extent in cells.
	// Containers usually return (0, 0); their size comes from children.
	IntrinsicSize() (w, h int)
}

// PaddingHinter is an optional Widget extension. A widget that draws its own
// chrome (e.g. a border) reports the padding a node should default to so the
// chrome is not painted over by children. Spawn consults it only when the
// node description carries no explicit Padding.
type PaddingHinter interface {
	PaddingHint() Padding
}
