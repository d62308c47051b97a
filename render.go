package elemtui

// Render walks the tree rooted at root in pre-order and paints each node's
// widget into buf, clipped to area. Parents paint before their children, so
// a child drawn over its parent's cells wins.
//
// Render reads the rects left by the last successful CalculateLayout; call
// it only after a layout pass has run for the current tree. Nodes whose
// clipped rect is empty are skipped but their children still walk, since a
// child may extend beyond its parent.
func (w *World) Render(root Entity, area Rect, buf *Buffer) {
	if buf == nil || !w.ecs.Valid(root) {
		return
	}
	entry := w.ecs.Entry(root)
	r := (*compRect.Get(entry)).Intersect(area)
	if widget := compWidget.Get(entry).widget; widget != nil && !r.Empty() {
		widget.Paint(r, buf)
	}
	for _, c := range *compChildren.Get(entry) {
		w.Render(c, area, buf)
	}
}
