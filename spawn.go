package elemtui

import "errors"

// Spawn materialises a declarative tree into the store and returns the
// root entity. Children are created in declaration order, which is the
// order layout and render traverse them in.
//
// Attributes left unset on a node take their defaults: Fit sizing on both
// axes, Horizontal direction, zero padding and gap, Start justification.
// A widget that implements PaddingHinter contributes its hint when the
// node declares no explicit padding.
//
// On error the store may hold a partially built subtree; callers should
// discard the world rather than retry against it.
func (w *World) Spawn(root *Node) (Entity, error) {
	var zero Entity
	if root == nil {
		return zero, errors.New("spawn: nil node")
	}
	return w.spawnNode(root)
}

func (w *World) spawnNode(n *Node) (Entity, error) {
	var zero Entity
	if n == nil {
		return zero, errors.New("spawn: nil child node")
	}

	e := w.ecs.Create(
		compWidget, compWidth, compHeight, compDirection,
		compPadding, compGap, compJustify, compChildren, compRect,
	)

	// Scalar components first. Component pointers are only valid until the
	// next Create call, so children are spawned after these writes land.
	entry := w.ecs.Entry(e)
	compWidget.Get(entry).widget = n.widget
	if n.width != nil {
		*compWidth.Get(entry) = *n.width
	}
	if n.height != nil {
		*compHeight.Get(entry) = *n.height
	}
	if n.direction != nil {
		*compDirection.Get(entry) = *n.direction
	}
	switch {
	case n.padding != nil:
		*compPadding.Get(entry) = *n.padding
	default:
		if h, ok := n.widget.(PaddingHinter); ok {
			*compPadding.Get(entry) = h.PaddingHint()
		}
	}
	if n.gap != nil {
		*compGap.Get(entry) = *n.gap
	}
	if n.justify != nil {
		*compJustify.Get(entry) = *n.justify
	}

	kids := make(Children, 0, len(n.children))
	for _, c := range n.children {
		ce, err := w.spawnNode(c)
		if err != nil {
			return zero, err
		}
		kids = append(kids, ce)
	}
	entry = w.ecs.Entry(e)
	*compChildren.Get(entry) = kids
	return e, nil
}
