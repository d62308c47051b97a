// Package elemtui is a constraint-based layout engine for terminal UIs
// backed by an entity/component store.
//
// A UI is described declaratively with [Ui], materialized into entities
// with [World.Spawn], solved with [World.CalculateLayout] and painted with
// [World.Render]. Layout and rendering are decoupled: one layout pass can
// back any number of render passes until the tree or viewport changes.
//
//	w := elemtui.NewWorld()
//	root, err := w.Spawn(
//		elemtui.Ui(elemtui.NewBlock("demo")).
//			With(elemtui.Width(elemtui.Fixed(36)), elemtui.Height(elemtui.Fixed(18))).
//			Children(
//				elemtui.Ui(elemtui.NewText("sidebar")).With(elemtui.Width(elemtui.Fixed(10))),
//				elemtui.Ui(elemtui.NewText("body")).With(elemtui.Width(elemtui.Grow())),
//			),
//	)
//	if err != nil { ... }
//	if err := w.CalculateLayout(root, elemtui.NewRect(0, 0, 36, 18)); err != nil { ... }
//	buf := elemtui.NewBuffer(36, 18)
//	w.Render(root, elemtui.NewRect(0, 0, 36, 18), buf)
package elemtui
