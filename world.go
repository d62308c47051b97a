package elemtui

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Entity identifies one UI node in the store. It is issued by Spawn and has
// no intrinsic fields.
type Entity = donburi.Entity

// World owns the entity store for one UI tree. It wraps a donburi world and
// exposes the three core operations: Spawn, CalculateLayout and Render.
//
// A World must not be shared between goroutines during a call; independent
// worlds are safe to use concurrently since they share no state.
type World struct {
	ecs donburi.World
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{ecs: donburi.NewWorld()}
}

// Store exposes the underlying entity store for callers that attach their
// own components alongside the layout attributes.
func (w *World) Store() donburi.World {
	return w.ecs
}

// entry resolves an entity, failing with ErrUnknownEntity when the
// identifier does not exist in the store.
func (w *World) entry(e Entity) (*donburi.Entry, error) {
	if !w.ecs.Valid(e) {
		return nil, fmt.Errorf("entity %d: %w", e.Id(), ErrUnknownEntity)
	}
	return w.ecs.Entry(e), nil
}

// ChildrenOf returns the ordered children of e.
func (w *World) ChildrenOf(e Entity) ([]Entity, error) {
	entry, err := w.entry(e)
	if err != nil {
		return nil, err
	}
	kids := *compChildren.Get(entry)
	out := make([]Entity, len(kids))
	copy(out, kids)
	return out, nil
}

// ComputedRect returns the rectangle assigned to e by the last successful
// CalculateLayout. The value is stale until a layout pass has run after the
// most recent tree or viewport change; staleness tracking is the caller's
// concern.
func (w *World) ComputedRect(e Entity) (Rect, error) {
	entry, err := w.entry(e)
	if err != nil {
		return Rect{}, err
	}
	return *compRect.Get(entry), nil
}
