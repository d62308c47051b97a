package elemtui

import "errors"

// Layout failures. CalculateLayout wraps these with the offending entity,
// so callers match with errors.Is.
var (
	// ErrOverflow reports that a node's fixed and fit children exceed its
	// content size along the main axis. Recoverable: adjust the tree or the
	// viewport and re-invoke.
	ErrOverflow = errors.New("content overflows available space")

	// ErrUnknownEntity reports a child reference that does not resolve in
	// the store. Indicates a materialization bug or external mutation.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrCycle reports an entity encountered twice on the current
	// root-to-node path. The entity graph must be a tree.
	ErrCycle = errors.New("cycle in entity graph")
)
