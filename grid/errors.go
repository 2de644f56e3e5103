package grid

import "errors"

var (
	// ErrStartCount indicates the grid does not hold exactly one Start cell.
	ErrStartCount = errors.New("grid: maze must contain exactly one start cell")
	// ErrGoalCount indicates the grid does not hold exactly one Goal cell.
	ErrGoalCount = errors.New("grid: maze must contain exactly one goal cell")
	// ErrTransientCell indicates a generation-only cell type survived generation.
	ErrTransientCell = errors.New("grid: transient cell left in finished maze")
	// ErrUnreachable indicates a passable cell cannot be reached from Start.
	ErrUnreachable = errors.New("grid: passable cell unreachable from start")
	// ErrInvariant marks an internal invariant violation; generators panic with it.
	ErrInvariant = errors.New("grid: invariant violated")
)
