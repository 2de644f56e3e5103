// Package grid holds the cell grid shared by every maze generator and by
// the consumer of a finished maze.
//
// What:
//
//   - CellType is the cell vocabulary: Floor, Wall, Start, Goal and the
//     transient PendingWall / Region states used while a maze is built.
//   - Grid is the mutable working surface: a row-major slice of cells
//     addressed by (x, y) or by the linear index x + y*Width.
//   - Maze is the immutable snapshot handed over once generation is done.
//   - Components, Reachable, IsPerfect, Analyze and Validate inspect the
//     passable cells of a grid as a 4-connected graph.
//
// Sizes:
//
//   - NormalizeSize forces odd dimensions (even inputs are decremented by
//     one) and clamps each side to MinSize.
//   - Get clamps out-of-range reads to the nearest edge; Set ignores
//     out-of-range writes. Neither returns an error.
//
// Complexity:
//
//   - Get, Set, Index, Coordinate: O(1).
//   - Components, Reachable, Analyze, Validate: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrStartCount: the grid does not hold exactly one Start cell.
//   - ErrGoalCount: the grid does not hold exactly one Goal cell.
//   - ErrTransientCell: a PendingWall or Region cell survived generation.
//   - ErrUnreachable: some passable cell cannot be reached from Start.
//   - ErrInvariant: wraps any of the above when a generator panics.
package grid
