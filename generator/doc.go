// Package generator holds the machinery shared by every maze generator:
// the step protocol, cell-change events, functional options and a driver.
//
// A generator is a resumable state machine. Each call to Step performs one
// local edit (or a small fixed batch of edits), reports every cell it
// changed through the OnChange hook, and returns Continue until the maze is
// finished, then Finished. Nothing runs in the background: whoever calls Step
// owns the pacing, which is what an animated viewer needs.
//
//	g, _ := dig.New(generator.WithSize(21, 21), generator.WithSeed(7))
//	for g.Step() == generator.Continue {
//		// draw, sleep, poll input...
//	}
//	m, _ := g.Maze()
//
// Run wraps that loop with context cancellation. A generator abandoned
// between steps never publishes a maze: Maze returns ErrNotDone until the
// final step has validated the grid.
package generator
