package clustering

import (
	"fmt"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/regions"
)

// Generator is the clustering state machine.
type Generator struct {
	canvas  *generator.Canvas
	tracker *regions.Tracker
	order   []int // shuffled wall indices
	next    int   // position in order
	lw, lh  int   // lattice size
	state   generator.State
	maze    *grid.Maze
}

var _ generator.Generator = (*Generator)(nil)

// New builds the lattice, the region tracker and the shuffled wall order.
// No cell change is reported until the first Step.
// Complexity: O(W×H) time and memory.
func New(opts ...generator.Option) *Generator {
	o := generator.NewOptions(opts...)
	g := grid.NewNormalized(o.Width, o.Height, grid.Wall)
	w, h := g.Size()
	lw, lh := (w+1)/2, (h+1)/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case x%2 == 0 && y%2 == 0:
				g.Set(x, y, grid.Region)
			case x%2 == 0 || y%2 == 0:
				g.Set(x, y, grid.PendingWall)
			}
		}
	}

	gen := &Generator{
		canvas:  generator.NewCanvas(g, o.OnChange),
		tracker: regions.NewTracker(lw, lh),
		lw:      lw,
		lh:      lh,
	}
	gen.order = make([]int, gen.WallCount())
	for i := range gen.order {
		gen.order[i] = i
	}
	o.Rand.Shuffle(len(gen.order), func(i, j int) {
		gen.order[i], gen.order[j] = gen.order[j], gen.order[i]
	})
	return gen
}

// WallCount returns the number of removable walls.
func (gen *Generator) WallCount() int {
	return gen.lh*(gen.lw-1) + (gen.lh-1)*gen.lw
}

// Separated returns the lattice indices of the two anchors wall w lies
// between. It panics if w is out of range.
func (gen *Generator) Separated(w int) (a, b int) {
	gen.checkWall(w)
	per := 2*gen.lw - 1
	r, o := w/per, w%per
	if o < gen.lw-1 {
		return gen.tracker.Index(o, r), gen.tracker.Index(o+1, r)
	}
	j := o - (gen.lw - 1)
	return gen.tracker.Index(j, r), gen.tracker.Index(j, r+1)
}

// WallCell returns the grid cell of wall w. It panics if w is out of range.
func (gen *Generator) WallCell(w int) grid.Point {
	gen.checkWall(w)
	per := 2*gen.lw - 1
	r, o := w/per, w%per
	if o < gen.lw-1 {
		return grid.Point{X: 2*o + 1, Y: 2 * r}
	}
	j := o - (gen.lw - 1)
	return grid.Point{X: 2 * j, Y: 2*r + 1}
}

// Regions returns the tracker. It is owned by the generator; read only.
func (gen *Generator) Regions() *regions.Tracker { return gen.tracker }

// Step removes the next wall that joins two separate regions. Walls whose
// anchors already share a region are consumed without suspending. Once the
// order is exhausted the maze is finalized and Finished is returned.
//
// Time: O(1) per skipped wall; a merge rewrites the retired id by scanning
// the whole lattice, O(L) for L anchors, so a full run is O(L²).
func (gen *Generator) Step() generator.StepResult {
	if gen.state == generator.Done {
		return generator.Finished
	}
	gen.state = generator.Running

	for gen.next < len(gen.order) {
		w := gen.order[gen.next]
		gen.next++

		a, b := gen.Separated(w)
		if gen.tracker.Same(a, b) {
			continue
		}
		cell := gen.WallCell(w)
		if gen.canvas.Get(cell) != grid.PendingWall {
			continue
		}
		gen.canvas.Set(cell, grid.Floor)
		gen.tracker.Merge(a, b)
		return generator.Continue
	}

	gen.finish()
	return generator.Finished
}

func (gen *Generator) finish() {
	g := gen.canvas.Grid()
	w, h := g.Size()
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coordinate(i)
		switch g.GetIndex(i) {
		case grid.Region:
			gen.canvas.Set(grid.Point{X: x, Y: y}, grid.Floor)
		case grid.PendingWall:
			gen.canvas.Set(grid.Point{X: x, Y: y}, grid.Wall)
		}
	}
	gen.canvas.Set(grid.Point{X: 0, Y: 0}, grid.Start)
	gen.canvas.Set(grid.Point{X: w - 1, Y: h - 1}, grid.Goal)

	if n := gen.tracker.Count(); n != 1 {
		panic(fmt.Errorf("%w: clustering finished with %d regions", grid.ErrInvariant, n))
	}
	grid.MustValidate(g)
	gen.maze = grid.NewMaze(g)
	gen.state = generator.Done
}

// State reports the lifecycle phase.
func (gen *Generator) State() generator.State { return gen.state }

// Snapshot returns a copy of the working grid.
func (gen *Generator) Snapshot() *grid.Grid { return gen.canvas.Grid().Clone() }

// Maze returns the finished maze, or generator.ErrNotDone.
func (gen *Generator) Maze() (*grid.Maze, error) {
	if gen.state != generator.Done {
		return nil, generator.ErrNotDone
	}
	return gen.maze, nil
}

func (gen *Generator) checkWall(w int) {
	if w < 0 || w >= gen.WallCount() {
		panic(fmt.Errorf("%w: wall index %d out of range [0,%d)", grid.ErrInvariant, w, gen.WallCount()))
	}
}
