package dig

import (
	"math/rand"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

// origin is the first room carved.
var origin = grid.Point{X: 1, Y: 1}

// Generator is the dig state machine.
type Generator struct {
	canvas *generator.Canvas
	rng    *rand.Rand

	queue  []grid.Point // resume points, FIFO
	pool   []grid.Point // carved rooms that may still branch
	cur    grid.Point
	active bool // a walk is in progress from cur

	state generator.State
	maze  *grid.Maze
}

var _ generator.Generator = (*Generator)(nil)

// New allocates an all-Wall grid of the normalized size.
// Complexity: O(W×H).
func New(opts ...generator.Option) *Generator {
	o := generator.NewOptions(opts...)
	g := grid.NewNormalized(o.Width, o.Height, grid.Wall)
	return &Generator{
		canvas: generator.NewCanvas(g, o.OnChange),
		rng:    o.Rand,
		queue:  []grid.Point{origin},
	}
}

// Step advances the current walk by one room. Dead ends and resumptions are
// resolved inside the same call, so every Continue carries at least one
// carved cell.
//
// Time: four two-cell neighbour probes per advance; a dead end that draws
// a resume point from the pool costs O(P) for pool size P.
func (gen *Generator) Step() generator.StepResult {
	switch gen.state {
	case generator.Done:
		return generator.Finished
	case generator.Init:
		// scratch border, not reported: it is undone in finish
		gen.canvas.Grid().FillBorder(grid.Floor)
		gen.state = generator.Running
	}

	for {
		if !gen.active {
			if len(gen.queue) == 0 {
				gen.finish()
				return generator.Finished
			}
			gen.cur = gen.queue[0]
			gen.queue = gen.queue[1:]
			gen.active = true
		}

		dirs := gen.open(gen.cur)
		if len(dirs) == 0 {
			gen.active = false
			if len(gen.pool) > 0 {
				i := gen.rng.Intn(len(gen.pool))
				next := gen.pool[i]
				gen.pool = append(gen.pool[:i], gen.pool[i+1:]...)
				gen.queue = append(gen.queue, next)
			}
			continue
		}

		gen.carve(gen.cur)
		d := dirs[gen.rng.Intn(len(dirs))]
		gen.carve(gen.cur.Add(d))
		gen.cur = gen.cur.Add(d.Scale(2))
		gen.carve(gen.cur)
		return generator.Continue
	}
}

// open lists the directions whose next two cells are both Wall.
func (gen *Generator) open(p grid.Point) []grid.Point {
	dirs := make([]grid.Point, 0, 4)
	for _, d := range grid.Directions {
		if gen.canvas.Get(p.Add(d)) == grid.Wall && gen.canvas.Get(p.Add(d.Scale(2))) == grid.Wall {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// carve turns p into Floor; a newly carved room joins the pool.
// Rooms enter the pool once, when first carved, so the pool holds no
// duplicates and re-visited rooms are not weighted up.
func (gen *Generator) carve(p grid.Point) {
	if !gen.canvas.Set(p, grid.Floor) {
		return
	}
	if p.X%2 == 1 && p.Y%2 == 1 {
		gen.pool = append(gen.pool, p)
	}
}

func (gen *Generator) finish() {
	g := gen.canvas.Grid()
	g.FillBorder(grid.Wall)
	w, h := g.Size()
	gen.canvas.Set(origin, grid.Start)
	gen.canvas.Set(grid.Point{X: w - 2, Y: h - 2}, grid.Goal)

	grid.MustValidate(g)
	gen.maze = grid.NewMaze(g)
	gen.state = generator.Done
}

// State reports the lifecycle phase.
func (gen *Generator) State() generator.State { return gen.state }

// Snapshot returns a copy of the working grid, scratch border included.
func (gen *Generator) Snapshot() *grid.Grid { return gen.canvas.Grid().Clone() }

// Maze returns the finished maze, or generator.ErrNotDone.
func (gen *Generator) Maze() (*grid.Maze, error) {
	if gen.state != generator.Done {
		return nil, generator.ErrNotDone
	}
	return gen.maze, nil
}
