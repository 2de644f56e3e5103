package wallextend

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

// Generator is the wall-extension state machine.
type Generator struct {
	canvas *generator.Canvas
	rng    *rand.Rand

	seeds []grid.Point // shuffled pillar positions
	next  int          // position in seeds

	stack  []grid.Point // pillars of the current vein, for backtracking
	inVein []bool       // row-major; every cell the current vein has walled
	walled []int        // indices set in inVein, for reset
	cur    grid.Point
	active bool // a vein is growing from cur

	state generator.State
	maze  *grid.Maze
}

var _ generator.Generator = (*Generator)(nil)

// New allocates the open field and shuffles the pillar positions.
// Complexity: O(W×H).
func New(opts ...generator.Option) *Generator {
	o := generator.NewOptions(opts...)
	g := grid.NewNormalized(o.Width, o.Height, grid.Floor)
	g.FillBorder(grid.Wall)
	w, h := g.Size()

	var seeds []grid.Point
	for y := 2; y < h-1; y += 2 {
		for x := 2; x < w-1; x += 2 {
			seeds = append(seeds, grid.Point{X: x, Y: y})
		}
	}
	o.Rand.Shuffle(len(seeds), func(i, j int) {
		seeds[i], seeds[j] = seeds[j], seeds[i]
	})

	return &Generator{
		canvas: generator.NewCanvas(g, o.OnChange),
		rng:    o.Rand,
		seeds:  seeds,
		inVein: make([]bool, g.Len()),
	}
}

// Seeds returns the shuffled pillar order.
func (gen *Generator) Seeds() []grid.Point {
	out := make([]grid.Point, len(gen.seeds))
	copy(out, gen.seeds)
	return out
}

// Step extends the current vein by one pillar. Skipped seeds and
// backtracking are resolved inside the same call, so every Continue
// carries at least one walled cell.
//
// Time: four neighbour probes, each an O(1) vein lookup in a row-major
// table. Backtracking pops each pillar at most once per vein, and starting
// a vein clears the previous one in O(vein length).
func (gen *Generator) Step() generator.StepResult {
	if gen.state == generator.Done {
		return generator.Finished
	}
	gen.state = generator.Running

	for {
		if !gen.active {
			if !gen.nextSeed() {
				gen.finish()
				return generator.Finished
			}
		}

		dirs := gen.open(gen.cur)
		if len(dirs) == 0 {
			if len(gen.stack) == 0 {
				panic(fmt.Errorf("%w: vein at (%d,%d) sealed without reaching a wall",
					grid.ErrInvariant, gen.cur.X, gen.cur.Y))
			}
			gen.cur = gen.stack[len(gen.stack)-1]
			gen.stack = gen.stack[:len(gen.stack)-1]
			continue
		}

		d := dirs[gen.rng.Intn(len(dirs))]
		far := gen.cur.Add(d.Scale(2))
		advancing := gen.canvas.Get(far) == grid.Floor

		gen.build(gen.cur)
		gen.build(gen.cur.Add(d))
		gen.build(far)
		if advancing {
			gen.cur = far
		} else {
			gen.active = false
		}
		return generator.Continue
	}
}

// nextSeed starts a vein at the next pillar that is still Floor.
func (gen *Generator) nextSeed() bool {
	for gen.next < len(gen.seeds) {
		s := gen.seeds[gen.next]
		gen.next++
		if gen.canvas.Get(s) == grid.Wall {
			continue
		}
		for _, i := range gen.walled {
			gen.inVein[i] = false
		}
		gen.walled = gen.walled[:0]
		gen.stack = gen.stack[:0]
		gen.cur = s
		gen.active = true
		return true
	}
	return false
}

// open lists the directions whose adjacent cell is Floor and whose next
// pillar is not part of the current vein.
// Membership covers every cell the vein has walled, including pillars
// already popped by backtracking, not only the live stack. A vein that
// reached back to a popped pillar would close a loop of its own wall and
// seal the floor inside it.
func (gen *Generator) open(p grid.Point) []grid.Point {
	g := gen.canvas.Grid()
	dirs := make([]grid.Point, 0, 4)
	for _, d := range grid.Directions {
		far := p.Add(d.Scale(2))
		if !g.InBounds(far.X, far.Y) {
			continue
		}
		if gen.canvas.Get(p.Add(d)) == grid.Floor && !gen.inVein[g.Index(far.X, far.Y)] {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// build walls p and records it in the vein; pillars are pushed for
// backtracking.
func (gen *Generator) build(p grid.Point) {
	g := gen.canvas.Grid()
	gen.canvas.Set(p, grid.Wall)
	if idx := g.Index(p.X, p.Y); !gen.inVein[idx] {
		gen.inVein[idx] = true
		gen.walled = append(gen.walled, idx)
	}
	if p.X%2 == 0 && p.Y%2 == 0 {
		gen.stack = append(gen.stack, p)
	}
}

func (gen *Generator) finish() {
	g := gen.canvas.Grid()
	w, h := g.Size()
	gen.canvas.Set(grid.Point{X: 1, Y: 1}, grid.Start)
	gen.canvas.Set(grid.Point{X: w - 2, Y: h - 2}, grid.Goal)

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
