package defeatstick

import (
	"math/rand"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

// Stick directions, indexed by the random draw. The first three are
// available on every row, Up only on the first pillar row.
var sticks = [4]grid.Point{grid.Right, grid.Down, grid.Left, grid.Up}

// firstRow is the y coordinate of the first pillar row.
const firstRow = 2

// Generator is the stick-and-wall state machine.
type Generator struct {
	canvas *generator.Canvas
	rng    *rand.Rand

	pillars []grid.Point // row-major
	next    int          // position in pillars
	placed  bool         // pillars[next] stands, its stick does not

	state generator.State
	maze  *grid.Maze
}

var _ generator.Generator = (*Generator)(nil)

// New allocates the bordered field and lists pillar positions row-major.
// Complexity: O(W×H).
func New(opts ...generator.Option) *Generator {
	o := generator.NewOptions(opts...)
	g := grid.NewNormalized(o.Width, o.Height, grid.Floor)
	g.FillBorder(grid.Wall)
	w, h := g.Size()

	var pillars []grid.Point
	for y := firstRow; y < h-1; y += 2 {
		for x := 2; x < w-1; x += 2 {
			pillars = append(pillars, grid.Point{X: x, Y: y})
		}
	}
	return &Generator{
		canvas:  generator.NewCanvas(g, o.OnChange),
		rng:     o.Rand,
		pillars: pillars,
	}
}

// Step alternates between standing the next pillar and knocking its stick
// over.
//
// Time: O(1) for a pillar; a stick retries its draw until the target is
// not Wall, expected O(1) since Right and Down are always free.
func (gen *Generator) Step() generator.StepResult {
	if gen.state == generator.Done {
		return generator.Finished
	}
	gen.state = generator.Running

	if gen.next >= len(gen.pillars) {
		gen.finish()
		return generator.Finished
	}

	p := gen.pillars[gen.next]
	if !gen.placed {
		gen.canvas.Set(p, grid.Wall)
		gen.placed = true
		return generator.Continue
	}

	choices := 3
	if p.Y == firstRow {
		choices = 4
	}
	for {
		// Right and Down are never walled yet when their pillar is
		// processed, so this terminates.
		t := p.Add(sticks[gen.rng.Intn(choices)])
		if gen.canvas.Get(t) != grid.Wall {
			gen.canvas.Set(t, grid.Wall)
			break
		}
	}
	gen.placed = false
	gen.next++
	return generator.Continue
}

// Pillars returns the number of pillar positions.
func (gen *Generator) Pillars() int { return len(gen.pillars) }

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
