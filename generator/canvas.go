package generator

import "github.com/katalvlaran/mazegen/grid"

// Canvas wraps a working grid and reports every effective change to a hook.
// Generators write through it so the event stream always matches the grid.
type Canvas struct {
	g        *grid.Grid
	onChange func(Event)
	edits    int
}

// NewCanvas wraps g. A nil hook is replaced by a no-op.
func NewCanvas(g *grid.Grid, onChange func(Event)) *Canvas {
	if onChange == nil {
		onChange = func(Event) {}
	}
	return &Canvas{g: g, onChange: onChange}
}

// Grid returns the wrapped grid. Writes made directly on it bypass the hook.
func (c *Canvas) Grid() *grid.Grid { return c.g }

// Get reads a cell (edge-clamped).
func (c *Canvas) Get(p grid.Point) grid.CellType { return c.g.At(p) }

// Set writes t at p. It reports whether the cell changed; an unchanged or
// out-of-range write emits nothing.
func (c *Canvas) Set(p grid.Point, t grid.CellType) bool {
	if !c.g.InBounds(p.X, p.Y) {
		return false
	}
	from := c.g.At(p)
	if from == t {
		return false
	}
	c.g.Set(p.X, p.Y, t)
	c.edits++
	c.onChange(Event{X: p.X, Y: p.Y, From: from, To: t})
	return true
}

// Edits returns the number of changes emitted so far.
func (c *Canvas) Edits() int { return c.edits }

// Recorder collects events, e.g. for replay after a run.
type Recorder struct {
	Events []Event
}

// Record appends e. Pass it to WithOnChange.
func (r *Recorder) Record(e Event) {
	r.Events = append(r.Events, e)
}

// Replay applies the recorded events to g in order.
func (r *Recorder) Replay(g *grid.Grid) {
	for _, e := range r.Events {
		g.Set(e.X, e.Y, e.To)
	}
}
