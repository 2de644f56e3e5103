package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazegen/grid"
)

// Sentinel errors for generator execution.
var (
	// ErrNotDone is returned when a maze is requested before generation finished.
	ErrNotDone = errors.New("generator: maze requested before generation finished")

	// ErrNilGenerator is returned by Run for a nil generator.
	ErrNilGenerator = errors.New("generator: generator is nil")
)

// Default grid size used when WithSize is not supplied.
const (
	DefaultWidth  = 21
	DefaultHeight = 21
)

// State is the lifecycle phase of a generator.
type State int

const (
	// Init means no edit has been made yet.
	Init State = iota
	// Running means generation is in progress.
	Running
	// Done means the maze is finished and validated.
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// StepResult tells the driver whether to call Step again.
type StepResult int

const (
	// Continue means more steps remain.
	Continue StepResult = iota
	// Finished means the maze is complete; further Step calls are no-ops.
	Finished
)

// String returns the result name.
func (r StepResult) String() string {
	if r == Finished {
		return "finished"
	}
	return "continue"
}

// Event describes one cell change, in generation order.
type Event struct {
	X, Y     int
	From, To grid.CellType
}

// Generator is implemented by every maze algorithm.
type Generator interface {
	// Step performs the next edit batch.
	Step() StepResult
	// State reports the lifecycle phase.
	State() State
	// Snapshot returns a copy of the working grid.
	Snapshot() *grid.Grid
	// Maze returns the finished maze, or ErrNotDone.
	Maze() (*grid.Maze, error)
}

// Option configures a generator via functional arguments.
type Option func(*Options)

// Options holds the parameters shared by all generators.
type Options struct {
	// Width and Height are the requested size, normalized by the generator.
	Width, Height int

	// Seed feeds rand.NewSource. 0 seeds from the clock.
	Seed int64

	// Rand, when set, is used instead of a source built from Seed.
	Rand *rand.Rand

	// OnChange is called once per cell change. It must not block: the
	// generator calls it synchronously from Step.
	OnChange func(Event)
}

// DefaultOptions returns Options with sane defaults:
//   - DefaultWidth × DefaultHeight
//   - clock seed
//   - no-op OnChange.
func DefaultOptions() Options {
	return Options{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Seed:     0,
		OnChange: func(Event) {},
	}
}

// NewOptions applies opts over DefaultOptions and resolves Rand.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Rand == nil {
		seed := o.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
	return o
}

// WithSize sets the requested grid size. Even or too small values are
// corrected by grid.NormalizeSize, never rejected.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithSeed makes the run reproducible. 0 keeps the clock seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies a caller-owned random source; it overrides WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnChange registers a hook for cell-change events.
func WithOnChange(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnChange = fn
		}
	}
}

// Run calls g.Step until the maze is finished and returns it. The context
// is checked between steps; on cancellation the partial grid is discarded
// and ctx.Err() is returned.
func Run(ctx context.Context, g Generator) (*grid.Maze, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.Step() == Finished {
			return g.Maze()
		}
	}
}
