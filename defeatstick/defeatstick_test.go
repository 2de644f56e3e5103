package defeatstick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/defeatstick"
	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

func run(t *testing.T, g *defeatstick.Generator) (*grid.Maze, int) {
	t.Helper()
	steps := 0
	for g.Step() == generator.Continue {
		steps++
	}
	m, err := g.Maze()
	require.NoError(t, err)
	return m, steps
}

// TestProperties covers the finished-maze invariants over sizes and seeds.
func TestProperties(t *testing.T) {
	sizes := [][2]int{{5, 5}, {7, 7}, {9, 5}, {5, 11}, {21, 21}, {40, 12}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g := defeatstick.New(generator.WithSize(sz[0], sz[1]), generator.WithSeed(seed))
			m, steps := run(t, g)
			assert.Equal(t, 2*g.Pillars(), steps)

			cells := m.Grid()
			require.NoError(t, grid.Validate(cells), "size %v seed %d", sz, seed)

			w, h := m.Size()
			assert.Equal(t, grid.Start, m.CellAt(1, 1))
			assert.Equal(t, grid.Goal, m.CellAt(w-2, h-2))
			// one stick per pillar: border + pillars + sticks
			border := 2*w + 2*h - 4
			assert.Equal(t, border+2*g.Pillars(), cells.Count(grid.Wall))
		}
	}
}

// TestPillarThenStick checks the two-step rhythm on the first pillar.
func TestPillarThenStick(t *testing.T) {
	var rec generator.Recorder
	g := defeatstick.New(generator.WithSize(7, 7), generator.WithSeed(2), generator.WithOnChange(rec.Record))

	require.Equal(t, generator.Continue, g.Step())
	require.Len(t, rec.Events, 1)
	assert.Equal(t, generator.Event{X: 2, Y: 2, From: grid.Floor, To: grid.Wall}, rec.Events[0])

	require.Equal(t, generator.Continue, g.Step())
	require.Len(t, rec.Events, 2)
	stick := rec.Events[1]
	assert.Equal(t, 1, abs(stick.X-2)+abs(stick.Y-2))
	assert.Equal(t, grid.Wall, stick.To)
}

// TestNoUpAfterFirstRow checks sticks below the first row never lean up.
func TestNoUpAfterFirstRow(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		var rec generator.Recorder
		g := defeatstick.New(generator.WithSize(11, 11), generator.WithSeed(seed), generator.WithOnChange(rec.Record))
		run(t, g)
		// events alternate pillar, stick; the last two are Start and Goal
		for i := 0; i+1 < len(rec.Events)-2; i += 2 {
			p, s := rec.Events[i], rec.Events[i+1]
			if p.Y > 2 {
				assert.False(t, s.X == p.X && s.Y == p.Y-1, "seed %d: stick up from (%d,%d)", seed, p.X, p.Y)
			}
		}
	}
}

// TestMinimumSize checks a 2×2 request becomes 5×5.
func TestMinimumSize(t *testing.T) {
	m, _ := run(t, defeatstick.New(generator.WithSize(2, 2), generator.WithSeed(1)))
	w, h := m.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 5, h)
}

// TestDeterministic checks equal seeds give identical grids.
func TestDeterministic(t *testing.T) {
	a, _ := run(t, defeatstick.New(generator.WithSize(19, 13), generator.WithSeed(5)))
	b, _ := run(t, defeatstick.New(generator.WithSize(19, 13), generator.WithSeed(5)))
	assert.True(t, a.Equal(b))
}

// TestEventsReplay checks the event stream rebuilds the final grid.
func TestEventsReplay(t *testing.T) {
	var rec generator.Recorder
	g := defeatstick.New(generator.WithSize(13, 9), generator.WithSeed(6), generator.WithOnChange(rec.Record))
	initial := g.Snapshot()
	m, _ := run(t, g)
	rec.Replay(initial)
	assert.True(t, initial.Equal(m.Grid()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
