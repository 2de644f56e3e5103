package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromRows builds a grid from text rows: '#' wall, '.' floor, 'S' start,
// 'G' goal, 'p' pending wall, 'r' region anchor.
func fromRows(rows ...string) *Grid {
	g := New(len(rows[0]), len(rows), Floor)
	for y, row := range rows {
		for x, r := range row {
			switch r {
			case '#':
				g.Set(x, y, Wall)
			case 'S':
				g.Set(x, y, Start)
			case 'G':
				g.Set(x, y, Goal)
			case 'p':
				g.Set(x, y, PendingWall)
			case 'r':
				g.Set(x, y, Region)
			}
		}
	}
	return g
}

// TestComponents_TwoIslands checks passable regions split by a wall column.
//
//	. . # .
//	. # # .
//	. # . .
func TestComponents_TwoIslands(t *testing.T) {
	g := fromRows(
		"..#.",
		".##.",
		".#..",
	)
	comps := Components(g)
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 4)
	assert.Len(t, comps[1], 4)
}

// TestReachable_NonPassableStart yields nothing.
func TestReachable_NonPassableStart(t *testing.T) {
	g := fromRows("#.", "..")
	seen := Reachable(g, Point{0, 0})
	for _, s := range seen {
		assert.False(t, s)
	}
	seen = Reachable(g, Point{5, 5})
	assert.Len(t, seen, 4)
}

// TestAnalyze_Perfect covers a 5×5 perfect maze.
//
//	# # # # #
//	# S . . #
//	# # # . #
//	# G . . #
//	# # # # #
func TestAnalyze_Perfect(t *testing.T) {
	g := fromRows(
		"#####",
		"#S..#",
		"###.#",
		"#G..#",
		"#####",
	)
	s := Analyze(g)
	assert.Equal(t, 7, s.Passable)
	assert.Equal(t, 18, s.Walls)
	assert.Equal(t, 6, s.Edges)
	assert.Equal(t, 1, s.Components)
	assert.Equal(t, 2, s.DeadEnds)
	assert.True(t, s.Perfect())
	assert.True(t, IsPerfect(g))
	assert.NoError(t, Validate(g))
}

// TestAnalyze_Loop detects a cycle.
func TestAnalyze_Loop(t *testing.T) {
	g := fromRows(
		"#####",
		"#S..#",
		"#.#.#",
		"#..G#",
		"#####",
	)
	assert.False(t, IsPerfect(g))
	assert.NoError(t, Validate(g))
}

// TestValidate_Violations checks each sentinel error.
func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoStart", []string{"#####", "#...#", "#..G#", "#####"}, ErrStartCount},
		{"TwoStarts", []string{"#####", "#S.S#", "#..G#", "#####"}, ErrStartCount},
		{"NoGoal", []string{"#####", "#S..#", "#...#", "#####"}, ErrGoalCount},
		{"TwoGoals", []string{"#####", "#S.G#", "#..G#", "#####"}, ErrGoalCount},
		{"Pending", []string{"#####", "#Sp.#", "#..G#", "#####"}, ErrTransientCell},
		{"Region", []string{"#####", "#S.r#", "#..G#", "#####"}, ErrTransientCell},
		{"Pocket", []string{"######", "#S.#.#", "#.G###", "######"}, ErrUnreachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(fromRows(tc.rows...))
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

// TestMustValidate_Panics wraps ErrInvariant.
func TestMustValidate_Panics(t *testing.T) {
	g := fromRows("#####", "#...#", "#####")
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrInvariant)
		assert.ErrorIs(t, err, ErrStartCount)
	}()
	MustValidate(g)
}
