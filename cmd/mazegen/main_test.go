package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen"
	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

func TestRunPrintsMaze(t *testing.T) {
	for _, m := range mazegen.Methods() {
		t.Run(string(m), func(t *testing.T) {
			var out bytes.Buffer
			cfg := config{method: m, width: 11, height: 9, seed: 5}
			require.NoError(t, run(context.Background(), cfg, &out))

			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			require.Len(t, lines, 9)
			for _, l := range lines {
				assert.Equal(t, 11, len([]rune(l)))
			}
			assert.Equal(t, 1, strings.Count(out.String(), "S"))
			assert.Equal(t, 1, strings.Count(out.String(), "G"))
		})
	}
}

func TestRunInteriorAndStats(t *testing.T) {
	var out bytes.Buffer
	cfg := config{method: mazegen.WallExtend, width: 9, height: 9, seed: 3, interior: true, stats: true}
	require.NoError(t, run(context.Background(), cfg, &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 8, "7 maze rows plus the stats line")
	assert.Equal(t, 7, len([]rune(lines[0])))
	assert.True(t, strings.HasPrefix(lines[7], "passable="))
}

func TestRunInteriorKeepsEveryMethodValid(t *testing.T) {
	for _, m := range mazegen.Methods() {
		t.Run(string(m), func(t *testing.T) {
			var out bytes.Buffer
			cfg := config{method: m, width: 9, height: 9, seed: 3, interior: true}
			require.NoError(t, run(context.Background(), cfg, &out))
			assert.Equal(t, 1, strings.Count(out.String(), "S"))
			assert.Equal(t, 1, strings.Count(out.String(), "G"))

			maze, err := mazegen.Generate(context.Background(), m,
				generator.WithSize(9, 9), generator.WithSeed(3))
			require.NoError(t, err)
			in := maze.Interior()
			assert.NoError(t, grid.Validate(in.Grid()))
			assert.Equal(t, in.String(), out.String())
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := run(ctx, config{method: mazegen.Dig, width: 21, height: 21, seed: 1}, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}

func TestMethodList(t *testing.T) {
	assert.Equal(t, "clustering, dig, wallextend, defeatstick", methodList())
}
