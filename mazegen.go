package mazegen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazegen/clustering"
	"github.com/katalvlaran/mazegen/defeatstick"
	"github.com/katalvlaran/mazegen/dig"
	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/wallextend"
)

// ErrUnknownMethod indicates a method name no generator answers to.
var ErrUnknownMethod = errors.New("mazegen: unknown generation method")

// Method names a generation algorithm.
type Method string

const (
	// Clustering selects randomized Kruskal over a region lattice.
	Clustering Method = "clustering"
	// Dig selects backtracking passage carving.
	Dig Method = "dig"
	// WallExtend selects wall growth from shuffled pillars.
	WallExtend Method = "wallextend"
	// DefeatStick selects pillar and stick placement.
	DefeatStick Method = "defeatstick"
)

// Methods returns every supported method in a stable order.
func Methods() []Method {
	return []Method{Clustering, Dig, WallExtend, DefeatStick}
}

// ParseMethod matches s case-insensitively against the supported methods.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// New returns a fresh generator for method. Returns ErrUnknownMethod for
// an unsupported method.
func New(method Method, opts ...generator.Option) (generator.Generator, error) {
	switch method {
	case Clustering:
		return clustering.New(opts...), nil
	case Dig:
		return dig.New(opts...), nil
	case WallExtend:
		return wallextend.New(opts...), nil
	case DefeatStick:
		return defeatstick.New(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(method))
	}
}

// Generate runs method to completion and returns the finished maze.
// Cancelling ctx abandons the run between steps and returns ctx.Err().
func Generate(ctx context.Context, method Method, opts ...generator.Option) (*grid.Maze, error) {
	g, err := New(method, opts...)
	if err != nil {
		return nil, err
	}
	return generator.Run(ctx, g)
}
