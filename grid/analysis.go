package grid

import "fmt"

// Stats summarizes the topology of a grid's passable cells.
type Stats struct {
	Passable   int // Floor, Start and Goal cells
	Walls      int // Wall and PendingWall cells
	Edges      int // orthogonally adjacent passable pairs
	Components int // 4-connected passable regions
	DeadEnds   int // passable cells with exactly one passable neighbour
}

// Perfect reports whether the passable cells form a spanning tree:
// a single component with exactly Passable-1 edges.
func (s Stats) Perfect() bool {
	return s.Components == 1 && s.Edges == s.Passable-1
}

// Components finds every 4-connected region of passable cells.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Components(g *Grid) [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int

	for i := 0; i < g.Len(); i++ {
		if seen[i] || !g.cells[i].Passable() {
			continue
		}
		comps = append(comps, flood(g, i, seen))
	}
	return comps
}

// Reachable marks every passable cell reachable from `from` through
// 4-connected passable steps. The result is indexed row-major. A
// non-passable or out-of-range start yields an all-false slice.
//
// Time: O(W·H), Memory: O(W·H).
func Reachable(g *Grid, from Point) []bool {
	seen := make([]bool, g.Len())
	if !g.InBounds(from.X, from.Y) || !g.At(from).Passable() {
		return seen
	}
	flood(g, g.Index(from.X, from.Y), seen)
	return seen
}

// flood runs a BFS from index i0 over passable cells, marking seen and
// returning the visited indices.
func flood(g *Grid, i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.Coordinate(queue[qi])
		for _, d := range Directions {
			vx, vy := ux+d.X, uy+d.Y
			if !g.InBounds(vx, vy) {
				continue
			}
			vi := g.Index(vx, vy)
			if seen[vi] || !g.cells[vi].Passable() {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return queue
}

// PassableEdges counts orthogonally adjacent pairs of passable cells.
// Complexity: O(W·H).
func PassableEdges(g *Grid) int {
	edges := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Get(x, y).Passable() {
				continue
			}
			// count right and down only so each pair is seen once
			if x+1 < g.width && g.Get(x+1, y).Passable() {
				edges++
			}
			if y+1 < g.height && g.Get(x, y+1).Passable() {
				edges++
			}
		}
	}
	return edges
}

// Analyze computes Stats for g.
// Complexity: O(W·H).
func Analyze(g *Grid) Stats {
	var s Stats
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.Get(x, y)
			if c == Wall || c == PendingWall {
				s.Walls++
			}
			if !c.Passable() {
				continue
			}
			s.Passable++
			if passableNeighbours(g, x, y) == 1 {
				s.DeadEnds++
			}
		}
	}
	s.Edges = PassableEdges(g)
	s.Components = len(Components(g))
	return s
}

// IsPerfect reports whether g is a perfect maze: every passable cell is
// reachable and there is exactly one path between any two of them.
func IsPerfect(g *Grid) bool {
	return Analyze(g).Perfect()
}

func passableNeighbours(g *Grid, x, y int) int {
	n := 0
	for _, d := range Directions {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) && g.Get(nx, ny).Passable() {
			n++
		}
	}
	return n
}

// Validate checks the finished-maze invariants: exactly one Start, exactly
// one Goal, no transient cells, and every passable cell reachable from
// Start. The first violation found is returned.
//
// Time: O(W·H), Memory: O(W·H).
func Validate(g *Grid) error {
	starts := g.Find(Start)
	if len(starts) != 1 {
		return fmt.Errorf("%w: found %d", ErrStartCount, len(starts))
	}
	if n := g.Count(Goal); n != 1 {
		return fmt.Errorf("%w: found %d", ErrGoalCount, n)
	}
	for i, c := range g.cells {
		if c.Transient() {
			x, y := g.Coordinate(i)
			return fmt.Errorf("%w: %s at (%d,%d)", ErrTransientCell, c, x, y)
		}
	}
	seen := Reachable(g, starts[0])
	for i, c := range g.cells {
		if c.Passable() && !seen[i] {
			x, y := g.Coordinate(i)
			return fmt.Errorf("%w: (%d,%d)", ErrUnreachable, x, y)
		}
	}
	return nil
}

// MustValidate panics with an error wrapping ErrInvariant if Validate fails.
// Generators call it before publishing a maze; a failure is a logic defect.
func MustValidate(g *Grid) {
	if err := Validate(g); err != nil {
		panic(fmt.Errorf("%w: %w", ErrInvariant, err))
	}
}
