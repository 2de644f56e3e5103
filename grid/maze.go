package grid

import "strings"

// Glyphs used by Maze.String.
const (
	glyphWall  = '█'
	glyphFloor = ' '
	glyphStart = 'S'
	glyphGoal  = 'G'
	glyphOther = '?'
)

// Maze is the immutable result of a finished generation run.
// All read methods are safe for concurrent use.
type Maze struct {
	g     *Grid
	start Point
	goal  Point
}

// NewMaze deep-copies g into a Maze. The Start and Goal positions are taken
// from the first matching cells; a grid without them reports (-1,-1).
// Callers normally validate g first (see Validate).
func NewMaze(g *Grid) *Maze {
	m := &Maze{g: g.Clone(), start: Point{-1, -1}, goal: Point{-1, -1}}
	if s := g.Find(Start); len(s) > 0 {
		m.start = s[0]
	}
	if gl := g.Find(Goal); len(gl) > 0 {
		m.goal = gl[0]
	}
	return m
}

// Size returns (width, height).
func (m *Maze) Size() (int, int) { return m.g.Size() }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.g.Width() }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.g.Height() }

// CellAt returns the cell at (x,y), clamping out-of-range coordinates to
// the nearest edge.
func (m *Maze) CellAt(x, y int) CellType { return m.g.Get(x, y) }

// Start returns the entrance position.
func (m *Maze) Start() Point { return m.start }

// Goal returns the exit position.
func (m *Maze) Goal() Point { return m.goal }

// Grid returns a mutable copy of the maze cells.
func (m *Maze) Grid() *Grid { return m.g.Clone() }

// Equal reports whether both mazes hold identical cells.
func (m *Maze) Equal(o *Maze) bool {
	if o == nil {
		return false
	}
	return m.g.Equal(o.g)
}

// Interior returns the maze with its outermost ring removed, the shape a
// renderer that draws its own boundary expects. Only a ring made entirely of
// Wall is removed: a maze whose edge holds passages or markers (clustering
// output) is returned unchanged, as is one of width or height below 3.
// Complexity: O(W×H).
func (m *Maze) Interior() *Maze {
	w, h := m.g.Size()
	if w < 3 || h < 3 || !m.g.BorderIs(Wall) {
		return m
	}
	in := New(w-2, h-2, Floor)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			in.Set(x-1, y-1, m.g.Get(x, y))
		}
	}
	return NewMaze(in)
}

// String renders the maze one text line per row.
func (m *Maze) String() string {
	w, h := m.g.Size()
	var sb strings.Builder
	sb.Grow((w + 1) * h * 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteRune(Glyph(m.g.Get(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Glyph returns the rune Maze.String uses for a cell type.
func Glyph(c CellType) rune {
	switch c {
	case Wall, PendingWall:
		return glyphWall
	case Floor, Region:
		return glyphFloor
	case Start:
		return glyphStart
	case Goal:
		return glyphGoal
	default:
		return glyphOther
	}
}
