package grid

// Grid is a rectangular, row-major cell grid. Its size is fixed at
// construction. The zero value is not usable; build one with New or
// NewNormalized.
type Grid struct {
	width, height int
	cells         []CellType
}

// NormalizeSize forces both dimensions odd (even values are decremented by
// one) and then clamps each to MinSize.
// Complexity: O(1).
func NormalizeSize(width, height int) (int, int) {
	return normalizeSide(width), normalizeSide(height)
}

func normalizeSide(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < MinSize {
		n = MinSize
	}
	return n
}

// New allocates a width×height grid with every cell set to fill.
// Non-positive dimensions are raised to 1.
// Complexity: O(W×H) time and memory.
func New(width, height int, fill CellType) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([]CellType, width*height)
	if fill != Floor {
		for i := range cells {
			cells[i] = fill
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

// NewNormalized is New applied to NormalizeSize(width, height).
func NewNormalized(width, height int, fill CellType) *Grid {
	w, h := NormalizeSize(width, height)
	return New(w, h, fill)
}

// Size returns the grid dimensions.
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to the row-major index x + y*Width.
// The coordinates are not checked.
func (g *Grid) Index(x, y int) int {
	return x + y*g.width
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Get returns the cell at (x,y). Out-of-range coordinates are clamped to
// the nearest edge.
func (g *Grid) Get(x, y int) CellType {
	x = clamp(x, 0, g.width-1)
	y = clamp(y, 0, g.height-1)
	return g.cells[g.Index(x, y)]
}

// At is Get for a Point.
func (g *Grid) At(p Point) CellType {
	return g.Get(p.X, p.Y)
}

// GetIndex returns the cell at a row-major index.
// It panics if idx is out of range.
func (g *Grid) GetIndex(idx int) CellType {
	return g.cells[idx]
}

// Set writes t at (x,y) and reports whether the write happened.
// Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, t CellType) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.Index(x, y)] = t
	return true
}

// FillBorder sets every cell of the outermost ring to t.
func (g *Grid) FillBorder(t CellType) {
	for x := 0; x < g.width; x++ {
		g.cells[g.Index(x, 0)] = t
		g.cells[g.Index(x, g.height-1)] = t
	}
	for y := 0; y < g.height; y++ {
		g.cells[g.Index(0, y)] = t
		g.cells[g.Index(g.width-1, y)] = t
	}
}

// OnBorder reports whether (x,y) lies on the outermost ring.
func (g *Grid) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// BorderIs reports whether every cell of the outermost ring holds t.
// Complexity: O(W+H).
func (g *Grid) BorderIs(t CellType) bool {
	for x := 0; x < g.width; x++ {
		if g.cells[g.Index(x, 0)] != t || g.cells[g.Index(x, g.height-1)] != t {
			return false
		}
	}
	for y := 0; y < g.height; y++ {
		if g.cells[g.Index(0, y)] != t || g.cells[g.Index(g.width-1, y)] != t {
			return false
		}
	}
	return true
}

// Count returns how many cells hold t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Find returns the coordinates of every cell holding t, in row-major order.
func (g *Grid) Find(t CellType) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == t {
			x, y := g.Coordinate(i)
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]CellType, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
