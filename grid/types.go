package grid

// MinSize is the smallest width or height a normalized grid may have.
const MinSize = 5

// CellType tags a single grid position.
type CellType uint8

const (
	// Floor is an open, walkable cell.
	Floor CellType = iota
	// Wall blocks movement.
	Wall
	// Start is the single entrance of a finished maze.
	Start
	// Goal is the single exit of a finished maze.
	Goal
	// PendingWall is a removable wall that has not been decided yet (clustering only).
	PendingWall
	// Region marks a region anchor whose id lives in a regions.Tracker (clustering only).
	Region
)

// String returns a lower-case name for the cell type.
func (c CellType) String() string {
	switch c {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case PendingWall:
		return "pending-wall"
	case Region:
		return "region"
	default:
		return "unknown"
	}
}

// Passable reports whether a walker may stand on the cell.
func (c CellType) Passable() bool {
	return c == Floor || c == Start || c == Goal
}

// Transient reports whether the cell type may only exist during generation.
func (c CellType) Transient() bool {
	return c == PendingWall || c == Region
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Scale returns p with both components multiplied by n.
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Unit offsets of the four orthogonal neighbours.
var (
	Up    = Point{X: 0, Y: -1}
	Right = Point{X: 1, Y: 0}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
)

// Directions lists the orthogonal offsets in a fixed order: Up, Right, Down, Left.
// Generators index into it with random draws, so the order is part of their
// reproducibility under a fixed seed.
var Directions = [4]Point{Up, Right, Down, Left}
