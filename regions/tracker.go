package regions

import "fmt"

// FirstID is the id given to lattice point 0.
const FirstID = 4

// Tracker stores one region id per lattice point.
type Tracker struct {
	width, height int
	ids           []int
	regions       int
}

// NewTracker builds a width×height lattice with every point in its own
// region. Non-positive dimensions are raised to 1.
// Complexity: O(W×H).
func NewTracker(width, height int) *Tracker {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	ids := make([]int, width*height)
	for i := range ids {
		ids[i] = i + FirstID
	}
	return &Tracker{width: width, height: height, ids: ids, regions: len(ids)}
}

// Len returns the number of lattice points.
func (t *Tracker) Len() int { return len(t.ids) }

// Size returns the lattice dimensions.
func (t *Tracker) Size() (int, int) { return t.width, t.height }

// Index maps lattice coordinates to a lattice index.
func (t *Tracker) Index(x, y int) int { return x + y*t.width }

// Coordinate converts a lattice index back to lattice coordinates.
func (t *Tracker) Coordinate(i int) (x, y int) { return i % t.width, i / t.width }

// Count returns the number of distinct regions.
func (t *Tracker) Count() int { return t.regions }

// RegionOf returns the id currently held by lattice point i.
// It panics if i is out of range.
func (t *Tracker) RegionOf(i int) int {
	t.check(i)
	return t.ids[i]
}

// Same reports whether lattice points a and b share a region.
func (t *Tracker) Same(a, b int) bool {
	return t.RegionOf(a) == t.RegionOf(b)
}

// Merge joins the regions of a and b. The larger id is retired and every
// point holding it is rewritten to the smaller id. It returns the kept and
// retired ids; ok is false, and nothing changes, when a and b already share
// a region.
func (t *Tracker) Merge(a, b int) (kept, retired int, ok bool) {
	src, dst := t.RegionOf(a), t.RegionOf(b)
	if src == dst {
		return src, dst, false
	}
	if src > dst {
		src, dst = dst, src
	}
	for i, id := range t.ids {
		if id == dst {
			t.ids[i] = src
		}
	}
	t.regions--
	return src, dst, true
}

// Members returns the lattice indices holding id, in ascending order.
func (t *Tracker) Members(id int) []int {
	var out []int
	for i, v := range t.ids {
		if v == id {
			out = append(out, i)
		}
	}
	return out
}

func (t *Tracker) check(i int) {
	if i < 0 || i >= len(t.ids) {
		panic(fmt.Sprintf("regions: lattice index %d out of range [0,%d)", i, len(t.ids)))
	}
}
