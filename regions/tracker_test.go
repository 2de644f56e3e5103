package regions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/regions"
)

// TestNewTracker_Singletons checks every point starts alone.
func TestNewTracker_Singletons(t *testing.T) {
	tr := regions.NewTracker(3, 2)
	require.Equal(t, 6, tr.Len())
	assert.Equal(t, 6, tr.Count())
	for i := 0; i < tr.Len(); i++ {
		assert.Equal(t, i+regions.FirstID, tr.RegionOf(i))
	}
	assert.False(t, tr.Same(0, 1))
}

// TestMerge_SmallerIDSurvives checks the value tie-break in both argument orders.
func TestMerge_SmallerIDSurvives(t *testing.T) {
	tr := regions.NewTracker(3, 1)

	kept, retired, ok := tr.Merge(2, 1)
	require.True(t, ok)
	assert.Equal(t, 1+regions.FirstID, kept)
	assert.Equal(t, 2+regions.FirstID, retired)
	assert.Equal(t, 1+regions.FirstID, tr.RegionOf(2))

	kept, retired, ok = tr.Merge(0, 2)
	require.True(t, ok)
	assert.Equal(t, regions.FirstID, kept)
	assert.Equal(t, 1+regions.FirstID, retired)
	for i := 0; i < 3; i++ {
		assert.Equal(t, regions.FirstID, tr.RegionOf(i))
	}
	assert.Equal(t, 1, tr.Count())
}

// TestMerge_RewritesWholeRegion checks the full value scan.
func TestMerge_RewritesWholeRegion(t *testing.T) {
	tr := regions.NewTracker(2, 2)
	tr.Merge(3, 2) // {2,3} -> id of 2
	tr.Merge(1, 0) // {0,1} -> id of 0
	assert.Equal(t, []int{2, 3}, tr.Members(2+regions.FirstID))

	_, _, ok := tr.Merge(3, 1)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, tr.Members(regions.FirstID))
	assert.Empty(t, tr.Members(2+regions.FirstID))
}

// TestMerge_SameRegionNoop leaves the tracker untouched.
func TestMerge_SameRegionNoop(t *testing.T) {
	tr := regions.NewTracker(2, 1)
	_, _, ok := tr.Merge(0, 0)
	assert.False(t, ok)
	tr.Merge(0, 1)
	_, _, ok = tr.Merge(1, 0)
	assert.False(t, ok)
	assert.Equal(t, 1, tr.Count())
}

// TestRegionOf_OutOfRangePanics treats a bad index as a logic defect.
func TestRegionOf_OutOfRangePanics(t *testing.T) {
	tr := regions.NewTracker(2, 2)
	assert.Panics(t, func() { tr.RegionOf(4) })
	assert.Panics(t, func() { tr.RegionOf(-1) })
}

// TestIndexCoordinate covers lattice addressing.
func TestIndexCoordinate(t *testing.T) {
	tr := regions.NewTracker(3, 3)
	assert.Equal(t, 5, tr.Index(2, 1))
	x, y := tr.Coordinate(7)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
	w, h := tr.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, h)
}
