// Package clustering generates a perfect maze with randomized Kruskal:
// every even/even cell is a region anchor, every cell between two anchors
// is a removable wall, and walls are removed in shuffled order whenever
// they separate two different regions.
//
// Layout of a 5×5 grid (r = anchor, p = removable wall, # = permanent):
//
//	r p r p r
//	p # p # p
//	r p r p r
//	p # p # p
//	r p r p r
//
// Walls are numbered row by row. Wall row r holds lw-1 horizontal walls
// (between anchors (i,r) and (i+1,r)) followed by lw vertical walls
// (between (j,r) and (j,r+1)), where lw is the number of anchor columns.
// The last row has horizontal walls only.
//
// A wall joining two anchors of the same region is skipped, so no cycle is
// ever opened; since the shuffled order tries every wall once, the lattice
// ends as a single region with exactly regions-1 walls removed.
//
// The grid has no outer border: Start is placed at (0,0) and Goal at
// (W-1,H-1).
//
// Complexity: O(N²) for N anchors (value-scan merges), Memory: O(W×H).
package clustering
