// Package regions tracks which lattice points of a maze belong to the same
// still-separate region while the clustering generator removes walls.
//
// Every lattice point starts in its own singleton region whose id is
// index + FirstID. Merge rewrites ids by value: the larger of the two ids
// is retired and every point holding it takes the smaller id. That makes
// the surviving id a function of the ids currently in use, not of region
// sizes, which keeps a seeded generation run reproducible.
//
// Complexity:
//
//   - RegionOf, Same: O(1).
//   - Merge, Members, Count: O(N) for N lattice points.
//
// Merges are bounded by N-1 over a whole run, so the value scan costs
// O(N²) in total; the lattice of a maze is small enough for that.
package regions
