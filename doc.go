// Package mazegen generates rectangular mazes with one entrance and one
// exit, step by step, so that a caller can animate the construction or
// simply run it to completion.
//
// What is in the box?
//
//	Four generators, each a resumable state machine over a shared grid:
//		• clustering:  randomized Kruskal over a lattice of regions
//		• dig:         carve passages out of solid rock (backtracker)
//		• wallextend:  grow walls into an open field until they connect
//		• defeatstick: stand pillars and knock one stick over from each
//
// Every finished maze holds exactly one Start and one Goal cell and every
// passable cell is reachable from Start. Clustering, dig and wallextend
// produce perfect mazes (exactly one path between any two cells).
//
// Packages:
//
//	grid/:        cell types, Grid, immutable Maze, connectivity analysis
//	regions/:     region tracker used by clustering
//	generator/:   step protocol, events, options, Run driver
//	clustering/, dig/, wallextend/, defeatstick/: the algorithms
//	cmd/mazegen/: command line front end with an animated terminal view
//
// Quick start:
//
//	m, err := mazegen.Generate(ctx, mazegen.Dig,
//		generator.WithSize(31, 21), generator.WithSeed(7))
//	fmt.Print(m)
//
// Sizes are corrected, never rejected: even sides lose one cell and every
// side is at least 5. A non-zero seed makes a run reproducible.
package mazegen
