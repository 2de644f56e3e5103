// Package wallextend generates a perfect maze by growing walls into an open
// field until every pillar position is connected to the outer wall.
//
// What:
//
//   - The grid starts as Floor inside a Wall border. Even/even interior
//     cells are pillar positions; they are visited in shuffled order.
//   - From an unwalled pillar a vein grows two cells at a time. A direction
//     is open when the adjacent cell is Floor and the pillar beyond it is
//     not part of the current vein. The vein stops as soon as it lands on
//     a pillar that was already Wall, i.e. when it has joined the existing
//     wall network.
//   - A vein that boxes itself in backtracks along its stack of pillars and
//     resumes from the most recent one that still has an open direction.
//
// Because each vein touches the existing network exactly once, the walls
// stay a single tree anchored on the border and the floor between them is
// a perfect maze. Start is (1,1), Goal is (W-2,H-2).
//
// Complexity: O(W×H) steps, Memory: O(W×H).
package wallextend
