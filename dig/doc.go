// Package dig generates a perfect maze by carving passages out of solid
// rock, two cells at a time, in the manner of a recursive backtracker.
//
// What:
//
//   - The grid starts all Wall. Odd/odd cells are rooms, the cells between
//     them are passages.
//   - From the current room, a direction is open when both the passage and
//     the room beyond it are still Wall. One open direction is chosen at
//     random, both cells are carved, and the walk continues from the new
//     room.
//   - Every carved room joins a candidate pool. When a walk dead-ends, a
//     candidate is drawn at random from the pool and a new walk resumes
//     there. Generation ends when no walk is queued and the pool is empty.
//
// While carving, the outer ring is temporarily Floor so that the open
// check never needs a bounds test; it is turned back to Wall before Start
// (1,1) and Goal (W-2,H-2) are placed.
//
// Complexity: O(W×H) steps, Memory: O(W×H).
package dig
