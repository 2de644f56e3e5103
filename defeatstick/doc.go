// Package defeatstick generates a maze by standing a pillar on every
// even/even interior cell and knocking a stick over from each one.
//
// Pillars are visited row by row. After a pillar is placed, one of its
// orthogonal neighbours is walled too: on the first pillar row any of the
// four directions may be drawn, afterwards only right, down or left, which
// keeps every stick chain leaning towards structure placed earlier. A draw
// that lands on an existing wall is repeated.
//
// It is the lightest of the generators and makes no structural promise
// beyond connectivity. Start is (1,1), Goal is (W-2,H-2).
//
// Complexity: O(W×H) steps, Memory: O(W×H).
package defeatstick
