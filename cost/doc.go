// Package cost scores how close the union of two triangles is to a square.
//
// A candidate merge is described by its four corners in counter-clockwise
// order q = (p0, p1, p3, p2): p1 and p2 are the ends of the shared side, p0
// and p3 the corners opposite it. Scores are integers in [0, MaxScore];
// MaxScore is a perfect square, 0 a fully degenerate quad.
//
// Two variants are provided:
//
//   - Angle: the worst deviation of a corner angle from a right angle.
//   - Distance: how far each half-triangle is from satisfying Pythagoras,
//     using squared side and diagonal lengths.
//
// Both depend only on ratios, so scaling every coordinate by a positive
// constant leaves the score unchanged. Only X and Y are used.
package cost
