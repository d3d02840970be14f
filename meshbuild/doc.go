// SPDX-License-Identifier: MIT
// Package: quadmesh/meshbuild
//
// Package meshbuild constructs small, deterministic triangle meshes used as
// fixtures by tests, examples and benchmarks of the quad converter.
//
// Constructors:
//
//   - TriGrid(rows, cols) – rows×cols unit cells, each split into two triangles
//     along a diagonal (optionally alternating), row-major face order.
//   - Fan(n)              – n triangles around point 0, which stays on the
//     boundary: an open fan chain of length n.
//   - Wheel(n)            – n triangles closing around an interior hub.
//   - Strip(n)            – a zig-zag strip of n triangles.
//
// Options (functional, validated at construction time; they panic on
// meaningless values, constructors never panic):
//
//   - WithSpacing(d), WithOrigin(p) – placement.
//   - WithAlternatingDiagonals()     – checkerboard diagonals for TriGrid.
//   - WithJitter(frac)               – random perturbation of interior grid
//     points; requires WithSeed or WithRand.
//
// All faces are counter-clockwise in the XY plane; Z is taken from the origin.
//
// Complexity: every constructor is linear in the number of faces it emits.
package meshbuild
