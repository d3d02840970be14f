// Package mesh defines the planar mesh model consumed and produced by the
// quad-conversion pipeline.
//
// Overview:
//
//   - A Point is a gonum r3.Vec. Algorithms work in the XY plane; Z is carried
//     through untouched (and averaged into synthesized points).
//   - A Face is a tagged variant: Triangle, Quad, or Removed. Faces are stored
//     counter-clockwise and reference points by dense integer index.
//   - A Mesh owns both slices. Points may be appended but are never removed;
//     faces are rewritten in place and Removed faces are dropped by Compact.
//
// Adjacency queries:
//
//   - PointFaces:    which faces touch point p (ascending face index).
//   - Sides:         the oriented sides of face f, in CCW order.
//   - BoundarySides: oriented sides used by exactly one face.
//
// Errors (sentinel):
//
//   - ErrEmptyMesh        if a mesh has no faces where one is required.
//   - ErrPointOutOfRange  if a face references a point index outside [0, len(Points)).
//   - ErrDegenerateFace   if a face repeats a point index.
//   - ErrNonManifold      if the same oriented side is used by two faces.
//
// Complexity:
//
//   - Validate, PointFaces, BoundarySides: O(P + F).
//   - Compact: O(F), stable.
package mesh
