// Package quadify converts triangle meshes into quad-dominant meshes.
//
// Pipeline (one synchronous call, no shared state):
//
//	mesh ──► quadgraph.Build ──► cost.Score ──► matching.MatchWeights ──► Rewrite ──► mesh
//
// Every pair of matched adjacent triangles becomes one quad; a matched split
// inserts a new point next to a boundary fan's apex and turns the fan's two
// end triangles into quads. Triangles left unmatched stay as they are, and
// faces that are already quads pass through untouched.
//
// Entry points:
//
//   - Convert(m, opts...)               – full pipeline on a *mesh.Mesh.
//   - ConvertTriangles(points, tris, …) – the same on plain slices.
//   - BoundaryEdgeCount(m)              – odd ⇒ a residual triangle is unavoidable.
//   - Rewrite(m, g, mt)                 – apply a matching computed elsewhere.
//
// Logging goes to quadmesh.Logger() unless WithLogger is given.
package quadify
