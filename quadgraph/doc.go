// Package quadgraph turns a triangle mesh into the candidate graph for quad
// merging.
//
// 🚀 What it produces
//
//	Build walks every point's fan of incident triangles and returns:
//		• Interior edges – one per pair of triangles sharing a side, with the two
//		  opposite points needed to form the merged quad.
//		• Boundary edges – triangle sides with no triangle on the other side.
//		• Splits – optional pseudo-edges between the two end triangles of an open
//		  fan of three or more triangles. Choosing one inserts a new point next to
//		  the fan's apex so both end triangles can become quads.
//
// The graph's vertices are the mesh's face indices. Quads already in the mesh
// are isolated vertices: they are never candidates but keep their index.
//
// ⚙️ Fan chains
//
//	At a point p, every triangle contributes (Prior, Next, Face), the corners
//	entering and leaving p in counter-clockwise order. Entries are linked when
//	chain[i].Next == chain[i+1].Prior. A chain whose last Next equals its first
//	Prior wraps around an interior point; any other chain ends on the boundary.
//
// Each interior edge is emitted once, from its lower-numbered endpoint.
//
// Complexity: O(F·d) for F triangles and maximum point degree d.
package quadgraph
