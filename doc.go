// Package quadmesh turns triangulated 2D meshes into quad-dominant meshes.
//
// 🧩 What is quadmesh?
//
//	A pure-Go engine for the last step of a paving pipeline:
//		• Graph building: triangles become vertices, shared sides become candidate merges
//		• Cost model: every candidate merge is scored 0..1000 by how square the quad is
//		• Weighted matching: Edmonds/Galil blossom algorithm, optionally max-cardinality
//		• Rewriting: matched pairs become quads, matched boundary fans get a split point
//
// ✨ Why choose quadmesh?
//
//   - Exact optimum – the matching is a certified maximum-weight matching, not a greedy pass
//   - Deterministic – same mesh and options give the same quads, every time
//   - Embarrassingly parallel – each call owns its state; run meshes on separate goroutines
//
// Under the hood, everything is organized under these subpackages:
//
//	mesh/      - points (r3.Vec), tagged triangle/quad faces, incidence & boundary queries
//	quadgraph/ - fan chains, interior/boundary edges, boundary split candidates
//	cost/      - angle and distance quality scores
//	matching/  - general-graph maximum-weight matching (blossom algorithm)
//	quadify/   - the rewriter and the Convert / BoundaryEdgeCount facade
//	meshbuild/ - deterministic mesh fixtures (grids, fans, wheels, strips)
//	render/    - PNG previews of meshes
//
// Quick ASCII example:
//
//	2───3         2───3
//	│ ╲ │   ==>   │   │
//	0───1         0───1
//
// two triangles sharing the 0–3 diagonal are merged into the quad {0,1,3,2}.
//
// Logging is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/quadmesh
package quadmesh
