// Package matching computes maximum-weight matchings in general (non-bipartite)
// graphs with integer edge weights.
//
// Overview:
//
//   - MatchWeights implements Edmonds' blossom algorithm in its primal-dual
//     O(V³) form (Galil's exposition). Odd alternating cycles are contracted
//     into blossoms so that augmenting paths are found correctly in graphs that
//     are not bipartite.
//   - All dual variables are kept as integers: edge weights are implicitly
//     doubled, so the slack of edge (i,j) is y(i) + y(j) − 2·w(i,j).
//   - Optionally the matching is forced to maximum cardinality first, with
//     ties broken by weight (WithMaxCardinality).
//
// When to use:
//
//   - Pairing problems where both endpoints come from the same set: merging
//     adjacent triangles into quads, pairing odd-degree vertices in
//     Christofides-style tours, scheduling pairs of tasks.
//
// Key features:
//
//   - Negative weights are legal. Without WithMaxCardinality a vertex stays
//     unmatched rather than take a negative pair; with it, negative pairs are
//     accepted when they increase the cardinality.
//   - WithVerifyOptimum re-checks the LP duality certificate after solving.
//   - Each call owns its state; independent calls may run concurrently.
//
// Performance and complexity:
//
//   - Time:  O(V³) worst case, at most V stages.
//   - Space: O(V + E); blossom ids live in an arena of 2·V slots recycled
//     through a free-list.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeVertexCount: n < 0.
//   - ErrVertexOutOfRange:    an edge endpoint outside [0, n).
//   - ErrSelfLoop:            an edge with U == V.
//   - ErrDuplicateEdge:       two edges between the same pair of vertices.
//   - ErrInvariant:           an internal invariant broke (a defect, not an input problem).
//   - ErrNotOptimal:          WithVerifyOptimum found a violated optimality condition.
//
// API reference:
//
//	func MatchWeights(n int, edges []Edge, opts ...Option) (Matching, error)
//
//	  - n:      number of vertices; vertices are 0..n-1.
//	  - edges:  undirected edges, no self-loops, no parallel edges.
//	  - opts:   WithMaxCardinality(), WithVerifyOptimum().
//
// Thread safety:
//
//   - MatchWeights does not retain edges and keeps no global state.
package matching
