package matching_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/quadmesh/matching"
)

// e is shorthand for a matching.Edge literal.
func e(u, v int, w int64) matching.Edge { return matching.Edge{U: u, V: v, Weight: w} }

// mates flattens a Matching into a slice with -1 for exposed vertices.
func mates(m matching.Matching) []int {
	out := make([]int, m.Len())
	for v := range out {
		if u, ok := m.Mate(v); ok {
			out[v] = u
		} else {
			out[v] = -1
		}
	}

	return out
}

// bruteForce returns the best achievable (cardinality, weight) by exhaustive
// search. With maxCard the cardinality dominates; otherwise only weight counts.
func bruteForce(n int, edges []matching.Edge, maxCard bool) (card int, weight int64) {
	w := make(map[[2]int]int64, len(edges))
	adj := make([][]int, n)
	for _, ed := range edges {
		w[[2]int{ed.U, ed.V}] = ed.Weight
		w[[2]int{ed.V, ed.U}] = ed.Weight
		adj[ed.U] = append(adj[ed.U], ed.V)
		adj[ed.V] = append(adj[ed.V], ed.U)
	}

	used := make([]bool, n)
	better := func(c1 int, w1 int64, c2 int, w2 int64) bool {
		if maxCard && c1 != c2 {
			return c1 > c2
		}

		return w1 > w2
	}

	var rec func(v int) (int, int64)
	rec = func(v int) (int, int64) {
		for v < n && used[v] {
			v++
		}
		if v == n {
			return 0, 0
		}
		used[v] = true
		bc, bw := rec(v + 1) // v stays exposed
		for _, u := range adj[v] {
			if used[u] {
				continue
			}
			used[u] = true
			c, wt := rec(v + 1)
			c, wt = c+1, wt+w[[2]int{v, u}]
			if better(c, wt, bc, bw) {
				bc, bw = c, wt
			}
			used[u] = false
		}
		used[v] = false

		return bc, bw
	}

	return rec(0)
}

// MatchingSuite runs the named blossom scenarios.
type MatchingSuite struct {
	suite.Suite
}

type scenario struct {
	name    string
	n       int
	edges   []matching.Edge
	maxCard bool
	want    []int
}

func scenarios() []scenario {
	return []scenario{
		{"single edge", 2, []matching.Edge{e(0, 1, 1)}, false, []int{1, 0}},
		{"two edges", 4, []matching.Edge{e(1, 2, 10), e(2, 3, 11)}, false, []int{-1, -1, 3, 2}},
		{"path of three", 5, []matching.Edge{e(1, 2, 5), e(2, 3, 11), e(3, 4, 5)}, false, []int{-1, -1, 3, 2, -1}},
		{"path of three maxcard", 5, []matching.Edge{e(1, 2, 5), e(2, 3, 11), e(3, 4, 5)}, true, []int{-1, 2, 1, 4, 3}},
		{"negative weights", 5,
			[]matching.Edge{e(1, 2, 2), e(1, 3, -2), e(2, 3, 1), e(2, 4, -1), e(3, 4, -6)},
			false, []int{-1, 2, 1, -1, -1}},
		{"negative weights maxcard", 5,
			[]matching.Edge{e(1, 2, 2), e(1, 3, -2), e(2, 3, 1), e(2, 4, -1), e(3, 4, -6)},
			true, []int{-1, 3, 4, 1, 2}},
		{"S-blossom", 5,
			[]matching.Edge{e(1, 2, 8), e(1, 3, 9), e(2, 3, 10), e(3, 4, 7)},
			false, []int{-1, 2, 1, 4, 3}},
		{"S-blossom augmented", 7,
			[]matching.Edge{e(1, 2, 8), e(1, 3, 9), e(2, 3, 10), e(3, 4, 7), e(1, 6, 5), e(4, 5, 6)},
			false, []int{-1, 6, 3, 2, 5, 4, 1}},
		{"T-blossom", 7,
			[]matching.Edge{e(1, 2, 9), e(1, 3, 8), e(2, 3, 10), e(1, 4, 5), e(4, 5, 4), e(1, 6, 3)},
			false, []int{-1, 6, 3, 2, 5, 4, 1}},
		{"T-blossom relabel", 7,
			[]matching.Edge{e(1, 2, 9), e(1, 3, 8), e(2, 3, 10), e(1, 4, 5), e(4, 5, 3), e(1, 6, 4)},
			false, []int{-1, 6, 3, 2, 5, 4, 1}},
		{"T-blossom through base", 7,
			[]matching.Edge{e(1, 2, 9), e(1, 3, 8), e(2, 3, 10), e(1, 4, 5), e(4, 5, 3), e(3, 6, 4)},
			false, []int{-1, 2, 1, 6, 5, 4, 3}},
		{"nested S-blossom", 7,
			[]matching.Edge{e(1, 2, 9), e(1, 3, 9), e(2, 3, 10), e(2, 4, 8), e(3, 5, 8), e(4, 5, 10), e(5, 6, 6)},
			false, []int{-1, 3, 4, 1, 2, 6, 5}},
		{"nested S-blossom relabel", 9,
			[]matching.Edge{e(1, 2, 10), e(1, 7, 10), e(2, 3, 12), e(3, 4, 20), e(3, 5, 20),
				e(4, 5, 25), e(5, 6, 10), e(6, 7, 10), e(7, 8, 8)},
			false, []int{-1, 2, 1, 4, 3, 6, 5, 8, 7}},
		{"nested S-blossom expand", 9,
			[]matching.Edge{e(1, 2, 8), e(1, 3, 8), e(2, 3, 10), e(2, 4, 12), e(3, 5, 12),
				e(4, 5, 14), e(4, 6, 12), e(5, 7, 12), e(6, 7, 14), e(7, 8, 12)},
			false, []int{-1, 2, 1, 5, 6, 3, 4, 8, 7}},
		{"S-blossom then T-expand", 9,
			[]matching.Edge{e(1, 2, 23), e(1, 5, 22), e(1, 6, 15), e(2, 3, 25), e(3, 4, 22),
				e(4, 5, 25), e(4, 8, 14), e(5, 7, 13)},
			false, []int{-1, 6, 3, 2, 8, 7, 1, 5, 4}},
		{"nested S-blossom then T-expand", 9,
			[]matching.Edge{e(1, 2, 19), e(1, 3, 20), e(1, 8, 8), e(2, 3, 25), e(2, 4, 18),
				e(3, 5, 18), e(4, 5, 13), e(4, 7, 7), e(5, 6, 7)},
			false, []int{-1, 8, 3, 2, 7, 6, 5, 4, 1}},
		{"T-expand with augmenting path", 11,
			[]matching.Edge{e(1, 2, 45), e(1, 5, 45), e(2, 3, 50), e(3, 4, 45), e(4, 5, 50),
				e(1, 6, 30), e(3, 9, 35), e(4, 8, 35), e(5, 7, 26), e(9, 10, 5)},
			false, []int{-1, 6, 3, 2, 8, 7, 1, 5, 4, 10, 9}},
		{"T-expand alternate", 11,
			[]matching.Edge{e(1, 2, 45), e(1, 5, 45), e(2, 3, 50), e(3, 4, 45), e(4, 5, 50),
				e(1, 6, 30), e(3, 9, 35), e(4, 8, 26), e(5, 7, 40), e(9, 10, 5)},
			false, []int{-1, 6, 3, 2, 8, 7, 1, 5, 4, 10, 9}},
		{"T-expand least slack", 11,
			[]matching.Edge{e(1, 2, 45), e(1, 5, 45), e(2, 3, 50), e(3, 4, 45), e(4, 5, 50),
				e(1, 6, 30), e(3, 9, 35), e(4, 8, 28), e(5, 7, 26), e(9, 10, 5)},
			false, []int{-1, 6, 3, 2, 8, 7, 1, 5, 4, 10, 9}},
		{"nested T-expand", 13,
			[]matching.Edge{e(1, 2, 45), e(1, 7, 45), e(2, 3, 50), e(3, 4, 45), e(4, 5, 95),
				e(4, 6, 94), e(5, 6, 94), e(6, 7, 50), e(1, 8, 30), e(3, 11, 35),
				e(5, 9, 36), e(7, 10, 26), e(11, 12, 5)},
			false, []int{-1, 8, 3, 2, 6, 9, 4, 10, 1, 5, 7, 12, 11}},
		{"nested relabel expand", 11,
			[]matching.Edge{e(1, 2, 40), e(1, 3, 40), e(2, 3, 60), e(2, 4, 55), e(3, 5, 55),
				e(4, 5, 50), e(1, 8, 15), e(5, 7, 30), e(7, 6, 10), e(8, 10, 10), e(4, 9, 30)},
			false, []int{-1, 2, 1, 5, 9, 3, 7, 6, 10, 4, 8}},
	}
}

// TestScenarios checks the exact partner table, the certificate and the
// exhaustive optimum for every named graph.
func (s *MatchingSuite) TestScenarios() {
	for _, sc := range scenarios() {
		s.Run(sc.name, func() {
			opts := []matching.Option{matching.WithVerifyOptimum()}
			if sc.maxCard {
				opts = append(opts, matching.WithMaxCardinality())
			}
			m, err := matching.MatchWeights(sc.n, sc.edges, opts...)
			require.NoError(s.T(), err)
			require.Equal(s.T(), sc.want, mates(m))

			_, bw := bruteForce(sc.n, sc.edges, sc.maxCard)
			require.Equal(s.T(), bw, m.Weight(sc.edges))
		})
	}
}

// TestEmpty verifies that no edges means nobody is matched.
func (s *MatchingSuite) TestEmpty() {
	m, err := matching.MatchWeights(0, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, m.Len())

	m, err = matching.MatchWeights(3, nil, matching.WithMaxCardinality())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{-1, -1, -1}, mates(m))
	require.Zero(s.T(), m.Cardinality())
}

// TestTriangleLeavesOneExposed verifies that an odd cycle cannot be perfectly matched.
func (s *MatchingSuite) TestTriangleLeavesOneExposed() {
	edges := []matching.Edge{e(0, 1, 5), e(1, 2, 6), e(0, 2, 4)}
	m, err := matching.MatchWeights(3, edges, matching.WithMaxCardinality())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, m.Cardinality())
	require.Equal(s.T(), [][2]int{{1, 2}}, m.Pairs())
	require.Equal(s.T(), int64(6), m.Weight(edges))
}

// TestNegativeOnlyEdgesStayUnmatched: plain maximum weight never takes a
// negative edge, max-cardinality does.
func (s *MatchingSuite) TestNegativeOnlyEdgesStayUnmatched() {
	edges := []matching.Edge{e(0, 1, -100)}

	m, err := matching.MatchWeights(2, edges)
	require.NoError(s.T(), err)
	require.False(s.T(), m.Matched(0))
	require.False(s.T(), m.Matched(1))

	m, err = matching.MatchWeights(2, edges, matching.WithMaxCardinality())
	require.NoError(s.T(), err)
	u, ok := m.Mate(0)
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, u)
}

// TestValidation covers every input sentinel.
func (s *MatchingSuite) TestValidation() {
	cases := []struct {
		name  string
		n     int
		edges []matching.Edge
		want  error
	}{
		{"negative n", -1, nil, matching.ErrNegativeVertexCount},
		{"endpoint too large", 2, []matching.Edge{e(0, 2, 1)}, matching.ErrVertexOutOfRange},
		{"negative endpoint", 2, []matching.Edge{e(-1, 1, 1)}, matching.ErrVertexOutOfRange},
		{"self loop", 3, []matching.Edge{e(0, 1, 1), e(2, 2, 1)}, matching.ErrSelfLoop},
		{"duplicate", 3, []matching.Edge{e(0, 1, 1), e(1, 2, 1), e(1, 0, 3)}, matching.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := matching.MatchWeights(tc.n, tc.edges)
			require.Error(s.T(), err)
			require.True(s.T(), errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}

// randomGraph draws a graph on n vertices with edge probability p and weights
// in [lo, hi].
func randomGraph(rng *rand.Rand, n int, p float64, lo, hi int64) []matching.Edge {
	var edges []matching.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, e(u, v, lo+rng.Int63n(hi-lo+1)))
			}
		}
	}

	return edges
}

// TestRandomAgainstBruteForce compares the solver with exhaustive search on
// small random graphs, in both modes, and checks the structural properties.
func TestRandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(20240917))

	for iter := 0; iter < 400; iter++ {
		n := 1 + rng.Intn(10)
		lo, hi := int64(1), int64(30)
		if iter%3 == 0 {
			lo = -20
		}
		if iter%5 == 0 {
			// many ties
			hi = lo + 2
		}
		edges := randomGraph(rng, n, 0.2+0.6*rng.Float64(), lo, hi)

		for _, maxCard := range []bool{false, true} {
			opts := []matching.Option{matching.WithVerifyOptimum()}
			if maxCard {
				opts = append(opts, matching.WithMaxCardinality())
			}
			m, err := matching.MatchWeights(n, edges, opts...)
			require.NoError(t, err, "iter %d maxCard=%v edges=%v", iter, maxCard, edges)
			require.NoError(t, m.Verify())

			bc, bw := bruteForce(n, edges, maxCard)
			require.Equal(t, bw, m.Weight(edges), "iter %d maxCard=%v edges=%v", iter, maxCard, edges)
			if maxCard {
				require.Equal(t, bc, m.Cardinality(), "iter %d edges=%v", iter, edges)
			}

			// symmetric, no self-match, only input edges
			for v := 0; v < n; v++ {
				u, ok := m.Mate(v)
				if !ok {
					continue
				}
				require.NotEqual(t, v, u)
				back, ok := m.Mate(u)
				require.True(t, ok)
				require.Equal(t, v, back)
			}
		}
	}
}

// TestMaxCardinalityDominates: the max-cardinality matching is never smaller
// than the plain maximum-weight one, and never heavier.
func TestMaxCardinalityDominates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 100; iter++ {
		n := 2 + rng.Intn(14)
		edges := randomGraph(rng, n, 0.4, -50, 50)

		plain, err := matching.MatchWeights(n, edges)
		require.NoError(t, err)
		card, err := matching.MatchWeights(n, edges, matching.WithMaxCardinality())
		require.NoError(t, err)

		require.GreaterOrEqual(t, card.Cardinality(), plain.Cardinality())
		require.LessOrEqual(t, card.Weight(edges), plain.Weight(edges))
	}
}

// TestLargerRandomCertificates exercises deeper blossom nesting than brute
// force can reach; correctness rests on the dual certificate.
func TestLargerRandomCertificates(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for iter := 0; iter < 40; iter++ {
		n := 20 + rng.Intn(40)
		edges := randomGraph(rng, n, 0.15, 1, 12)
		_, err := matching.MatchWeights(n, edges, matching.WithVerifyOptimum())
		require.NoError(t, err, "iter %d", iter)
		_, err = matching.MatchWeights(n, edges, matching.WithVerifyOptimum(), matching.WithMaxCardinality())
		require.NoError(t, err, "iter %d maxcard", iter)
	}
}

func TestEdgeString(t *testing.T) {
	require.Equal(t, "3–7(-2)", e(3, 7, -2).String())
}
