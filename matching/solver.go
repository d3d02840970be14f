package matching

import (
	"fmt"
)

// noVertex marks an empty slot in the solver's index arrays (no mate, no
// label endpoint, no parent blossom, no best edge). It never leaves the solver:
// the public Matching exposes partners through Mate(v) (int, bool).
const noVertex = -1

// label is the S/T marking of a top-level blossom or of a vertex.
type label int8

const (
	labelFree  label = 0 // not reached in this stage
	labelS     label = 1 // even distance from an exposed vertex; queued for scanning
	labelT     label = 2 // odd distance from an exposed vertex
	labelCrumb label = 4 // temporary marker set by scanBlossom on top of labelS
)

// MatchWeights computes a maximum-weight matching of the graph with vertices
// 0..n-1 and the given edges.
//
// Returns:
//
//   - Matching: symmetric partner table of length n.
//   - err:      a validation sentinel (ErrNegativeVertexCount, ErrVertexOutOfRange,
//     ErrSelfLoop, ErrDuplicateEdge), ErrInvariant on a solver defect, or
//     ErrNotOptimal when WithVerifyOptimum is set and the certificate fails.
//
// Preconditions and validation (in order):
//  1. n must be non-negative.
//  2. Every endpoint must lie in [0, n).
//  3. No edge may be a self-loop.
//  4. No two edges may join the same pair.
//
// Complexity:
//
//   - Time:  O(V³)
//   - Space: O(V + E)
func MatchWeights(n int, edges []Edge, opts ...Option) (m Matching, err error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph; fail fast with the offending edge index.
	if err = validate(n, edges); err != nil {
		return Matching{}, err
	}

	// 3) Empty edge set: everyone stays exposed, no stage runs.
	mate := make([]int, n)
	for v := range mate {
		mate[v] = unmatched
	}
	if len(edges) == 0 {
		return Matching{mate: mate}, nil
	}

	// 4) Invariant failures inside the solver surface as ErrInvariant.
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(invariantError)
			if !ok {
				panic(r)
			}
			m, err = Matching{}, fmt.Errorf("%w: %s", ErrInvariant, ie.msg)
		}
	}()

	s := newSolver(n, edges, cfg.MaxCardinality)
	s.run()

	if cfg.VerifyOptimum {
		if err = s.verifyOptimum(); err != nil {
			return Matching{}, err
		}
	}

	// 5) Translate remote endpoints into partner vertices.
	for v := 0; v < n; v++ {
		if s.mate[v] != noVertex {
			mate[v] = s.endpoint[s.mate[v]]
		}
	}
	m = Matching{mate: mate}
	if err = m.Verify(); err != nil {
		return Matching{}, err
	}

	return m, nil
}

// validate enforces the input contract of MatchWeights.
//
// Complexity: O(E) expected.
func validate(n int, edges []Edge) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNegativeVertexCount)
	}
	seen := make(map[[2]int]int, len(edges))
	for k, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return fmt.Errorf("edge %d (%s) with n=%d: %w", k, e, n, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return fmt.Errorf("edge %d (%s): %w", k, e, ErrSelfLoop)
		}
		key := [2]int{e.U, e.V}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if first, dup := seen[key]; dup {
			return fmt.Errorf("edges %d and %d join %d–%d: %w", first, k, key[0], key[1], ErrDuplicateEdge)
		}
		seen[key] = k
	}

	return nil
}

// invariantError carries a broken-invariant message from deep inside the
// solver up to MatchWeights.
type invariantError struct{ msg string }

func (e invariantError) Error() string { return e.msg }

func invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(invariantError{msg: fmt.Sprintf(format, args...)})
	}
}

// solver holds the mutable state of one MatchWeights call.
//
// Vertices are 0..nv-1; blossom ids are nv..2nv-1. Arrays indexed by
// "blossom" accept both ranges, a vertex being its own trivial blossom.
// Edge k has endpoints 2k (edges[k].U) and 2k+1 (edges[k].V); p^1 is the
// opposite endpoint of p.
type solver struct {
	nv, ne         int
	edges          []Edge
	maxCardinality bool

	endpoint  []int   // endpoint[p]  → vertex at endpoint p
	neighbend [][]int // neighbend[v] → remote endpoints of the edges at v

	mate []int // mate[v] → remote endpoint of v's matched edge, or noVertex

	label    []label // per top-level blossom, and per vertex inside T-blossoms
	labelEnd []int   // endpoint through which the label was reached

	inBlossom        []int   // inBlossom[v] → top-level blossom containing vertex v
	blossomParent    []int   // enclosing blossom, or noVertex at top level
	blossomChildren  [][]int // sub-blossoms in cycle order, base child first
	blossomBase      []int   // base vertex, or noVertex for a free slot
	blossomEndpoints [][]int // blossomEndpoints[b][i] joins children i and i+1

	bestEdge         []int   // least-slack edge to a different S-blossom (or to a free vertex)
	blossomBestEdges [][]int // per S-blossom: least-slack edges towards other S-blossoms
	unused           []int   // free-list of blossom ids

	dual      []int64 // y(v) for vertices, z(b) for blossoms
	allowEdge []bool  // edge known to have zero slack in this stage
	queue     []int   // S-vertices waiting to be scanned
}

func newSolver(n int, edges []Edge, maxCardinality bool) *solver {
	ne := len(edges)
	s := &solver{
		nv:               n,
		ne:               ne,
		edges:            edges,
		maxCardinality:   maxCardinality,
		endpoint:         make([]int, 2*ne),
		neighbend:        make([][]int, n),
		mate:             make([]int, n),
		label:            make([]label, 2*n),
		labelEnd:         make([]int, 2*n),
		inBlossom:        make([]int, n),
		blossomParent:    make([]int, 2*n),
		blossomChildren:  make([][]int, 2*n),
		blossomBase:      make([]int, 2*n),
		blossomEndpoints: make([][]int, 2*n),
		bestEdge:         make([]int, 2*n),
		blossomBestEdges: make([][]int, 2*n),
		unused:           make([]int, 0, n),
		dual:             make([]int64, 2*n),
		allowEdge:        make([]bool, ne),
		queue:            make([]int, 0, n),
	}

	var maxWeight int64
	for k, e := range edges {
		s.endpoint[2*k] = e.U
		s.endpoint[2*k+1] = e.V
		s.neighbend[e.U] = append(s.neighbend[e.U], 2*k+1)
		s.neighbend[e.V] = append(s.neighbend[e.V], 2*k)
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}

	for v := 0; v < n; v++ {
		s.mate[v] = noVertex
		s.inBlossom[v] = v
		s.blossomBase[v] = v
		s.dual[v] = maxWeight
	}
	for b := 0; b < 2*n; b++ {
		s.labelEnd[b] = noVertex
		s.blossomParent[b] = noVertex
		s.bestEdge[b] = noVertex
	}
	for b := n; b < 2*n; b++ {
		s.blossomBase[b] = noVertex
	}
	// pop from the tail hands out the highest free id first
	for b := n; b < 2*n; b++ {
		s.unused = append(s.unused, b)
	}

	return s
}

// slack returns y(u) + y(v) − 2·w for edge k. Blossom duals are not included;
// callers only compare slacks of edges between different top-level blossoms.
func (s *solver) slack(k int) int64 {
	e := s.edges[k]

	return s.dual[e.U] + s.dual[e.V] - 2*e.Weight
}

// run executes up to nv stages. Each stage either augments the matching by
// one edge or proves that no further improvement exists.
func (s *solver) run() {
	for stage := 0; stage < s.nv; stage++ {
		s.resetStage()

		// every exposed vertex becomes the root of an alternating tree
		for v := 0; v < s.nv; v++ {
			if s.mate[v] == noVertex && s.label[s.inBlossom[v]] == labelFree {
				s.assignLabel(v, labelS, noVertex)
			}
		}

		if !s.substages() {
			// optimum reached: no augmenting path exists
			break
		}

		// blossoms with zero dual may be dissolved between stages
		for b := s.nv; b < 2*s.nv; b++ {
			if s.blossomParent[b] == noVertex && s.blossomBase[b] >= 0 &&
				s.label[b] == labelS && s.dual[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}
}

// resetStage clears every per-stage label, cache and queue.
func (s *solver) resetStage() {
	for b := range s.label {
		s.label[b] = labelFree
		s.bestEdge[b] = noVertex
	}
	for b := s.nv; b < 2*s.nv; b++ {
		s.blossomBestEdges[b] = nil
	}
	for k := range s.allowEdge {
		s.allowEdge[k] = false
	}
	s.queue = s.queue[:0]
}

// substages grows the alternating forest until an augmenting path is applied
// (returns true) or a delta-1 dual update proves optimality (returns false).
func (s *solver) substages() bool {
	for {
		if s.scanQueue() {
			return true
		}

		deltaType, delta, deltaEdge, deltaBlossom := s.chooseDelta()
		s.applyDelta(delta)

		switch deltaType {
		case 1:
			// no further progress possible
			return false
		case 2:
			// an S-vertex gets a tight edge to a free vertex
			s.allowEdge[deltaEdge] = true
			i, j := s.edges[deltaEdge].U, s.edges[deltaEdge].V
			if s.label[s.inBlossom[i]] == labelFree {
				i, j = j, i
			}
			invariant(s.label[s.inBlossom[i]] == labelS, "delta2 edge %d has no S endpoint (other %d)", deltaEdge, j)
			s.queue = append(s.queue, i)
		case 3:
			// two S-blossoms get a tight edge
			s.allowEdge[deltaEdge] = true
			i := s.edges[deltaEdge].U
			invariant(s.label[s.inBlossom[i]] == labelS, "delta3 edge %d endpoint %d is not S", deltaEdge, i)
			s.queue = append(s.queue, i)
		case 4:
			// a T-blossom's dual reached zero
			s.expandBlossom(deltaBlossom, false)
		}
	}
}

// scanQueue drains the S-vertex queue over tight edges. It returns true once
// an augmenting path has been found and applied.
func (s *solver) scanQueue() bool {
	for len(s.queue) > 0 {
		v := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]
		invariant(s.label[s.inBlossom[v]] == labelS, "queued vertex %d is not S", v)

		for _, p := range s.neighbend[v] {
			k := p / 2
			w := s.endpoint[p]
			if s.inBlossom[v] == s.inBlossom[w] {
				// internal blossom edge
				continue
			}

			var kslack int64
			if !s.allowEdge[k] {
				kslack = s.slack(k)
				if kslack <= 0 {
					s.allowEdge[k] = true
				}
			}

			switch {
			case s.allowEdge[k]:
				bw := s.inBlossom[w]
				switch {
				case s.label[bw] == labelFree:
					// (C1) w is free: label it T, its mate S
					s.assignLabel(w, labelT, p^1)
				case s.label[bw] == labelS:
					// (C2) two S-vertices: a blossom or an augmenting path
					base := s.scanBlossom(v, w)
					if base >= 0 {
						s.addBlossom(base, k)
					} else {
						s.augmentMatching(k)
						return true
					}
				case s.label[w] == labelFree:
					// (C3) w sits inside a T-blossom but is not yet reached itself
					invariant(s.label[bw] == labelT, "vertex %d in blossom %d expected T", w, bw)
					s.label[w] = labelT
					s.labelEnd[w] = p ^ 1
				}
			case s.label[s.inBlossom[w]] == labelS:
				// keep the least-slack edge towards another S-blossom
				b := s.inBlossom[v]
				if s.bestEdge[b] == noVertex || kslack < s.slack(s.bestEdge[b]) {
					s.bestEdge[b] = k
				}
			case s.label[w] == labelFree:
				// keep the least-slack edge towards a free vertex
				if s.bestEdge[w] == noVertex || kslack < s.slack(s.bestEdge[w]) {
					s.bestEdge[w] = k
				}
			}
		}
	}

	return false
}

// chooseDelta picks the smallest admissible dual adjustment:
//
//	δ1: smallest vertex dual (plain maximum weight only)
//	δ2: least slack from an S-vertex to a free vertex
//	δ3: half the least slack between two different S-blossoms
//	δ4: smallest dual of a top-level T-blossom
func (s *solver) chooseDelta() (deltaType int, delta int64, deltaEdge, deltaBlossom int) {
	deltaType = -1
	deltaEdge, deltaBlossom = noVertex, noVertex

	if !s.maxCardinality {
		deltaType = 1
		delta = s.minVertexDual()
	}

	for v := 0; v < s.nv; v++ {
		if s.label[s.inBlossom[v]] == labelFree && s.bestEdge[v] != noVertex {
			d := s.slack(s.bestEdge[v])
			if deltaType == -1 || d < delta {
				delta, deltaType, deltaEdge = d, 2, s.bestEdge[v]
			}
		}
	}

	for b := 0; b < 2*s.nv; b++ {
		if s.blossomParent[b] == noVertex && s.label[b] == labelS && s.bestEdge[b] != noVertex {
			kslack := s.slack(s.bestEdge[b])
			// S-vertex duals share parity, so the slack is even
			invariant(kslack%2 == 0, "odd slack %d between S-blossoms on edge %d", kslack, s.bestEdge[b])
			d := kslack / 2
			if deltaType == -1 || d < delta {
				delta, deltaType, deltaEdge = d, 3, s.bestEdge[b]
			}
		}
	}

	for b := s.nv; b < 2*s.nv; b++ {
		if s.blossomBase[b] >= 0 && s.blossomParent[b] == noVertex && s.label[b] == labelT &&
			(deltaType == -1 || s.dual[b] < delta) {
			delta, deltaType, deltaBlossom = s.dual[b], 4, b
		}
	}

	if deltaType == -1 {
		// max-cardinality: nothing left to grow, one last δ1 to finish
		invariant(s.maxCardinality, "no delta found without max-cardinality")
		deltaType = 1
		delta = s.minVertexDual()
		if delta < 0 {
			delta = 0
		}
	}

	return deltaType, delta, deltaEdge, deltaBlossom
}

func (s *solver) minVertexDual() int64 {
	m := s.dual[0]
	for v := 1; v < s.nv; v++ {
		if s.dual[v] < m {
			m = s.dual[v]
		}
	}

	return m
}

// applyDelta shifts the duals: S-vertices down, T-vertices up, and the
// opposite for top-level non-trivial blossoms.
func (s *solver) applyDelta(delta int64) {
	for v := 0; v < s.nv; v++ {
		switch s.label[s.inBlossom[v]] {
		case labelS:
			s.dual[v] -= delta
		case labelT:
			s.dual[v] += delta
		}
	}
	for b := s.nv; b < 2*s.nv; b++ {
		if s.blossomBase[b] >= 0 && s.blossomParent[b] == noVertex {
			switch s.label[b] {
			case labelS:
				s.dual[b] += delta
			case labelT:
				s.dual[b] -= delta
			}
		}
	}
}
