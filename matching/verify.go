package matching

import "fmt"

// verifyOptimum checks the primal-dual certificate left behind by run:
//
//   - all vertex duals (shifted by the max-cardinality offset) and all
//     blossom duals are non-negative;
//   - every edge has non-negative slack once the duals of the blossoms
//     containing both endpoints are added;
//   - matched edges are tight;
//   - exposed vertices have zero (shifted) dual;
//   - every blossom with positive dual is full: its cycle is odd and
//     alternate cycle edges are matched.
//
// It must run before the solver's mate table is translated to vertices.
func (s *solver) verifyOptimum() error {
	minDual := s.minVertexDual()
	var offset int64
	if s.maxCardinality && minDual < 0 {
		// max-cardinality may drive vertex duals negative
		offset = -minDual
	}
	if minDual+offset < 0 {
		return fmt.Errorf("vertex dual %d below zero: %w", minDual+offset, ErrNotOptimal)
	}
	for b := s.nv; b < 2*s.nv; b++ {
		if s.blossomBase[b] >= 0 && s.dual[b] < 0 {
			return fmt.Errorf("blossom %d dual %d below zero: %w", b, s.dual[b], ErrNotOptimal)
		}
	}

	for k, e := range s.edges {
		sl := s.dual[e.U] + s.dual[e.V] - 2*e.Weight
		for _, b := range s.commonBlossoms(e.U, e.V) {
			sl += 2 * s.dual[b]
		}
		if sl < 0 {
			return fmt.Errorf("edge %d (%s) slack %d: %w", k, e, sl, ErrNotOptimal)
		}

		iOn := s.mate[e.U] != noVertex && s.mate[e.U]/2 == k
		jOn := s.mate[e.V] != noVertex && s.mate[e.V]/2 == k
		if iOn != jOn {
			return fmt.Errorf("edge %d (%s) matched on one side only: %w", k, e, ErrNotOptimal)
		}
		if iOn && sl != 0 {
			return fmt.Errorf("matched edge %d (%s) has slack %d: %w", k, e, sl, ErrNotOptimal)
		}
	}

	for v := 0; v < s.nv; v++ {
		if s.mate[v] == noVertex && s.dual[v]+offset != 0 {
			return fmt.Errorf("exposed vertex %d has dual %d: %w", v, s.dual[v]+offset, ErrNotOptimal)
		}
	}

	for b := s.nv; b < 2*s.nv; b++ {
		if s.blossomBase[b] < 0 || s.dual[b] <= 0 {
			continue
		}
		endps := s.blossomEndpoints[b]
		if len(endps)%2 != 1 {
			return fmt.Errorf("blossom %d has even cycle length %d: %w", b, len(endps), ErrNotOptimal)
		}
		for i := 1; i < len(endps); i += 2 {
			p := endps[i]
			if s.mate[s.endpoint[p]] != p^1 || s.mate[s.endpoint[p^1]] != p {
				return fmt.Errorf("blossom %d cycle edge %d is not matched: %w", b, p/2, ErrNotOptimal)
			}
		}
	}

	return nil
}

// commonBlossoms lists the non-trivial blossoms that contain both u and v.
func (s *solver) commonBlossoms(u, v int) []int {
	ancestors := func(x int) []int {
		chain := []int{x}
		for s.blossomParent[x] != noVertex {
			x = s.blossomParent[x]
			chain = append(chain, x)
		}
		reverseInts(chain)

		return chain
	}

	us, vs := ancestors(u), ancestors(v)
	var out []int
	for i := 0; i < len(us) && i < len(vs) && us[i] == vs[i]; i++ {
		out = append(out, us[i])
	}

	return out
}
