package matching

import (
	"fmt"
	"sort"
)

// unmatched marks an exposed vertex in Matching.mate.
const unmatched = -1

// Matching maps every vertex to its partner. It is symmetric:
// if Mate(v) returns (u, true) then Mate(u) returns (v, true).
type Matching struct {
	mate []int
}

// Len returns the number of vertices covered by the matching table.
func (m Matching) Len() int { return len(m.mate) }

// Mate returns the partner of v and true, or (0, false) when v is unmatched
// or outside the table.
func (m Matching) Mate(v int) (int, bool) {
	if v < 0 || v >= len(m.mate) || m.mate[v] == unmatched {
		return 0, false
	}

	return m.mate[v], true
}

// Matched reports whether v has a partner.
func (m Matching) Matched(v int) bool {
	_, ok := m.Mate(v)

	return ok
}

// Cardinality returns the number of matched pairs.
func (m Matching) Cardinality() int {
	c := 0
	for v, u := range m.mate {
		if u != unmatched && v < u {
			c++
		}
	}

	return c
}

// Pairs returns the matched pairs as (u, v) with u < v, sorted by u.
func (m Matching) Pairs() [][2]int {
	out := make([][2]int, 0, m.Cardinality())
	for v, u := range m.mate {
		if u != unmatched && v < u {
			out = append(out, [2]int{v, u})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// Weight sums the weights of the edges whose endpoints are matched to each other.
func (m Matching) Weight(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		if u, ok := m.Mate(e.U); ok && u == e.V {
			total += e.Weight
		}
	}

	return total
}

// Verify checks symmetry and the absence of self-matches.
func (m Matching) Verify() error {
	for v, u := range m.mate {
		if u == unmatched {
			continue
		}
		if u == v {
			return fmt.Errorf("vertex %d matched to itself: %w", v, ErrInvariant)
		}
		if u < 0 || u >= len(m.mate) || m.mate[u] != v {
			return fmt.Errorf("vertex %d → %d is not symmetric: %w", v, u, ErrInvariant)
		}
	}

	return nil
}
