package quadgraph

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/mesh"
)

// Chains orders the triangles among faces that touch point p into fan chains.
// Faces that are not triangles are ignored. Open chains come first, in the
// order of their first face; wrapping chains follow.
//
// Returns mesh.ErrNonManifold when two triangles leave p towards the same
// corner (or enter it from the same corner), since the fan order is then
// ambiguous.
//
// Complexity: O(d) expected for d incident faces.
func Chains(m *mesh.Mesh, faces []int, p int) ([]Chain, error) {
	entries := make([]FanEntry, 0, len(faces))
	for _, fi := range faces {
		f := m.Faces[fi]
		if !f.IsTriangle() {
			continue
		}
		i := f.IndexOf(p)
		if i < 0 {
			continue
		}
		entries = append(entries, FanEntry{Prior: f.At(i + 2), Next: f.At(i + 1), Face: fi})
	}
	if len(entries) == 0 {
		return nil, nil
	}

	byPrior := make(map[int]int, len(entries))
	byNext := make(map[int]int, len(entries))
	for i, e := range entries {
		if j, dup := byPrior[e.Prior]; dup {
			return nil, fmt.Errorf("point %d: faces %d and %d both enter from %d: %w",
				p, entries[j].Face, e.Face, e.Prior, mesh.ErrNonManifold)
		}
		if j, dup := byNext[e.Next]; dup {
			return nil, fmt.Errorf("point %d: faces %d and %d both leave towards %d: %w",
				p, entries[j].Face, e.Face, e.Next, mesh.ErrNonManifold)
		}
		byPrior[e.Prior] = i
		byNext[e.Next] = i
	}

	used := make([]bool, len(entries))
	walk := func(start int) Chain {
		var c Chain
		for i := start; !used[i]; {
			used[i] = true
			c = append(c, entries[i])
			next, ok := byPrior[entries[i].Next]
			if !ok {
				break
			}
			i = next
		}

		return c
	}

	var chains []Chain
	// open chains start where no entry hands over
	for i, e := range entries {
		if _, linked := byNext[e.Prior]; !linked {
			chains = append(chains, walk(i))
		}
	}
	// whatever is left closes on itself
	for i := range entries {
		if !used[i] {
			chains = append(chains, walk(i))
		}
	}

	return chains, nil
}
