package quadgraph

import (
	"github.com/katalvlaran/quadmesh/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Build scans the triangles of m and returns the candidate graph.
//
// Steps:
//  1. Validate m (point ranges, no repeated corner).
//  2. For each point, order its triangles into fan chains.
//  3. Emit an interior edge for each consecutive pair in a chain whose shared
//     side leads to a higher-numbered point.
//  4. Emit a boundary edge at the open end of each chain.
//  5. With BoundarySplits, turn each open chain of more than two triangles
//     into a Split, unless its end triangles are already a candidate pair.
//
// Complexity: O(F·d) time, O(F) space.
func Build(m *mesh.Mesh, opts ...Option) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	b := builder{
		m:     m,
		g:     &Graph{FaceCount: len(m.Faces)},
		pairs: make(map[[2]int]struct{}, len(m.Faces)*3/2),
	}

	pointFaces := m.PointFaces()
	var pending []Split
	for p := range m.Points {
		chains, err := Chains(m, pointFaces[p], p)
		if err != nil {
			return nil, err
		}
		for _, c := range chains {
			b.interior(p, c)
			if c.Wraps() {
				continue
			}
			last := c[len(c)-1]
			b.g.Boundary = append(b.g.Boundary, BoundaryEdge{
				P0: p, P1: last.Next, Face: last.Face, Opposite: last.Prior,
			})
			if cfg.BoundarySplits && len(c) > 2 {
				pending = append(pending, b.split(p, c, cfg.SplitWeight))
			}
		}
	}

	// splits go last so they can be checked against every interior pair
	for _, s := range pending {
		if !b.claim(s.Face0, s.Face1) {
			b.g.SkippedSplits++
			continue
		}
		b.g.Splits = append(b.g.Splits, s)
	}

	return b.g, nil
}

type builder struct {
	m     *mesh.Mesh
	g     *Graph
	pairs map[[2]int]struct{}
}

// claim records the face pair and reports whether it was new.
func (b *builder) claim(f0, f1 int) bool {
	key := [2]int{f0, f1}
	if f0 > f1 {
		key = [2]int{f1, f0}
	}
	if _, dup := b.pairs[key]; dup {
		return false
	}
	b.pairs[key] = struct{}{}

	return true
}

// interior emits the edges between consecutive members of c.
func (b *builder) interior(p int, c Chain) {
	emit := func(left, right FanEntry) {
		if left.Next <= p || !b.claim(left.Face, right.Face) {
			return
		}
		b.g.Interior = append(b.g.Interior, Edge{
			P0: p, P1: left.Next,
			Left: left.Face, Right: right.Face,
			OppLeft: left.Prior, OppRight: right.Next,
		})
	}

	for k := 0; k+1 < len(c); k++ {
		emit(c[k], c[k+1])
	}
	if len(c) > 1 && c.Wraps() {
		emit(c[len(c)-1], c[0])
	}
}

// split builds the candidate for open chain c at p. The new point goes to the
// centroid of the middle triangle for an odd fan, and to the midpoint of the
// middle shared side for an even one.
func (b *builder) split(p int, c Chain, weight int64) Split {
	k := len(c)
	first, last := c[0], c[k-1]

	middle := make([]int, 0, k-2)
	for _, e := range c[1 : k-1] {
		middle = append(middle, e.Face)
	}

	pts := b.m.Points
	var loc mesh.Point
	if k%2 == 1 {
		mid := c[k/2]
		loc = r3.Scale(1.0/3, r3.Add(r3.Add(pts[p], pts[mid.Next]), pts[mid.Prior]))
	} else {
		loc = r3.Scale(0.5, r3.Add(pts[p], pts[c[k/2-1].Next]))
	}

	return Split{
		Point:      p,
		Face0:      first.Face,
		Face1:      last.Face,
		Face0Prior: first.Prior,
		Face0Next:  first.Next,
		Face1Prior: last.Prior,
		Face1Next:  last.Next,
		Middle:     middle,
		Location:   loc,
		Weight:     weight,
	}
}
