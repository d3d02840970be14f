package quadify

import (
	"fmt"

	"github.com/katalvlaran/quadmesh"
	"github.com/katalvlaran/quadmesh/cost"
	"github.com/katalvlaran/quadmesh/matching"
	"github.com/katalvlaran/quadmesh/mesh"
	"github.com/katalvlaran/quadmesh/quadgraph"
)

// Convert merges the triangles of m into quads and returns the new mesh with
// a summary. m is not modified.
//
// Complexity: O(F³) worst case, dominated by the matching.
func Convert(m *mesh.Mesh, opts ...Option) (*mesh.Mesh, Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = quadmesh.Logger()
	}

	g, err := quadgraph.Build(m,
		quadgraph.WithBoundarySplits(cfg.BoundarySplits),
		quadgraph.WithSplitWeight(cfg.SplitWeight),
	)
	if err != nil {
		return nil, Report{}, fmt.Errorf("quadify: build graph: %w", err)
	}
	log.Debug("quadify: graph built",
		"faces", g.FaceCount,
		"interior", len(g.Interior),
		"boundary", len(g.Boundary),
		"splits", len(g.Splits))
	if len(g.Boundary)%2 == 1 {
		log.Warn("quadify: odd boundary edge count, a triangle will remain", "boundary", len(g.Boundary))
	}
	if g.SkippedSplits > 0 {
		log.Warn("quadify: split candidates skipped, end triangles already paired", "count", g.SkippedSplits)
	}

	cands := g.Candidates(func(e quadgraph.Edge) int64 {
		return cost.Score(cfg.Variant, e.Corners(m.Points))
	})

	var mopts []matching.Option
	if cfg.MaxCardinality {
		mopts = append(mopts, matching.WithMaxCardinality())
	}
	if cfg.VerifyOptimum {
		mopts = append(mopts, matching.WithVerifyOptimum())
	}
	mt, err := matching.MatchWeights(g.FaceCount, cands, mopts...)
	if err != nil {
		return nil, Report{}, fmt.Errorf("quadify: match: %w", err)
	}

	out, rep, err := Rewrite(m, g, mt)
	if err != nil {
		return nil, Report{}, fmt.Errorf("quadify: %w", err)
	}
	rep.Weight = mt.Weight(cands)
	log.Debug("quadify: converted",
		"pairs", mt.Cardinality(),
		"merged", rep.Merged,
		"splits", rep.Splits,
		"triangles", rep.Triangles,
		"weight", rep.Weight)

	return out, rep, nil
}

// ConvertTriangles is Convert over plain slices: points and counter-clockwise
// index triples in, points (possibly with split points appended) and faces
// out. useAngleCost selects cost.Angle, otherwise cost.Distance.
func ConvertTriangles(points []mesh.Point, tris [][3]int, splitBoundaryPoints, useAngleCost bool) ([]mesh.Point, []mesh.Face, error) {
	m, err := mesh.FromTriangles(points, tris)
	if err != nil {
		return nil, nil, fmt.Errorf("quadify: %w", err)
	}
	variant := cost.Distance
	if useAngleCost {
		variant = cost.Angle
	}

	out, _, err := Convert(m, WithBoundarySplits(splitBoundaryPoints), WithCostVariant(variant))
	if err != nil {
		return nil, nil, err
	}

	return out.Points, out.Faces, nil
}

// BoundaryEdgeCount returns the number of face sides with no face beyond them.
// The count has the parity of the triangle count, so an odd result means at
// least one triangle survives any conversion.
func BoundaryEdgeCount(m *mesh.Mesh) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("quadify: %w", quadgraph.ErrNilMesh)
	}
	if err := m.Validate(); err != nil {
		return 0, fmt.Errorf("quadify: %w", err)
	}
	sides, err := m.BoundarySides()
	if err != nil {
		return 0, fmt.Errorf("quadify: %w", err)
	}

	return len(sides), nil
}
