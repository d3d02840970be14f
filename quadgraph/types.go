package quadgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quadmesh/matching"
	"github.com/katalvlaran/quadmesh/mesh"
)

// ErrNilMesh is returned when Build is called without a mesh.
var ErrNilMesh = errors.New("quadgraph: nil mesh")

// DefaultSplitWeight is the candidate weight given to every split. Negative,
// so a split is only chosen when it lets the matching cover more triangles.
const DefaultSplitWeight int64 = -100

// Edge is a side shared by two triangles.
//
// Left is the triangle in which P0→P1 runs counter-clockwise; OppLeft and
// OppRight are the corners of Left and Right that are not on the shared side.
// Merging the two gives the quad (P0, OppRight, P1, OppLeft).
type Edge struct {
	P0, P1            int
	Left, Right       int
	OppLeft, OppRight int
}

// Corners returns the four corners of the merged quad in counter-clockwise
// order, starting from OppLeft: (OppLeft, P0, OppRight, P1).
func (e Edge) Corners(points []mesh.Point) [4]mesh.Point {
	return [4]mesh.Point{points[e.OppLeft], points[e.P0], points[e.OppRight], points[e.P1]}
}

// Quad returns the face the merge produces.
func (e Edge) Quad() mesh.Face {
	return mesh.NewQuad(e.P0, e.OppRight, e.P1, e.OppLeft)
}

func (e Edge) String() string {
	return fmt.Sprintf("%d–%d faces %d|%d opp %d|%d", e.P0, e.P1, e.Left, e.Right, e.OppLeft, e.OppRight)
}

// BoundaryEdge is the side P0→P1 of triangle Face with no triangle beyond it.
type BoundaryEdge struct {
	P0, P1   int
	Face     int
	Opposite int
}

// Split is a pseudo-edge between the two end triangles of an open fan at
// Point. Middle lists the triangles strictly between them; when the split is
// executed they move from Point to the new point at Location.
type Split struct {
	Point                 int
	Face0, Face1          int
	Face0Prior, Face0Next int
	Face1Prior, Face1Next int
	Middle                []int
	Location              mesh.Point
	Weight                int64
}

// Graph is the output of Build.
type Graph struct {
	// FaceCount is the number of matching vertices: every face of the mesh.
	FaceCount int
	Interior  []Edge
	Boundary  []BoundaryEdge
	Splits    []Split
	// SkippedSplits counts open fans whose end triangles were already
	// candidates for each other.
	SkippedSplits int
}

// Candidates lists the matching edges: Interior[i] becomes candidate i with
// the given weight, then Splits[j] becomes candidate len(Interior)+j with its
// own weight.
func (g *Graph) Candidates(weight func(Edge) int64) []matching.Edge {
	out := make([]matching.Edge, 0, len(g.Interior)+len(g.Splits))
	for _, e := range g.Interior {
		out = append(out, matching.Edge{U: e.Left, V: e.Right, Weight: weight(e)})
	}
	for _, s := range g.Splits {
		out = append(out, matching.Edge{U: s.Face0, V: s.Face1, Weight: s.Weight})
	}

	return out
}

// FanEntry is one triangle seen from a point: the corner before the point,
// the corner after it, and the face index.
type FanEntry struct {
	Prior, Next int
	Face        int
}

// Chain is a maximal run of triangles around one point, consecutive entries
// sharing a side.
type Chain []FanEntry

// Wraps reports whether the chain closes around its point.
func (c Chain) Wraps() bool {
	return len(c) > 0 && c[len(c)-1].Next == c[0].Prior
}
