package quadify

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/matching"
	"github.com/katalvlaran/quadmesh/mesh"
	"github.com/katalvlaran/quadmesh/quadgraph"
)

// Rewrite applies matching mt over graph g to a copy of m and returns it.
// m itself is not modified.
//
// Steps:
//  1. Each matched interior edge: Left becomes the quad (P0, OppRight, P1,
//     OppLeft), Right is removed.
//  2. Each matched split: the location is appended as point q; Face0 gets q
//     right after the split point, Face1 right before it; every middle
//     triangle (or the quad it was merged into) has the split point replaced
//     by q.
//  3. Removed faces are compacted out, preserving order.
//
// Returns ErrMatchingSize when mt or g do not cover m's faces, and
// ErrNotTriangle when a matched face is not the triangle the candidate
// describes.
//
// Complexity: O(F + I + S) for F faces, I interior edges and S splits.
func Rewrite(m *mesh.Mesh, g *quadgraph.Graph, mt matching.Matching) (*mesh.Mesh, Report, error) {
	if m == nil || g == nil {
		return nil, Report{}, fmt.Errorf("rewrite: %w", quadgraph.ErrNilMesh)
	}
	if g.FaceCount != len(m.Faces) || mt.Len() != len(m.Faces) {
		return nil, Report{}, fmt.Errorf("graph %d, matching %d, mesh %d faces: %w",
			g.FaceCount, mt.Len(), len(m.Faces), ErrMatchingSize)
	}

	out := m.Clone()
	rep := Report{BoundaryEdges: len(g.Boundary)}

	// owner[f] is the face that now holds f's area
	owner := make([]int, len(out.Faces))
	for f := range owner {
		owner[f] = f
	}

	for i, e := range g.Interior {
		if u, ok := mt.Mate(e.Left); !ok || u != e.Right {
			continue
		}
		if !out.Faces[e.Left].IsTriangle() || !out.Faces[e.Right].IsTriangle() {
			return nil, Report{}, fmt.Errorf("interior edge %d (%s): %w", i, e, ErrNotTriangle)
		}
		out.Faces[e.Left] = e.Quad()
		out.Faces[e.Right] = mesh.RemovedFace
		owner[e.Right] = e.Left
		rep.Merged++
	}

	for j, s := range g.Splits {
		if u, ok := mt.Mate(s.Face0); !ok || u != s.Face1 {
			continue
		}
		// q is the index AddPoint will hand out
		q := len(out.Points)
		f0, ok0 := widen(out.Faces[s.Face0], s.Point, q, true)
		f1, ok1 := widen(out.Faces[s.Face1], s.Point, q, false)
		if !ok0 || !ok1 {
			return nil, Report{}, fmt.Errorf("split %d at point %d (faces %d, %d): %w",
				j, s.Point, s.Face0, s.Face1, ErrNotTriangle)
		}
		out.AddPoint(s.Location)
		out.Faces[s.Face0] = f0
		out.Faces[s.Face1] = f1
		for _, mid := range s.Middle {
			f := owner[mid]
			out.Faces[f] = out.Faces[f].Replace(s.Point, q)
		}
		rep.Splits++
	}

	for f, face := range m.Faces {
		if face.IsTriangle() && !mt.Matched(f) {
			rep.Unmatched++
		}
	}

	out.Compact()
	rep.Triangles, rep.Quads, _ = out.Counts()
	rep.Faces = len(out.Faces)

	return out, rep, nil
}

// widen turns triangle f into a quad by inserting q next to its corner p:
// right after p when after is set, right before it otherwise.
func widen(f mesh.Face, p, q int, after bool) (mesh.Face, bool) {
	i := f.IndexOf(p)
	if !f.IsTriangle() || i < 0 {
		return f, false
	}
	if after {
		return mesh.NewQuad(p, q, f.At(i+1), f.At(i+2)), true
	}

	return mesh.NewQuad(p, f.At(i+1), f.At(i+2), q), true
}
