package mesh

import (
	"fmt"
)

// Mesh is a set of points and the faces built on them.
//
// Points are owned by the mesh and addressed by dense index. Faces are
// counter-clockwise; a face may be rewritten in place or marked removed, and
// Compact drops removed faces while preserving the order of the survivors.
type Mesh struct {
	Points []Point
	Faces  []Face
}

// New builds a mesh from the given points and faces and validates it.
// The slices are retained, not copied.
//
// Complexity: O(P + F).
func New(points []Point, faces []Face) (*Mesh, error) {
	m := &Mesh{Points: points, Faces: faces}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// FromTriangles builds a triangle-only mesh from index triples.
func FromTriangles(points []Point, tris [][3]int) (*Mesh, error) {
	faces := make([]Face, len(tris))
	for i, t := range tris {
		faces[i] = NewTriangle(t[0], t[1], t[2])
	}

	return New(points, faces)
}

// Validate checks that every live face references existing, distinct points.
// Removed faces are skipped. The first offending face is named in the error.
//
// Complexity: O(F).
func (m *Mesh) Validate() error {
	n := len(m.Points)
	for fi, f := range m.Faces {
		k := f.Len()
		for i := 0; i < k; i++ {
			p := f.idx[i]
			if p < 0 || p >= n {
				return fmt.Errorf("face %d corner %d (point %d, %d points): %w", fi, i, p, n, ErrPointOutOfRange)
			}
			for j := 0; j < i; j++ {
				if f.idx[j] == p {
					return fmt.Errorf("face %d %s: %w", fi, f, ErrDegenerateFace)
				}
			}
		}
	}

	return nil
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Points: make([]Point, len(m.Points)),
		Faces:  make([]Face, len(m.Faces)),
	}
	copy(out.Points, m.Points)
	copy(out.Faces, m.Faces)

	return out
}

// AddPoint appends p and returns its index.
func (m *Mesh) AddPoint(p Point) int {
	m.Points = append(m.Points, p)

	return len(m.Points) - 1
}

// Compact drops removed faces in place, preserving the relative order of the
// remaining ones, and returns how many faces were dropped.
//
// Complexity: O(F), no allocation.
func (m *Mesh) Compact() int {
	kept := m.Faces[:0]
	for _, f := range m.Faces {
		switch f.shape {
		case Triangle, Quad:
			kept = append(kept, f)
		case Removed:
			// dropped
		}
	}
	dropped := len(m.Faces) - len(kept)
	// clear the tail so stale faces are not retained by the backing array
	for i := len(kept); i < len(m.Faces); i++ {
		m.Faces[i] = RemovedFace
	}
	m.Faces = kept

	return dropped
}

// Counts returns the number of triangles, quads and removed faces.
func (m *Mesh) Counts() (triangles, quads, removed int) {
	for _, f := range m.Faces {
		switch f.shape {
		case Triangle:
			triangles++
		case Quad:
			quads++
		default:
			removed++
		}
	}

	return triangles, quads, removed
}

// PointFaces returns, for every point, the indices of the live faces using it,
// in ascending face order. Points used by no face get a nil entry.
//
// Complexity: O(P + F).
func (m *Mesh) PointFaces() [][]int {
	out := make([][]int, len(m.Points))
	for fi, f := range m.Faces {
		for i := 0; i < f.Len(); i++ {
			p := f.idx[i]
			out[p] = append(out[p], fi)
		}
	}

	return out
}

// Sides returns the oriented sides of face fi in CCW order; side i runs from
// corner i to corner i+1. A removed face has no sides.
func (m *Mesh) Sides(fi int) []Side {
	f := m.Faces[fi]
	k := f.Len()
	out := make([]Side, k)
	for i := 0; i < k; i++ {
		out[i] = Side{From: f.idx[i], To: f.idx[(i+1)%k], Face: fi}
	}

	return out
}

// BoundarySides returns every oriented side whose reverse is not used by any
// live face, ordered by face index then corner. Triangles and quads both count.
//
// Returns ErrNonManifold if one oriented side appears in two faces.
//
// Complexity: O(F) expected time and space.
func (m *Mesh) BoundarySides() ([]Side, error) {
	type key struct{ from, to int }
	seen := make(map[key]int, 4*len(m.Faces))
	for fi := range m.Faces {
		for _, s := range m.Sides(fi) {
			k := key{s.From, s.To}
			if other, dup := seen[k]; dup {
				return nil, fmt.Errorf("side %d→%d in faces %d and %d: %w", s.From, s.To, other, fi, ErrNonManifold)
			}
			seen[k] = fi
		}
	}

	var out []Side
	for fi := range m.Faces {
		for _, s := range m.Sides(fi) {
			if _, ok := seen[key{s.To, s.From}]; !ok {
				out = append(out, s)
			}
		}
	}

	return out, nil
}
