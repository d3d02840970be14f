package mesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh construction and queries.
var (
	// ErrEmptyMesh indicates that a mesh without faces was passed where faces are required.
	ErrEmptyMesh = errors.New("mesh: no faces")

	// ErrPointOutOfRange indicates that a face references a non-existent point.
	ErrPointOutOfRange = errors.New("mesh: point index out of range")

	// ErrDegenerateFace indicates that a face repeats one of its point indices.
	ErrDegenerateFace = errors.New("mesh: face repeats a point")

	// ErrNonManifold indicates that one oriented side is shared by two faces,
	// i.e. the faces overlap or are inconsistently oriented.
	ErrNonManifold = errors.New("mesh: oriented side used by more than one face")
)

// Point is a mesh vertex location.
type Point = r3.Vec

// Shape tags the variant held by a Face.
type Shape uint8

const (
	// Removed marks a face eliminated by a merge; Compact drops it.
	Removed Shape = iota
	// Triangle is a three-point face.
	Triangle
	// Quad is a four-point face.
	Quad
)

// String returns the lower-case shape name.
func (s Shape) String() string {
	switch s {
	case Removed:
		return "removed"
	case Triangle:
		return "triangle"
	case Quad:
		return "quad"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Face is an ordered, counter-clockwise sequence of 3 or 4 point indices, or
// the Removed marker. The zero value is RemovedFace.
type Face struct {
	shape Shape
	idx   [4]int
}

// RemovedFace is the face left behind by a merge.
var RemovedFace = Face{}

// NewTriangle returns the triangle (a, b, c).
func NewTriangle(a, b, c int) Face {
	return Face{shape: Triangle, idx: [4]int{a, b, c, 0}}
}

// NewQuad returns the quad (a, b, c, d).
func NewQuad(a, b, c, d int) Face {
	return Face{shape: Quad, idx: [4]int{a, b, c, d}}
}

// Shape reports the face variant.
func (f Face) Shape() Shape { return f.shape }

// Len returns the number of corners: 3, 4, or 0 for a removed face.
func (f Face) Len() int {
	switch f.shape {
	case Triangle:
		return 3
	case Quad:
		return 4
	default:
		return 0
	}
}

// At returns corner i (0 ≤ i < Len()). Indices wrap modulo Len().
func (f Face) At(i int) int {
	n := f.Len()
	if n == 0 {
		panic("mesh: At on removed face")
	}

	return f.idx[((i%n)+n)%n]
}

// Indices returns a fresh slice of the corner indices.
func (f Face) Indices() []int {
	out := make([]int, f.Len())
	copy(out, f.idx[:f.Len()])

	return out
}

// IsTriangle reports whether f is a triangle.
func (f Face) IsTriangle() bool { return f.shape == Triangle }

// IsQuad reports whether f is a quad.
func (f Face) IsQuad() bool { return f.shape == Quad }

// IsRemoved reports whether f was eliminated.
func (f Face) IsRemoved() bool { return f.shape == Removed }

// IndexOf returns the corner position of point p, or -1 when f does not use p.
func (f Face) IndexOf(p int) int {
	for i := 0; i < f.Len(); i++ {
		if f.idx[i] == p {
			return i
		}
	}

	return -1
}

// Contains reports whether f uses point p.
func (f Face) Contains(p int) bool { return f.IndexOf(p) >= 0 }

// Replace returns a copy of f with every occurrence of old replaced by repl.
func (f Face) Replace(old, repl int) Face {
	for i := 0; i < f.Len(); i++ {
		if f.idx[i] == old {
			f.idx[i] = repl
		}
	}

	return f
}

// String renders the face as "{a,b,c}" or "{}" when removed.
func (f Face) String() string {
	switch f.shape {
	case Triangle:
		return fmt.Sprintf("{%d,%d,%d}", f.idx[0], f.idx[1], f.idx[2])
	case Quad:
		return fmt.Sprintf("{%d,%d,%d,%d}", f.idx[0], f.idx[1], f.idx[2], f.idx[3])
	default:
		return "{}"
	}
}

// Side is an oriented face side From→To. The face lies on its left.
type Side struct {
	From, To int
	Face     int
}
