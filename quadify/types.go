package quadify

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Rewrite and Convert.
var (
	// ErrNotTriangle indicates that a matched face is not a triangle or does
	// not hold the point the candidate expects.
	ErrNotTriangle = errors.New("quadify: matched face is not the expected triangle")

	// ErrMatchingSize indicates that the matching does not cover exactly the
	// graph's faces.
	ErrMatchingSize = errors.New("quadify: matching size does not match face count")
)

// Report summarises one conversion.
type Report struct {
	Faces         int   // faces in the result
	Quads         int   // quads in the result
	Triangles     int   // triangles in the result
	Merged        int   // interior pairs merged
	Splits        int   // splits executed
	Unmatched     int   // input triangles left as triangles
	Weight        int64 // total candidate weight of the matching
	BoundaryEdges int   // boundary edges of the input triangles
}

func (r Report) String() string {
	return fmt.Sprintf("faces=%d quads=%d triangles=%d merged=%d splits=%d unmatched=%d weight=%d boundary=%d",
		r.Faces, r.Quads, r.Triangles, r.Merged, r.Splits, r.Unmatched, r.Weight, r.BoundaryEdges)
}
