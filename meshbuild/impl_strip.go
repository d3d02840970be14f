// SPDX-License-Identifier: MIT
// Package: quadmesh/meshbuild
//
// impl_strip.go - Strip(n).
//
// Points 0..n+1 alternate between the bottom row (even k at x=k/2) and the
// top row (odd k at x=k/2, y=1). Triangle k uses points k, k+1, k+2, ordered
// counter-clockwise. Consecutive triangles share one side.

package meshbuild

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/mesh"
)

const (
	methodStrip = "Strip"
	minStrip    = 1
)

// Strip builds a zig-zag strip of n triangles.
func Strip(n int, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)
	if n < minStrip {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStrip, n, minStrip, ErrTooFewCells)
	}

	points := make([]mesh.Point, 0, n+2)
	for k := 0; k < n+2; k++ {
		points = append(points, cfg.at(float64(k)/2, float64(k%2)))
	}

	faces := make([]mesh.Face, 0, n)
	for k := 0; k < n; k++ {
		if k%2 == 0 {
			faces = append(faces, mesh.NewTriangle(k, k+2, k+1))
		} else {
			faces = append(faces, mesh.NewTriangle(k, k+1, k+2))
		}
	}

	m, err := mesh.New(points, faces)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStrip, err)
	}

	return m, nil
}
