// SPDX-License-Identifier: MIT
// Package: quadmesh/meshbuild
//
// impl_grid.go - TriGrid(rows, cols).
//
// Model:
//   • (rows+1)×(cols+1) lattice points, row-major: index r*(cols+1)+c at
//     lattice coordinate (c, r).
//   • Cell (r,c) with corners a=(r,c) b=(r,c+1) d=(r+1,c+1) e=(r+1,c) becomes
//     (a,b,d),(a,d,e), or (a,b,e),(b,d,e) when its diagonal is flipped.
//   • Faces are emitted cell by cell, row-major, two per cell.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewCells).
//   • WithJitter > 0 requires an RNG (else ErrNeedRandSource); only interior
//     points move, so the outline stays a rectangle.

package meshbuild

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/mesh"
)

const (
	methodTriGrid = "TriGrid"
	minGridDim    = 1
)

// TriGrid builds a rows×cols grid of cells, two triangles per cell.
func TriGrid(rows, cols int, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodTriGrid, rows, cols, minGridDim, ErrTooFewCells)
	}
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: jitter=%g: %w", methodTriGrid, cfg.jitter, ErrNeedRandSource)
	}

	width := cols + 1
	points := make([]mesh.Point, 0, (rows+1)*width)
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			x, y := float64(c), float64(r)
			interior := r > 0 && r < rows && c > 0 && c < cols
			if interior && cfg.jitter > 0 {
				x += cfg.jitter * (2*cfg.rng.Float64() - 1)
				y += cfg.jitter * (2*cfg.rng.Float64() - 1)
			}
			points = append(points, cfg.at(x, y))
		}
	}

	id := func(r, c int) int { return r*width + c }
	faces := make([]mesh.Face, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a, b := id(r, c), id(r, c+1)
			d, e := id(r+1, c+1), id(r+1, c)
			if cfg.alternating && (r+c)%2 == 1 {
				faces = append(faces, mesh.NewTriangle(a, b, e), mesh.NewTriangle(b, d, e))
			} else {
				faces = append(faces, mesh.NewTriangle(a, b, d), mesh.NewTriangle(a, d, e))
			}
		}
	}

	m, err := mesh.New(points, faces)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTriGrid, err)
	}

	return m, nil
}
