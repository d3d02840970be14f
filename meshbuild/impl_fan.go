// SPDX-License-Identifier: MIT
// Package: quadmesh/meshbuild
//
// impl_fan.go - Fan(n) and Wheel(n).
//
// Fan: hub 0 at the origin, rim points 1..n+1 at distance spacing and angles
// (i-1)·π/(n+1), triangles (0, i, i+1). The hub is a boundary point whose fan
// chain holds all n triangles.
//
// Wheel: hub 0, rim points 1..n evenly around the full circle, triangles
// (0, i, i%n+1). The hub is interior.

package meshbuild

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadmesh/mesh"
)

const (
	methodFan   = "Fan"
	methodWheel = "Wheel"
	minFan      = 1
	minWheel    = 3
)

// Fan builds an open fan of n triangles around point 0.
func Fan(n int, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)
	if n < minFan {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodFan, n, minFan, ErrTooFewCells)
	}

	step := math.Pi / float64(n+1)
	points := make([]mesh.Point, 0, n+2)
	points = append(points, cfg.at(0, 0))
	for i := 0; i <= n; i++ {
		a := float64(i) * step
		points = append(points, cfg.at(math.Cos(a), math.Sin(a)))
	}

	faces := make([]mesh.Face, 0, n)
	for i := 1; i <= n; i++ {
		faces = append(faces, mesh.NewTriangle(0, i, i+1))
	}

	m, err := mesh.New(points, faces)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFan, err)
	}

	return m, nil
}

// Wheel builds a closed fan of n triangles around interior point 0.
func Wheel(n int, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)
	if n < minWheel {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheel, ErrTooFewCells)
	}

	step := 2 * math.Pi / float64(n)
	points := make([]mesh.Point, 0, n+1)
	points = append(points, cfg.at(0, 0))
	for i := 0; i < n; i++ {
		a := float64(i) * step
		points = append(points, cfg.at(math.Cos(a), math.Sin(a)))
	}

	faces := make([]mesh.Face, 0, n)
	for i := 1; i <= n; i++ {
		faces = append(faces, mesh.NewTriangle(0, i, i%n+1))
	}

	m, err := mesh.New(points, faces)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWheel, err)
	}

	return m, nil
}
