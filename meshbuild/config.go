// SPDX-License-Identifier: MIT
// Package: quadmesh/meshbuild
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • spacing     = 1.0
//   • origin      = (0,0,0)
//   • rng         = nil   (no randomness unless seeded)
//   • jitter      = 0     (points on the exact lattice)
//   • alternating = false (every cell split along the same diagonal)

package meshbuild

import (
	"math/rand"

	"github.com/katalvlaran/quadmesh/mesh"
)

// config aggregates all knobs used by constructors. Passed by value.
type config struct {
	spacing     float64
	origin      mesh.Point
	rng         *rand.Rand
	jitter      float64
	alternating bool
}

const (
	defaultSpacing = 1.0
	maxJitter      = 0.5 // beyond half a cell, triangles may flip
)

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{spacing: defaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at places the lattice coordinate (x, y), in units of spacing, relative to
// the origin.
func (c config) at(x, y float64) mesh.Point {
	return mesh.Point{
		X: c.origin.X + x*c.spacing,
		Y: c.origin.Y + y*c.spacing,
		Z: c.origin.Z,
	}
}
