// SPDX-License-Identifier: MIT
// Package: quadmesh/meshbuild
//
// options.go - functional options for the meshbuild package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed / WithRand.

package meshbuild

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/quadmesh/mesh"
)

// Option customizes a constructor by mutating its config before any point is
// placed.
type Option func(*config)

// WithSpacing sets the lattice step (> 0). Panics otherwise.
func WithSpacing(d float64) Option {
	if !(d > 0) || math.IsInf(d, 0) {
		panic("meshbuild: WithSpacing(d<=0)")
	}
	return func(c *config) {
		c.spacing = d
	}
}

// WithOrigin translates the whole mesh so that lattice (0,0) lands on p.
func WithOrigin(p mesh.Point) Option {
	return func(c *config) {
		c.origin = p
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("meshbuild: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter displaces every interior lattice point of TriGrid by up to
// frac·spacing along X and Y. frac must lie in [0, 0.5); panics otherwise.
func WithJitter(frac float64) Option {
	if frac < 0 || frac >= maxJitter || math.IsNaN(frac) {
		panic("meshbuild: WithJitter(frac outside [0,0.5))")
	}
	return func(c *config) {
		c.jitter = frac
	}
}

// WithAlternatingDiagonals splits TriGrid cells along alternating diagonals
// in a checkerboard pattern.
func WithAlternatingDiagonals() Option {
	return func(c *config) {
		c.alternating = true
	}
}
