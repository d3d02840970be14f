// SPDX-License-Identifier: MIT
// Package: quadmesh/meshbuild
//
// errors.go - sentinel errors for the meshbuild package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w, prefixed by the constructor name.
//   • Option constructors panic on invalid values; constructors never do.

package meshbuild

import "errors"

// ErrTooFewCells indicates that a size parameter (rows, cols, n) is below the
// constructor's minimum.
var ErrTooFewCells = errors.New("meshbuild: parameter too small")

// ErrNeedRandSource indicates that WithJitter was requested without an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("meshbuild: rng is required")
