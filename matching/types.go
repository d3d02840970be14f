package matching

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by MatchWeights.
var (
	// ErrNegativeVertexCount indicates that n < 0 was passed to MatchWeights.
	ErrNegativeVertexCount = errors.New("matching: negative vertex count")

	// ErrVertexOutOfRange indicates that an edge endpoint is outside [0, n).
	ErrVertexOutOfRange = errors.New("matching: edge endpoint out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("matching: self-loop edge")

	// ErrDuplicateEdge indicates two edges joining the same pair of vertices.
	ErrDuplicateEdge = errors.New("matching: duplicate edge")

	// ErrInvariant indicates that the solver reached a state its invariants forbid.
	// It signals a defect in the solver, never a problem with the input.
	ErrInvariant = errors.New("matching: internal invariant violated")

	// ErrNotOptimal indicates that the dual certificate check requested with
	// WithVerifyOptimum failed.
	ErrNotOptimal = errors.New("matching: optimality certificate violated")
)

// Edge is an undirected, weighted candidate pair.
type Edge struct {
	U, V   int   // endpoints, U != V
	Weight int64 // desirability; may be negative
}

// String renders the edge as "U–V(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d–%d(%d)", e.U, e.V, e.Weight)
}

// Options configures MatchWeights.
//
// MaxCardinality – only maximum-cardinality matchings are considered; among
//
//	those the heaviest is returned. Default false.
//
// VerifyOptimum  – after solving, re-check the primal-dual optimality
//
//	conditions and fail with ErrNotOptimal if one is violated. Default false.
type Options struct {
	MaxCardinality bool
	VerifyOptimum  bool
}

// Option represents a functional option for configuring MatchWeights.
type Option func(*Options)

// DefaultOptions returns the defaults: plain maximum weight, no certificate check.
func DefaultOptions() Options {
	return Options{
		MaxCardinality: false,
		VerifyOptimum:  false,
	}
}

// WithMaxCardinality restricts the search to maximum-cardinality matchings.
func WithMaxCardinality() Option {
	return func(o *Options) {
		o.MaxCardinality = true
	}
}

// WithVerifyOptimum enables the post-solve dual certificate check.
func WithVerifyOptimum() Option {
	return func(o *Options) {
		o.VerifyOptimum = true
	}
}
