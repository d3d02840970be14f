package quadify

import (
	"log/slog"

	"github.com/katalvlaran/quadmesh/cost"
	"github.com/katalvlaran/quadmesh/quadgraph"
)

// Options configures Convert.
//
// BoundarySplits – offer split candidates at boundary fans. Default false.
// Variant        – merge scoring formula. Default cost.Angle.
// SplitWeight    – weight of split candidates. Default quadgraph.DefaultSplitWeight.
// MaxCardinality – pair as many triangles as possible before maximising
//
//	quality. Default true.
//
// VerifyOptimum  – re-check the matching's optimality certificate. Default false.
// Logger         – overrides quadmesh.Logger() for this call. Default nil.
type Options struct {
	BoundarySplits bool
	Variant        cost.Variant
	SplitWeight    int64
	MaxCardinality bool
	VerifyOptimum  bool
	Logger         *slog.Logger
}

// Option represents a functional option for configuring Convert.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		BoundarySplits: false,
		Variant:        cost.Angle,
		SplitWeight:    quadgraph.DefaultSplitWeight,
		MaxCardinality: true,
		VerifyOptimum:  false,
	}
}

// WithBoundarySplits enables or disables split candidates.
func WithBoundarySplits(on bool) Option {
	return func(o *Options) {
		o.BoundarySplits = on
	}
}

// WithCostVariant selects the scoring formula.
func WithCostVariant(v cost.Variant) Option {
	return func(o *Options) {
		o.Variant = v
	}
}

// WithSplitWeight overrides the weight of split candidates.
func WithSplitWeight(w int64) Option {
	return func(o *Options) {
		o.SplitWeight = w
	}
}

// WithMaxCardinality toggles the maximum-cardinality constraint.
func WithMaxCardinality(on bool) Option {
	return func(o *Options) {
		o.MaxCardinality = on
	}
}

// WithVerifyOptimum enables the matching certificate check.
func WithVerifyOptimum() Option {
	return func(o *Options) {
		o.VerifyOptimum = true
	}
}

// WithLogger routes this call's log records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("quadify: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
