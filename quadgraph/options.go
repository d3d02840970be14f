package quadgraph

// Options configures Build.
//
// BoundarySplits – emit Split candidates for open fans of three or more
//
//	triangles. Default false.
//
// SplitWeight    – candidate weight of every split. Default DefaultSplitWeight.
type Options struct {
	BoundarySplits bool
	SplitWeight    int64
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns the defaults: no splits, DefaultSplitWeight.
func DefaultOptions() Options {
	return Options{
		BoundarySplits: false,
		SplitWeight:    DefaultSplitWeight,
	}
}

// WithBoundarySplits enables or disables split candidates.
func WithBoundarySplits(on bool) Option {
	return func(o *Options) {
		o.BoundarySplits = on
	}
}

// WithSplitWeight overrides the weight of split candidates.
func WithSplitWeight(w int64) Option {
	return func(o *Options) {
		o.SplitWeight = w
	}
}
