package backdrop

// LandingRoute is the route where pointer interaction and cursor glow are shown.
const LandingRoute = "/"

// Options are sampled once when Engine is created.
// Nothing here is read from process wide state.
type Options struct {
	// platform asked for reduced motion
	ReducedMotion bool

	// primary pointer is coarse (touch)
	CoarsePointer bool

	// Sparkles keep pulsing under ReducedMotion when true.
	// Default freezes them with everything else.
	SparklesIgnoreReducedMotion bool

	// current page route, "/" if empty
	Route string

	// 0 picks a random seed
	Seed uint64

	// nil uses DefaultTheme
	Theme *Theme
}

func (o Options) route() string {
	if o.Route == "" {
		return LandingRoute
	}
	return o.Route
}

func (o Options) sparklesMove() bool {
	return !o.ReducedMotion || o.SparklesIgnoreReducedMotion
}
