package geometry

import "runtime"

// TorusKnotOption is a function that configures a torus knot tessellation.
type TorusKnotOption func(*torusKnotConfig)

// defaultWorkers returns the tessellation worker count: one per CPU
// minus one reserved for the caller, never less than one.
func defaultWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}

// WithKnot is an option builder that sets the (p, q) winding numbers of
// the knot. Values below 1 are coerced to 1.
//
// Parameters:
//   - p: windings around the torus axis of symmetry
//   - q: windings around the torus interior circle
//
// Returns:
//   - TorusKnotOption: a function that applies the winding option to the config
func WithKnot(p, q int) TorusKnotOption {
	return func(cfg *torusKnotConfig) {
		cfg.p = max(p, 1)
		cfg.q = max(q, 1)
	}
}

// WithTorusRadius is an option builder that sets the overall knot radius.
//
// Parameters:
//   - radius: the knot radius in world units
//
// Returns:
//   - TorusKnotOption: a function that applies the radius option to the config
func WithTorusRadius(radius float32) TorusKnotOption {
	return func(cfg *torusKnotConfig) {
		cfg.radius = radius
	}
}

// WithTubeRadius is an option builder that sets the tube radius.
//
// Parameters:
//   - tube: the tube radius in world units
//
// Returns:
//   - TorusKnotOption: a function that applies the tube option to the config
func WithTubeRadius(tube float32) TorusKnotOption {
	return func(cfg *torusKnotConfig) {
		cfg.tube = tube
	}
}

// WithSegments is an option builder that sets the tessellation density.
// Values below 3 are coerced to 3 so the surface stays manifold.
//
// Parameters:
//   - tubular: segment count along the knot centerline
//   - radial: segment count around the tube
//
// Returns:
//   - TorusKnotOption: a function that applies the segment option to the config
func WithSegments(tubular, radial int) TorusKnotOption {
	return func(cfg *torusKnotConfig) {
		cfg.tubularSegments = max(tubular, 3)
		cfg.radialSegments = max(radial, 3)
	}
}

// WithWorkers is an option builder that sets the tessellation worker
// count. Values below 1 are coerced to 1.
//
// Parameters:
//   - workers: the worker pool size
//
// Returns:
//   - TorusKnotOption: a function that applies the worker option to the config
func WithWorkers(workers int) TorusKnotOption {
	return func(cfg *torusKnotConfig) {
		cfg.workers = max(workers, 1)
	}
}
