// Package spline builds Catmull-Rom curves from sparse waypoints and
// resamples them at near-uniform arc length.
//
// A Spline is a list of Segments, one per pair of consecutive waypoints, and
// every Segment is a fixed-resolution polyline of Lines. Curves grown point by
// point with PushBack share the same representation, which is how Approx
// emits its output.
package spline

const (
	// DefaultEps is the parametric step used to subdivide a segment.
	DefaultEps float32 = 0.01
	// DefaultApproxPoints is the number of points Approx aims for.
	DefaultApproxPoints = 60
	// DefaultApproxEps is the scanning step used by Approx.
	DefaultApproxEps float32 = 0.001
)
