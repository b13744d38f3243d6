// SPDX-License-Identifier: MIT

package boundary

// DefaultForce is the load magnitude applied on the y DOF (negative: downward).
const DefaultForce = -10.0

// cornerFraction of the nodes along an edge clamped by a corner support.
const cornerFraction = 0.2

// Option customizes Resolve.
type Option func(*options)

type options struct {
	force      float64
	cornerSpan int // 0 = derive from the mesh width
}

func defaultOptions() options {
	return options{force: DefaultForce}
}

// WithForce sets the load magnitude (default DefaultForce).
func WithForce(f float64) Option {
	return func(o *options) { o.force = f }
}

// WithCornerSpan sets how many nodes a corner support clamps along its edge.
// Values ≤ 0 restore the default max(1, round(0.2*(nelx+1))); values wider
// than the edge are clipped to it.
func WithCornerSpan(n int) Option {
	return func(o *options) { o.cornerSpan = n }
}
