package models

// Camera is the viewer riding along the track.
// X and DX are scratch accumulators for the render sweep: they start each
// frame at zero and pick up curvature segment by segment.
type Camera struct {
	X  float64 // Accumulated lateral drift
	Y  float64 // Height in world units (segment elevation + camera height)
	Z  float64 // Longitudinal position, always inside one lap
	DX float64 // Per-segment drift increment
}

// Reset clears everything except the longitudinal position.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.DX = 0
}

// Drift advances the lateral accumulators past one segment of the given
// curvature. The order matters: X takes the increment from before this
// segment, so each farther segment bends a little more than the last.
func (c *Camera) Drift(curvature float64) {
	c.X += c.DX
	c.DX += curvature
}
