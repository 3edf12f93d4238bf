package track

// Segment is one longitudinal slice of road.
// All fields are fixed once the track is built; screen-space projection is
// computed per frame by the renderer and never stored here.
type Segment struct {
	Index     int     // Position in the track (0..N-1)
	X         float64 // Lateral world position of the road centre, always 0 for now
	Y         float64 // Elevation above the baseline
	Z         float64 // Distance from the track origin (Index * segment length)
	Curvature float64 // Signed lateral bend, positive bends right
}

// Straight reports whether the segment has no curvature.
func (s Segment) Straight() bool {
	return s.Curvature == 0
}
