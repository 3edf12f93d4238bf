package track

import (
	"fmt"
	"math"
)

// Zone assigns a constant curvature to a contiguous, half-open range of
// segment indices. An End of zero or less runs the zone to the last segment.
type Zone struct {
	Start     int     `yaml:"start"`
	End       int     `yaml:"end"`
	Curvature float64 `yaml:"curvature"`
}

// Hill lifts every segment past After onto a sine wave.
// A zero Amplitude leaves the track flat.
type Hill struct {
	After     int     `yaml:"after"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// Recipe is the procedural description a Track is built from.
// Indices not covered by any zone are straight.
type Recipe struct {
	Zones []Zone `yaml:"zones"`
	Hill  Hill   `yaml:"hill"`
}

// DefaultRecipe is the reference layout: a straight run, a long right-hander,
// another straight, a left-hander to the end of the lap, and rolling hills
// over the back half.
func DefaultRecipe() Recipe {
	return Recipe{
		Zones: []Zone{
			{Start: 300, End: 700, Curvature: 0.5},
			{Start: 1100, Curvature: -0.7},
		},
		Hill: Hill{
			After:     750,
			Amplitude: 1500,
			Frequency: 0.04,
		},
	}
}

// Validate checks the recipe against a track of n segments.
// Zones may not overlap and must lie inside [0, n).
func (r Recipe) Validate(n int) error {
	for i, z := range r.Zones {
		end := z.end(n)
		if z.Start < 0 || z.Start >= n || end > n || end <= z.Start {
			return fmt.Errorf("zone %d [%d,%d) outside track of %d segments", i, z.Start, z.End, n)
		}
		for j := 0; j < i; j++ {
			other := r.Zones[j]
			if z.Start < other.end(n) && other.Start < end {
				return fmt.Errorf("zone %d overlaps zone %d", i, j)
			}
		}
	}
	if r.Hill.Amplitude != 0 && r.Hill.Frequency == 0 {
		return fmt.Errorf("hill has amplitude %v but zero frequency", r.Hill.Amplitude)
	}
	return nil
}

func (z Zone) end(n int) int {
	if z.End <= 0 {
		return n
	}
	return z.End
}

// curvatureAt returns the curvature of the first zone containing i.
func (r Recipe) curvatureAt(i, n int) float64 {
	for _, z := range r.Zones {
		if i >= z.Start && i < z.end(n) {
			return z.Curvature
		}
	}
	return 0
}

// elevationAt returns the hill height at index i.
func (r Recipe) elevationAt(i int) float64 {
	if r.Hill.Amplitude == 0 || i <= r.Hill.After {
		return 0
	}
	return r.Hill.Amplitude * math.Sin(r.Hill.Frequency*float64(i))
}
