// Package track holds the circular road the camera drives around: an arena
// of fixed Segments built once from a Recipe, plus the ring arithmetic that
// turns it into an endless loop.
package track

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmpty is returned when a track would have no segments.
var ErrEmpty = errors.New("track: no segments")

// Track is an ordered, logically circular sequence of segments.
// It is immutable once built.
type Track struct {
	segments      []Segment
	segmentLength float64
}

// Build generates n segments of the given length from recipe.
// The result depends only on its arguments.
func Build(n int, segmentLength float64, recipe Recipe) (*Track, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	if segmentLength <= 0 || math.IsNaN(segmentLength) || math.IsInf(segmentLength, 0) {
		return nil, fmt.Errorf("track: invalid segment length %v", segmentLength)
	}
	if err := recipe.Validate(n); err != nil {
		return nil, fmt.Errorf("track: invalid recipe: %w", err)
	}

	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{
			Index:     i,
			Z:         float64(i) * segmentLength,
			Y:         recipe.elevationAt(i),
			Curvature: recipe.curvatureAt(i, n),
		}
	}

	return &Track{
		segments:      segments,
		segmentLength: segmentLength,
	}, nil
}

// Len returns the number of segments.
func (t *Track) Len() int {
	return len(t.segments)
}

// SegmentLength returns the longitudinal size of one segment.
func (t *Track) SegmentLength() float64 {
	return t.segmentLength
}

// Length returns the distance covered by one lap.
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * t.segmentLength
}

// At returns the segment at ring position i. Any integer is accepted.
func (t *Track) At(i int) Segment {
	return t.segments[RingIndex(i, len(t.segments))]
}

// Segments returns a copy of the arena, for inspection.
func (t *Track) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// WrapZ folds a longitudinal position back into [0, Length()).
// It repeatedly subtracts or adds one lap rather than using a float modulo,
// so a negative speed walks backwards across the seam the same way a
// positive one walks forwards.
func (t *Track) WrapZ(z float64) float64 {
	length := t.Length()
	for z >= length {
		z -= length
	}
	for z < 0 {
		z += length
	}
	// A tiny negative z can round up to exactly one lap.
	if z >= length {
		z = 0
	}
	return z
}

// IndexAt returns the index of the segment containing the wrapped position z.
// z outside [0, Length()) is a programming error.
func (t *Track) IndexAt(z float64) int {
	i := int(math.Floor(z / t.segmentLength))
	if i < 0 || i >= len(t.segments) {
		panic(fmt.Sprintf("track: position %v outside lap of %v", z, t.Length()))
	}
	return i
}
