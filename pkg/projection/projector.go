// Package projection maps road segments onto the screen with a pinhole
// perspective divide.
package projection

import (
	"fmt"

	"github.com/golangdaddy/outrun/pkg/track"
)

// Viewport describes the screen and camera lens the road is projected onto.
type Viewport struct {
	Width      float64 // Logical screen width in pixels
	Height     float64 // Logical screen height in pixels
	TrackWidth float64 // Road half-width in world units
	FocalDepth float64 // Camera depth, scales world units at unit distance
}

// Projection is the screen-space result for one segment in one frame.
// X, Y is the road centre line; W is the road half-width in pixels.
type Projection struct {
	X, Y, W float64
	Scale   float64
}

// Project returns where seg lands on screen when viewed from (camX, camY, camZ).
// camZ must be strictly behind the segment; a zero or negative depth means the
// caller picked a segment it should never have projected, and Project panics.
func (v Viewport) Project(seg track.Segment, camX, camY, camZ float64) Projection {
	depth := seg.Z - camZ
	if depth <= 0 {
		panic(fmt.Sprintf("projection: segment %d at depth %v", seg.Index, depth))
	}

	scale := v.FocalDepth / depth
	halfW := v.Width / 2
	halfH := v.Height / 2

	return Projection{
		X:     (1 + scale*(seg.X-camX)) * halfW,
		Y:     (1 - scale*(seg.Y-camY)) * halfH,
		W:     scale * v.TrackWidth * halfW,
		Scale: scale,
	}
}
