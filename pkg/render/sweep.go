// Package render draws the road by sweeping outward from the camera and
// culling anything that falls behind the horizon nearer segments have
// already drawn.
package render

import (
	"github.com/golangdaddy/outrun/pkg/projection"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/track"
)

// Band is the strip of road between two consecutive projected segments.
type Band struct {
	Index int // Ring index of the far segment
	Near  projection.Projection
	Far   projection.Projection
	Light bool // Stripe parity
}

// Step records what the sweep did with one segment.
type Step struct {
	Index      int
	Projection projection.Projection
	Depth      float64 // Unwrapped distance ahead of the camera
	DriftX     float64 // Camera X used to project this segment
	DriftDX    float64 // Camera DX after this segment was accumulated
	Drawn      bool
	HorizonY   float64 // Occlusion limit in force before this segment
}

// Result is one frame's sweep. Slices are owned by the Sweeper and are
// overwritten by its next Sweep.
type Result struct {
	Bands   []Band
	Steps   []Step
	Horizon float64 // Highest screen row any drawn segment reached
}

// Options tunes the sweep.
type Options struct {
	LookAhead   int // Segments projected ahead of the camera
	StripeWidth int // Segments per colour stripe
}

// Sweeper projects and culls the visible stretch of road.
type Sweeper struct {
	track    *track.Track
	viewport projection.Viewport
	opts     Options

	bands []Band
	steps []Step
}

// NewSweeper returns a sweeper for tr viewed through vp.
func NewSweeper(tr *track.Track, vp projection.Viewport, opts Options) *Sweeper {
	if opts.StripeWidth <= 0 {
		opts.StripeWidth = 1
	}
	return &Sweeper{
		track:    tr,
		viewport: vp,
		opts:     opts,
		bands:    make([]Band, 0, opts.LookAhead),
		steps:    make([]Step, 0, opts.LookAhead),
	}
}

// Sweep walks LookAhead segments outward from the one under the camera,
// nearest first. Each segment is projected, then folds its curvature into
// the camera drift, then is drawn only if it rises above every nearer
// segment. The segment under the camera itself only contributes its
// curvature; it is never projected, so depth is always positive.
func (s *Sweeper) Sweep(f sim.Frame) Result {
	s.bands = s.bands[:0]
	s.steps = s.steps[:0]

	n := s.track.Len()
	segLen := s.track.SegmentLength()
	lap := s.track.Length()
	baseZ := float64(f.StartIndex) * segLen
	steerX := f.Player.LateralOffset * s.viewport.TrackWidth

	cam := f.Camera
	maxY := s.viewport.Height
	var prev projection.Projection
	havePrev := false

	// The segment under the camera is never projected but its bend still
	// counts towards the drift of everything ahead of it.
	cam.Drift(s.track.At(f.StartIndex).Curvature)

	for k := 1; k <= s.opts.LookAhead; k++ {
		i := f.StartIndex + k
		seg := s.track.At(i)

		// Past the seam the ring index restarts at zero; pull the camera
		// back a lap for every seam crossed so depth keeps increasing.
		camZ := baseZ - float64(i/n)*lap

		driftX := cam.X
		p := s.viewport.Project(seg, steerX-driftX, cam.Y, camZ)
		cam.Drift(seg.Curvature)

		step := Step{
			Index:      seg.Index,
			Projection: p,
			Depth:      seg.Z - camZ,
			DriftX:     driftX,
			DriftDX:    cam.DX,
			HorizonY:   maxY,
		}

		if !havePrev {
			// Nothing nearer was projected; close the gap down to the
			// bottom of the screen.
			prev = projection.Projection{X: p.X, Y: s.viewport.Height, W: p.W, Scale: p.Scale}
			havePrev = true
		}

		if p.Y < maxY {
			maxY = p.Y
			step.Drawn = true
			s.bands = append(s.bands, Band{
				Index: seg.Index,
				Near:  prev,
				Far:   p,
				Light: (seg.Index/s.opts.StripeWidth)%2 == 1,
			})
		}

		s.steps = append(s.steps, step)
		prev = p
	}

	return Result{
		Bands:   s.bands,
		Steps:   s.steps,
		Horizon: maxY,
	}
}
