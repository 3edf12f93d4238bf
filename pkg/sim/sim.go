// Package sim advances the camera and player around the track one fixed tick
// at a time.
package sim

import (
	"github.com/golangdaddy/outrun/pkg/input"
	"github.com/golangdaddy/outrun/pkg/models"
	"github.com/golangdaddy/outrun/pkg/track"
)

// Frame is a snapshot of the simulation after a tick. The renderer only ever
// sees a Frame, never the live simulation.
type Frame struct {
	Tick         uint64
	Camera       models.Camera
	Player       models.Player
	CameraHeight float64 // Offset added to the ground elevation under the camera
	StartIndex   int     // Segment under the camera
	BackdropX    float64 // Horizontal backdrop shift, accumulated
}

// Options configures a new Simulation.
type Options struct {
	CameraHeight   float64
	ParallaxFactor float64 // Backdrop shift per unit of curvature per tick
	StartZ         float64
}

// Simulation owns the per-tick state. It is not safe for concurrent use;
// the game loop drives it from a single goroutine.
type Simulation struct {
	track    *track.Track
	controls input.Controls
	parallax float64
	frame    Frame
}

// New places the camera at opts.StartZ with the given controls.
func New(tr *track.Track, controls input.Controls, opts Options) *Simulation {
	s := &Simulation{
		track:    tr,
		controls: controls,
		parallax: opts.ParallaxFactor,
	}
	s.frame.CameraHeight = opts.CameraHeight
	s.frame.Camera.Z = tr.WrapZ(opts.StartZ)
	s.settle()
	return s
}

// Step runs one tick: input to intent, then camera motion.
func (s *Simulation) Step(in input.Snapshot) {
	m := s.controls.Motion(in)
	f := &s.frame

	f.Player = m.Player
	f.CameraHeight += m.HeightDelta

	f.Camera.Reset()
	f.Camera.Z = s.track.WrapZ(f.Camera.Z + f.Player.Speed)
	s.settle()

	// Backdrop slides against the bend, reversed when reversing.
	if cur := s.track.At(f.StartIndex); !cur.Straight() {
		f.BackdropX -= s.parallax * cur.Curvature * f.Player.Direction()
	}

	f.Tick++
}

// settle derives the segment cursor and camera height from Camera.Z.
func (s *Simulation) settle() {
	f := &s.frame
	f.StartIndex = s.track.IndexAt(f.Camera.Z)
	f.Camera.Y = s.track.At(f.StartIndex).Y + f.CameraHeight
}

// Frame returns a copy of the current state.
func (s *Simulation) Frame() Frame {
	return s.frame
}

// Track returns the track being driven.
func (s *Simulation) Track() *track.Track {
	return s.track
}
