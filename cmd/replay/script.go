package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/input"
	"github.com/golangdaddy/outrun/pkg/loop"
	"github.com/golangdaddy/outrun/pkg/projection"
	"github.com/golangdaddy/outrun/pkg/render"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/track"
	"gopkg.in/yaml.v3"
)

// Script is a recorded drive: keys held for a number of ticks, in order.
type Script struct {
	StartZ      float64 `yaml:"start_z"`
	FrameRateHz int     `yaml:"frame_rate_hz"` // Simulated display rate, overrides loop.frame_rate_hz
	Steps       []Hold  `yaml:"steps"`
}

// Hold keeps one key state for Ticks ticks.
type Hold struct {
	Ticks int            `yaml:"ticks"`
	Input input.Snapshot `yaml:"input"`
}

// LoadScript reads a YAML script.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	for i, h := range sc.Steps {
		if h.Ticks < 0 {
			return Script{}, fmt.Errorf("step %d: negative tick count %d", i, h.Ticks)
		}
	}
	return sc, nil
}

// Snapshots expands the script into one snapshot per tick.
func (sc Script) Snapshots() []input.Snapshot {
	var out []input.Snapshot
	for _, h := range sc.Steps {
		for i := 0; i < h.Ticks; i++ {
			out = append(out, h.Input)
		}
	}
	return out
}

// Summary is what a replay ends with.
type Summary struct {
	Ticks   uint64
	Renders int
	Bands   int // Visible bands in the last render
	Frame   sim.Frame
}

// fakeClock only moves when the loop sleeps.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// replayer feeds scripted snapshots to the simulation and sweeps every
// render, so the whole frame pipeline runs without a window.
type replayer struct {
	inputs  []input.Snapshot
	next    int
	sim     *sim.Simulation
	sweeper *render.Sweeper
	summary Summary
}

func (r *replayer) Poll() input.Snapshot {
	if r.next >= len(r.inputs) {
		return input.Snapshot{Quit: true}
	}
	in := r.inputs[r.next]
	r.next++
	return in
}

func (r *replayer) Update(in input.Snapshot) {
	r.sim.Step(in)
}

func (r *replayer) Render() {
	res := r.sweeper.Sweep(r.sim.Frame())
	r.summary.Renders++
	r.summary.Bands = len(res.Bands)
}

// Replay drives sc through the fixed-step loop with the settings in cfg.
func Replay(ctx context.Context, cfg config.Config, sc Script, logger *slog.Logger) (Summary, error) {
	tr, err := track.Build(cfg.Track.Segments, cfg.Track.SegmentLength, cfg.Track.Recipe)
	if err != nil {
		return Summary{}, err
	}

	controls := input.Controls{
		SteerStep:  cfg.Controls.SteerStep,
		Speed:      cfg.Controls.Speed,
		HeightStep: cfg.Controls.HeightStep,
	}
	viewport := projection.Viewport{
		Width:      float64(cfg.Window.Width),
		Height:     float64(cfg.Window.Height),
		TrackWidth: cfg.Track.Width,
		FocalDepth: cfg.Camera.FocalDepth,
	}

	r := &replayer{
		inputs: sc.Snapshots(),
		sim: sim.New(tr, controls, sim.Options{
			CameraHeight:   cfg.Camera.Height,
			ParallaxFactor: cfg.Render.ParallaxFactor,
			StartZ:         sc.StartZ,
		}),
		sweeper: render.NewSweeper(tr, viewport, render.Options{
			LookAhead:   cfg.Render.LookAhead,
			StripeWidth: cfg.Render.StripeWidth,
		}),
	}

	fps := sc.FrameRateHz
	if fps <= 0 {
		fps = cfg.Loop.FrameRateHz
	}
	if fps <= 0 {
		fps = cfg.Loop.TPS
	}
	l := &loop.Loop{
		Clock:         &fakeClock{now: time.Unix(0, 0)},
		Stepper:       loop.NewStepper(cfg.Loop.TPS, cfg.Loop.MaxCatchUp),
		FrameInterval: time.Second / time.Duration(fps),
	}

	logger.Debug("replay starting", "ticks", len(r.inputs), "frame_rate_hz", fps)
	if err := l.Run(ctx, r); err != nil {
		return Summary{}, fmt.Errorf("replay interrupted: %w", err)
	}

	r.summary.Frame = r.sim.Frame()
	r.summary.Ticks = r.summary.Frame.Tick
	return r.summary, nil
}
