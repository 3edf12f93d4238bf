package loop

import (
	"context"
	"time"

	"github.com/golangdaddy/outrun/pkg/input"
)

// Clock is the loop's source of wall-clock time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the real clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Driver is what the loop drives: input, then update, then render.
type Driver interface {
	Poll() input.Snapshot
	Update(in input.Snapshot)
	Render()
}

// Loop runs a Driver until it asks to quit.
type Loop struct {
	Clock         Clock
	Stepper       *Stepper
	FrameInterval time.Duration // Minimum time between renders, zero to run flat out
}

// Run polls and updates zero or more times per iteration, as the stepper
// allows, then renders once. Only the latest state is ever rendered. Run
// returns nil when a polled snapshot asks to quit, or ctx's error when ctx is
// cancelled first.
func (l *Loop) Run(ctx context.Context, d Driver) error {
	clock := l.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	last := clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := clock.Now()
		steps := l.Stepper.Advance(now.Sub(last))
		last = now

		for i := 0; i < steps; i++ {
			in := d.Poll()
			if in.Quit {
				return nil
			}
			d.Update(in)
		}
		d.Render()

		if l.FrameInterval > 0 {
			if spent := clock.Now().Sub(now); spent < l.FrameInterval {
				clock.Sleep(l.FrameInterval - spent)
			}
		}
	}
}
