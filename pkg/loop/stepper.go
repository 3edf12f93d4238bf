// Package loop runs the simulation on a fixed timestep, independent of how
// often frames are displayed.
package loop

import "time"

// Stepper converts elapsed wall-clock time into a whole number of fixed
// ticks. Leftover time carries into the next call.
type Stepper struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewStepper ticks tps times per second. maxSteps caps how many ticks one
// Advance may return; zero means no cap.
func NewStepper(tps int, maxSteps int) *Stepper {
	if tps <= 0 {
		tps = 60
	}
	return &Stepper{
		step:     time.Second / time.Duration(tps),
		maxSteps: maxSteps,
	}
}

// Step returns the duration of one tick.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Pending returns the accumulated time not yet spent on a tick.
func (s *Stepper) Pending() time.Duration {
	return s.acc
}

// Advance adds elapsed to the accumulator and returns how many ticks to run
// before the next render. It keeps draining while at least one full tick is
// banked. When the cap is hit, whole ticks still banked are dropped and the
// fraction is kept.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.acc += elapsed
	}

	n := 0
	for s.acc >= s.step {
		s.acc -= s.step
		n++
		if s.maxSteps > 0 && n >= s.maxSteps {
			s.acc %= s.step
			break
		}
	}
	return n
}
