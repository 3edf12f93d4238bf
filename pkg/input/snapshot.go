// Package input turns raw key state into driving intent.
//
// A Snapshot is taken once per tick and handed to Controls.Motion, which is
// pure. Recording a sequence of snapshots is enough to replay a session.
package input

import "github.com/golangdaddy/outrun/pkg/models"

// Snapshot is the key state observed at the start of one tick.
type Snapshot struct {
	Left       bool `yaml:"left"`
	Right      bool `yaml:"right"`
	Accelerate bool `yaml:"accelerate"`
	Decelerate bool `yaml:"decelerate"`
	CameraUp   bool `yaml:"camera_up"`
	CameraDown bool `yaml:"camera_down"`
	Quit       bool `yaml:"quit"`
}

// Controls holds the per-tick magnitudes the keys map onto.
type Controls struct {
	SteerStep  float64 // Lateral offset while a steering key is held
	Speed      float64 // Forward/reverse speed while a pedal is held
	HeightStep float64 // Camera height change per tick
}

// Motion is the outcome of one tick's input.
type Motion struct {
	Player      models.Player
	HeightDelta float64
}

// Motion maps a snapshot onto player state. Player values start from zero
// every tick; left wins over right and accelerate wins over decelerate when
// both are held. The camera height delta is the only input that accumulates,
// and that accumulation is the caller's job.
func (c Controls) Motion(s Snapshot) Motion {
	var m Motion

	if s.Left {
		m.Player.LateralOffset = -c.SteerStep
	} else if s.Right {
		m.Player.LateralOffset = c.SteerStep
	}

	if s.Accelerate {
		m.Player.Speed = c.Speed
	} else if s.Decelerate {
		m.Player.Speed = -c.Speed
	}

	if s.CameraUp {
		m.HeightDelta += c.HeightStep
	}
	if s.CameraDown {
		m.HeightDelta -= c.HeightStep
	}

	return m
}
