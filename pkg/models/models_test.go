package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraReset(t *testing.T) {
	c := Camera{X: 3, Y: 1500, Z: 4200, DX: 0.5}
	c.Reset()

	assert.Equal(t, Camera{Z: 4200}, c)
}

func TestCameraDriftCompounds(t *testing.T) {
	var c Camera
	for i := 0; i < 4; i++ {
		c.Drift(1)
	}

	// DX is the running sum; X is the sum of the DX values seen before each step.
	assert.Equal(t, 4.0, c.DX)
	assert.Equal(t, 0.0+1+2+3, c.X)
}

func TestCameraDriftStraight(t *testing.T) {
	var c Camera
	for i := 0; i < 300; i++ {
		c.Drift(0)
		assert.Zero(t, c.X)
	}
	assert.Zero(t, c.DX)
}

func TestPlayerDirection(t *testing.T) {
	tests := []struct {
		name      string
		speed     float64
		direction float64
		moving    bool
	}{
		{name: "forwards", speed: 200, direction: 1, moving: true},
		{name: "backwards", speed: -200, direction: -1, moving: true},
		{name: "stopped", speed: 0, direction: 0, moving: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{Speed: tt.speed}
			assert.Equal(t, tt.direction, p.Direction())
			assert.Equal(t, tt.moving, p.Moving())
		})
	}
}
