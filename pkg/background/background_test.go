package background

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBackdropSizeAndDeterminism(t *testing.T) {
	a := NewGenerator(500, 120, 7).GenerateBackdrop()
	b := NewGenerator(500, 120, 7).GenerateBackdrop()

	assert.Equal(t, image.Rect(0, 0, 500, 120), a.Bounds())
	assert.Equal(t, a.Pix, b.Pix)

	// Top row is open sky, fully opaque.
	_, _, _, alpha := a.At(250, 0).RGBA()
	assert.Equal(t, uint32(0xffff), alpha)
}

func TestGenerateBackdropSeedMatters(t *testing.T) {
	a := NewGenerator(500, 120, 1).GenerateBackdrop()
	b := NewGenerator(500, 120, 2).GenerateBackdrop()
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestGenerateBackdropSmoothing(t *testing.T) {
	sharp := NewGenerator(500, 120, 7).GenerateBackdrop()

	g := NewGenerator(500, 120, 7)
	g.Smoothing = 2
	soft := g.GenerateBackdrop()

	assert.Equal(t, sharp.Bounds(), soft.Bounds())
	assert.NotEqual(t, sharp.Pix, soft.Pix)
}

func TestCarSheet(t *testing.T) {
	frame := image.Rect(264, 144, 264+31, 144+23)
	img := CarSheet(frame)

	require.Equal(t, image.Rect(0, 0, 295, 167), img.Bounds())

	_, _, _, outside := img.At(10, 10).RGBA()
	assert.Zero(t, outside)

	_, _, _, inside := img.At(264+15, 144+15).RGBA()
	assert.Equal(t, uint32(0xffff), inside)
}

func TestTiles(t *testing.T) {
	tests := []struct {
		name     string
		origin   float64
		expected []float64
	}{
		{name: "reference_offset", origin: -2000, expected: []float64{-2000}},
		{name: "scrolled_left", origin: -4500, expected: []float64{-4500, 500}},
		{name: "scrolled_right", origin: 300, expected: []float64{-4700, 300}},
		{name: "aligned", origin: 0, expected: []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tiles(tt.origin, 5000, 1024))
		})
	}
}

func TestTilesCoverScreen(t *testing.T) {
	for origin := -12000.0; origin <= 12000; origin += 137 {
		xs := Tiles(origin, 5000, 1024)
		require.NotEmpty(t, xs)
		assert.LessOrEqual(t, xs[0], 0.0, "origin %v", origin)
		assert.GreaterOrEqual(t, xs[len(xs)-1]+5000, 1024.0, "origin %v", origin)
	}
}

func TestTilesRejectsEmptyStrip(t *testing.T) {
	assert.Nil(t, Tiles(0, 0, 1024))
}
