package background

import "math"

// Tiles returns the screen x of every copy of a strip of stripWidth pixels
// needed to cover [0, screenWidth), given the strip's scrolled origin.
// The pattern repeats, so origin is folded back to the leftmost visible copy.
func Tiles(origin, stripWidth, screenWidth float64) []float64 {
	if stripWidth <= 0 || screenWidth <= 0 {
		return nil
	}
	x := math.Mod(origin, stripWidth)
	if x > 0 {
		x -= stripWidth
	}
	var xs []float64
	for ; x < screenWidth; x += stripWidth {
		xs = append(xs, x)
	}
	return xs
}
