package render

import "image/color"

// Point is a screen-space vertex.
type Point struct {
	X, Y float64
}

// Quad is a filled trapezoid, vertices in drawing order.
type Quad struct {
	Points [4]Point
	Color  color.RGBA
}

// Surface is anything the road can be painted onto.
type Surface interface {
	Clear(c color.Color)
	FillPolygon(points []Point, c color.RGBA)
}

// Shade is a dark/light colour pair for alternating stripes.
type Shade struct {
	Dark  color.RGBA
	Light color.RGBA
}

// Pick returns the light colour when light is set.
func (s Shade) Pick(light bool) color.RGBA {
	if light {
		return s.Light
	}
	return s.Dark
}

// Palette colours the three layers of each band.
type Palette struct {
	Grass  Shade
	Rumble Shade
	Road   Shade
}

// DefaultPalette is the classic green verge, black/white kerb and grey tarmac.
func DefaultPalette() Palette {
	return Palette{
		Grass:  Shade{Dark: color.RGBA{0, 154, 0, 255}, Light: color.RGBA{16, 200, 16, 255}},
		Rumble: Shade{Dark: color.RGBA{0, 0, 0, 255}, Light: color.RGBA{255, 255, 255, 255}},
		Road:   Shade{Dark: color.RGBA{105, 105, 105, 255}, Light: color.RGBA{107, 107, 107, 255}},
	}
}

// Painter turns bands into quads.
type Painter struct {
	Palette     Palette
	ScreenWidth float64
	RumbleScale float64 // Kerb half-width as a multiple of the road half-width

	points []Point
}

// Quads returns the ground, rumble strip and road trapezoids for one band,
// back layer first.
func (p *Painter) Quads(b Band) [3]Quad {
	return [3]Quad{
		trapezoid(0, b.Near.Y, p.ScreenWidth, 0, b.Far.Y, p.ScreenWidth, p.Palette.Grass.Pick(b.Light)),
		trapezoid(b.Near.X, b.Near.Y, p.RumbleScale*b.Near.W, b.Far.X, b.Far.Y, p.RumbleScale*b.Far.W, p.Palette.Rumble.Pick(b.Light)),
		trapezoid(b.Near.X, b.Near.Y, b.Near.W, b.Far.X, b.Far.Y, b.Far.W, p.Palette.Road.Pick(b.Light)),
	}
}

// Paint draws every band, nearest first, onto dst.
func (p *Painter) Paint(dst Surface, r Result) {
	for _, b := range r.Bands {
		for _, q := range p.Quads(b) {
			p.points = append(p.points[:0], q.Points[:]...)
			dst.FillPolygon(p.points, q.Color)
		}
	}
}

// trapezoid spans two horizontal edges given by their mid points and
// half-widths.
func trapezoid(nearX, nearY, nearW, farX, farY, farW float64, c color.RGBA) Quad {
	return Quad{
		Points: [4]Point{
			{X: nearX - nearW, Y: nearY},
			{X: farX - farW, Y: farY},
			{X: farX + farW, Y: farY},
			{X: nearX + nearW, Y: nearY},
		},
		Color: c,
	}
}
