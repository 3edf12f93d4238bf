package game

import (
	"image"
	"image/color"
	"math"

	"github.com/golangdaddy/outrun/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface fills road polygons on an ebiten image with DrawTriangles.
type Surface struct {
	target *ebiten.Image
	white  *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface returns a surface with its own 1x1 white source texture.
func NewSurface() *Surface {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &Surface{
		white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Bind points the surface at the frame's screen image.
func (s *Surface) Bind(dst *ebiten.Image) {
	s.target = dst
}

// Clear fills the whole target.
func (s *Surface) Clear(c color.Color) {
	s.target.Fill(c)
}

// FillPolygon draws a convex polygon as a triangle fan. Polygons with a
// non-finite vertex are dropped.
func (s *Surface) FillPolygon(points []render.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	for _, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) {
			return
		}
	}

	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff

	s.vertices = s.vertices[:0]
	for _, pt := range points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}

	s.indices = s.indices[:0]
	for i := 1; i < len(points)-1; i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}

	s.target.DrawTriangles(s.vertices, s.indices, s.white, &ebiten.DrawTrianglesOptions{})
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
