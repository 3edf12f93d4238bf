package render

import (
	"image/color"
	"testing"

	"github.com/golangdaddy/outrun/pkg/input"
	"github.com/golangdaddy/outrun/pkg/projection"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceViewport = projection.Viewport{Width: 1024, Height: 768, TrackWidth: 2000, FocalDepth: 0.84}

func buildTrack(t *testing.T, recipe track.Recipe) *track.Track {
	t.Helper()
	tr, err := track.Build(1600, 200, recipe)
	require.NoError(t, err)
	return tr
}

func frameAt(tr *track.Track, z float64) sim.Frame {
	s := sim.New(tr, input.Controls{Speed: 200, SteerStep: 0.1}, sim.Options{CameraHeight: 1500, StartZ: z})
	return s.Frame()
}

func TestSweepFlatStraightTrack(t *testing.T) {
	tr := buildTrack(t, track.Recipe{})
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 300, StripeWidth: 5})

	r := sw.Sweep(frameAt(tr, 0))

	require.Len(t, r.Steps, 300)
	// Segments closer than 1500*0.84 world units project below the screen.
	for k, step := range r.Steps {
		assert.Equal(t, k >= 6, step.Drawn, "step %d", k)
		assert.InDelta(t, 512, step.Projection.X, 1e-9)
		assert.Zero(t, step.DriftX)
		assert.Zero(t, step.DriftDX)
	}
	assert.Len(t, r.Bands, 294)
	assert.Greater(t, r.Horizon, referenceViewport.Height/2)
}

func TestSweepDepthStrictlyIncreasing(t *testing.T) {
	tr := buildTrack(t, track.DefaultRecipe())
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 300, StripeWidth: 5})

	for _, z := range []float64{0, 1234, 150000, 319900, 319999} {
		r := sw.Sweep(frameAt(tr, z))
		prev := 0.0
		for _, step := range r.Steps {
			require.Greater(t, step.Depth, prev, "z=%v segment=%d", z, step.Index)
			prev = step.Depth
		}
	}
}

func TestSweepCrossesSeam(t *testing.T) {
	tr := buildTrack(t, track.DefaultRecipe())
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 300, StripeWidth: 5})

	r := sw.Sweep(frameAt(tr, 1590*200))

	assert.Equal(t, 1591, r.Steps[0].Index)
	assert.Equal(t, 1599, r.Steps[8].Index)
	assert.Equal(t, 0, r.Steps[9].Index)
	assert.InDelta(t, 10*200, r.Steps[9].Depth, 1e-9)
}

func TestSweepLooksPastWholeLaps(t *testing.T) {
	tr, err := track.Build(10, 200, track.Recipe{})
	require.NoError(t, err)
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 25, StripeWidth: 1})

	r := sw.Sweep(frameAt(tr, 7*200))

	require.Len(t, r.Steps, 25)
	for k, step := range r.Steps {
		assert.Equal(t, (8+k)%10, step.Index)
		assert.InDelta(t, float64(k+1)*200, step.Depth, 1e-9)
	}
}

func TestSweepOcclusionMonotonic(t *testing.T) {
	tr := buildTrack(t, track.DefaultRecipe())
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 300, StripeWidth: 5})

	// Over the hills, where occlusion actually culls segments.
	for _, z := range []float64{760 * 200, 900 * 200, 1200 * 200} {
		r := sw.Sweep(frameAt(tr, z))
		limit := referenceViewport.Height
		drawn := 0
		for _, step := range r.Steps {
			require.Equal(t, limit, step.HorizonY)
			require.Equal(t, step.Projection.Y < limit, step.Drawn)
			if step.Drawn {
				limit = step.Projection.Y
				drawn++
			}
		}
		assert.Len(t, r.Bands, drawn)
		assert.Equal(t, limit, r.Horizon)
	}
}

func TestSweepHillsHideSegments(t *testing.T) {
	tr := buildTrack(t, track.DefaultRecipe())
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 300, StripeWidth: 5})

	hidden := 0
	for z := 751.0 * 200; z < 1500*200; z += 200 {
		r := sw.Sweep(frameAt(tr, z))
		for _, step := range r.Steps {
			if !step.Drawn && step.Projection.Y < referenceViewport.Height {
				hidden++
			}
		}
	}
	assert.Positive(t, hidden)
}

func TestSweepCurvatureAccumulates(t *testing.T) {
	tr := buildTrack(t, track.DefaultRecipe())
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 300, StripeWidth: 5})

	f := frameAt(tr, 250*200)
	r := sw.Sweep(f)

	// DX is the running curvature sum from the segment under the camera
	// onward; X lags it by one segment.
	x, dx := 0.0, tr.At(f.StartIndex).Curvature
	for _, step := range r.Steps {
		require.InDelta(t, x, step.DriftX, 1e-9, "segment %d", step.Index)
		x += dx
		dx += tr.At(step.Index).Curvature
		require.InDelta(t, dx, step.DriftDX, 1e-9, "segment %d", step.Index)
	}
	// Into the right-hander the far road swings right of centre.
	last := r.Steps[len(r.Steps)-1]
	assert.Greater(t, last.Projection.X, referenceViewport.Width/2)
}

func TestSweepCountsCurvatureUnderCamera(t *testing.T) {
	tr, err := track.Build(100, 200, track.Recipe{Zones: []track.Zone{{Start: 10, End: 11, Curvature: 1}}})
	require.NoError(t, err)
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 20, StripeWidth: 5})

	r := sw.Sweep(frameAt(tr, 10*200))

	require.Equal(t, 11, r.Steps[0].Index)
	assert.Zero(t, r.Steps[0].DriftX)
	for k, step := range r.Steps {
		assert.InDelta(t, 1.0, step.DriftDX, 1e-9, "step %d", k)
		if k > 0 {
			assert.InDelta(t, float64(k), step.DriftX, 1e-9, "step %d", k)
		}
	}
}

func TestSweepSteeringShiftsRoad(t *testing.T) {
	tr := buildTrack(t, track.Recipe{})
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 50, StripeWidth: 5})

	f := frameAt(tr, 0)
	f.Player.LateralOffset = 0.1
	r := sw.Sweep(f)

	for _, step := range r.Steps {
		assert.Less(t, step.Projection.X, referenceViewport.Width/2)
	}
}

func TestSweepBandsChainProjections(t *testing.T) {
	tr := buildTrack(t, track.DefaultRecipe())
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 300, StripeWidth: 5})

	r := sw.Sweep(frameAt(tr, 800*200))

	byIndex := map[int]int{}
	for k, step := range r.Steps {
		byIndex[step.Index] = k
	}
	for _, b := range r.Bands {
		k := byIndex[b.Index]
		assert.Equal(t, r.Steps[k].Projection, b.Far)
		if k > 0 {
			assert.Equal(t, r.Steps[k-1].Projection, b.Near)
		}
		assert.Equal(t, (b.Index/5)%2 == 1, b.Light)
	}
}

type recordingSurface struct {
	polygons [][]Point
	colors   []color.RGBA
}

func (s *recordingSurface) Clear(color.Color) {}

func (s *recordingSurface) FillPolygon(points []Point, c color.RGBA) {
	s.polygons = append(s.polygons, append([]Point(nil), points...))
	s.colors = append(s.colors, c)
}

func TestPainterQuads(t *testing.T) {
	p := &Painter{Palette: DefaultPalette(), ScreenWidth: 1024, RumbleScale: 1.2}
	b := Band{
		Near:  projection.Projection{X: 500, Y: 700, W: 100},
		Far:   projection.Projection{X: 510, Y: 650, W: 80},
		Light: true,
	}

	q := p.Quads(b)

	assert.Equal(t, [4]Point{{-1024, 700}, {-1024, 650}, {1024, 650}, {1024, 700}}, q[0].Points)
	assert.Equal(t, color.RGBA{16, 200, 16, 255}, q[0].Color)

	assert.InDelta(t, 500-120, q[1].Points[0].X, 1e-9)
	assert.InDelta(t, 510+96, q[1].Points[2].X, 1e-9)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, q[1].Color)

	assert.Equal(t, [4]Point{{400, 700}, {430, 650}, {590, 650}, {600, 700}}, q[2].Points)
	assert.Equal(t, color.RGBA{107, 107, 107, 255}, q[2].Color)
}

func TestPainterPaint(t *testing.T) {
	tr := buildTrack(t, track.DefaultRecipe())
	sw := NewSweeper(tr, referenceViewport, Options{LookAhead: 300, StripeWidth: 5})
	r := sw.Sweep(frameAt(tr, 0))

	surface := &recordingSurface{}
	p := &Painter{Palette: DefaultPalette(), ScreenWidth: 1024, RumbleScale: 1.2}
	p.Paint(surface, r)

	require.Len(t, surface.polygons, 3*len(r.Bands))
	for _, poly := range surface.polygons {
		assert.Len(t, poly, 4)
	}
	dark := DefaultPalette().Grass.Dark
	light := DefaultPalette().Grass.Light
	assert.Contains(t, surface.colors, dark)
	assert.Contains(t, surface.colors, light)
}
