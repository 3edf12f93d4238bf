package background

import (
	"image"
	"image/color"
)

// CarSheet paints a sprite sheet large enough to contain frame, with a rear
// view of the player's car inside frame and everything else transparent.
func CarSheet(frame image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Max.X, frame.Max.Y))

	w, h := frame.Dx(), frame.Dy()
	body := color.RGBA{200, 30, 30, 255}
	shadow := color.RGBA{120, 10, 10, 255}
	glass := color.RGBA{60, 70, 90, 255}
	tyre := color.RGBA{20, 20, 20, 255}
	light := color.RGBA{255, 200, 60, 255}

	fill := func(x0, y0, x1, y1 int, c color.RGBA) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				p := image.Pt(frame.Min.X+x, frame.Min.Y+y)
				if p.In(frame) {
					img.SetRGBA(p.X, p.Y, c)
				}
			}
		}
	}

	// Tyres, lower body, cabin, then detail on top
	fill(0, h*2/3, w/5, h, tyre)
	fill(w-w/5, h*2/3, w, h, tyre)
	fill(1, h/3, w-1, h-2, body)
	fill(w/5, 1, w-w/5, h/3+1, shadow)
	fill(w/5+2, 3, w-w/5-2, h/3, glass)
	fill(2, h/2, 5, h/2+3, light)
	fill(w-5, h/2, w-2, h/2+3, light)
	fill(1, h-3, w-1, h-2, shadow)

	return img
}
