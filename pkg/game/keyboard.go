package game

import (
	"github.com/golangdaddy/outrun/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard polls ebiten's key state.
// Arrow keys drive, W/S raise and lower the camera, Escape or closing the
// window quits.
type Keyboard struct{}

// Poll reads the current key state. Call it from ebiten's Update.
func (Keyboard) Poll() input.Snapshot {
	return input.Snapshot{
		Left:       ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:      ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Accelerate: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Decelerate: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		CameraUp:   ebiten.IsKeyPressed(ebiten.KeyW),
		CameraDown: ebiten.IsKeyPressed(ebiten.KeyS),
		Quit:       ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// MouseRelease returns the cursor position if the left button was released
// since the last Update.
func (Keyboard) MouseRelease() (x, y int, ok bool) {
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = ebiten.CursorPosition()
	return x, y, true
}
