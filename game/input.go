package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// keyBindings maps physical keys to abstract commands. I/O zoom in and
// out, +/- scale time, space pauses, R resets, Tab toggles the panel.
// Ordered so same-frame presses always produce the same event sequence.
var keyBindings = []struct {
	key int32
	cmd Key
}{
	{rl.KeySpace, KeyPause},
	{rl.KeyEqual, KeySpeedUp},
	{rl.KeyKpAdd, KeySpeedUp},
	{rl.KeyMinus, KeySpeedDown},
	{rl.KeyKpSubtract, KeySpeedDown},
	{rl.KeyI, KeyZoomIn},
	{rl.KeyO, KeyZoomOut},
	{rl.KeyR, KeyReset},
	{rl.KeyTab, KeyTogglePanel},
}

// PollEvents translates this frame's raylib input state into ordered
// events. Window events come first so later pointer positions are
// interpreted against the current viewport.
func PollEvents() []Event {
	var evs []Event

	if rl.IsWindowResized() {
		evs = append(evs, Resize{
			W: float64(rl.GetScreenWidth()),
			H: float64(rl.GetScreenHeight()),
		})
	}

	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			evs = append(evs, KeyDown{Key: b.cmd})
		}
	}

	pos := rl.GetMousePosition()
	pointer := mgl64.Vec2{float64(pos.X), float64(pos.Y)}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		evs = append(evs, PointerDown{Button: ButtonPrimary, Pos: pointer})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		evs = append(evs, PointerUp{Button: ButtonPrimary})
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		evs = append(evs, PointerMove{Pos: pointer})
	}

	return evs
}
