package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/scene"
)

// minPickRadius keeps small bodies clickable at any zoom.
const minPickRadius = 10.0

// Pick hit-tests a screen point against the bodies' current screen
// positions, in insertion order: the first body within its pick radius
// wins. It reads the scene and camera only, never mutating either.
func Pick(bodies []*scene.Body, cam *camera.Camera, pointer mgl64.Vec2) (int, bool) {
	for i, b := range bodies {
		s := cam.WorldToScreen(b.Pos)
		r := math.Max(b.Radius*cam.Zoom, minPickRadius)
		if pointer.Sub(s).Len() <= r {
			return i, true
		}
	}
	return -1, false
}
