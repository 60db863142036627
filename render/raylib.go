package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// text rasterization size, matches the original HUD font.
const textFontSize = 14

// Raylib is the concrete Renderer backed by a raylib window. All calls
// must happen between rl.BeginDrawing and rl.EndDrawing on the main
// thread.
type Raylib struct{}

// NewRaylib returns the raylib-backed renderer.
func NewRaylib() *Raylib {
	return &Raylib{}
}

// texSurface wraps a GPU texture produced by TextToSurface.
type texSurface struct {
	tex rl.Texture2D
}

func (t *texSurface) Width() float64  { return float64(t.tex.Width) }
func (t *texSurface) Height() float64 { return float64(t.tex.Height) }

func rlColor(c Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func rlVec(v mgl64.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X()), Y: float32(v.Y())}
}

// DrawCircle draws a filled circle in screen space.
func (r *Raylib) DrawCircle(center mgl64.Vec2, radius float64, col Color) {
	rl.DrawCircleV(rlVec(center), float32(radius), rlColor(col))
}

// DrawPolyline draws connected line segments, optionally closing the loop.
func (r *Raylib) DrawPolyline(points []mgl64.Vec2, closed bool, col Color, width float64) {
	if len(points) < 2 {
		return
	}
	c := rlColor(col)
	w := float32(width)
	for i := 1; i < len(points); i++ {
		rl.DrawLineEx(rlVec(points[i-1]), rlVec(points[i]), w, c)
	}
	if closed {
		rl.DrawLineEx(rlVec(points[len(points)-1]), rlVec(points[0]), w, c)
	}
}

// DrawRect draws a filled rounded rectangle (overlay panels).
func (r *Raylib) DrawRect(rect Rect, col Color) {
	rec := rl.Rectangle{
		X:      float32(rect.X),
		Y:      float32(rect.Y),
		Width:  float32(rect.W),
		Height: float32(rect.H),
	}
	rl.DrawRectangleRounded(rec, 0.15, 6, rlColor(col))
}

// Blit draws a surface at the given screen position.
func (r *Raylib) Blit(s Surface, x, y float64) {
	if ts, ok := s.(*texSurface); ok {
		rl.DrawTexture(ts.tex, int32(x), int32(y), rl.White)
	}
}

// TextToSurface rasterizes text into a texture-backed surface. The caller
// owns the result and releases it with Free.
func (r *Raylib) TextToSurface(text string, col Color) Surface {
	img := rl.ImageText(text, textFontSize, rlColor(col))
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return &texSurface{tex: tex}
}

// Free releases a surface created by TextToSurface.
func (r *Raylib) Free(s Surface) {
	if ts, ok := s.(*texSurface); ok {
		rl.UnloadTexture(ts.tex)
	}
}
