// Package render draws the scene through a narrow renderer capability and
// owns the per-body caches (orbit paths, fact overlays, labels).
package render

import "github.com/go-gl/mathgl/mgl64"

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Rect is an axis-aligned screen-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Surface is an opaque rendered block (rasterized text, a panel) that can
// be blitted to the screen. Produced and consumed by the Renderer only.
type Surface interface {
	Width() float64
	Height() float64
}

// Renderer is the drawing capability the core depends on. The raylib
// implementation lives in this package; tests use a recording fake.
type Renderer interface {
	DrawCircle(center mgl64.Vec2, radius float64, col Color)
	DrawPolyline(points []mgl64.Vec2, closed bool, col Color, width float64)
	DrawRect(r Rect, col Color)
	Blit(s Surface, x, y float64)
	TextToSurface(text string, col Color) Surface
	Free(s Surface)
}

// Orbit path styling shared by cached and uncached paths.
var orbitColor = Color{R: 50, G: 50, B: 50, A: 64}

// orbitLineWidth picks the stroke width for an orbit of the given
// semi-major axis. Large root-relative orbits get a heavier line.
func orbitLineWidth(semiMajorAxis float64) float64 {
	if semiMajorAxis > 10 {
		return 2
	}
	return 1
}
