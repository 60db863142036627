// Package camera provides a 2D camera system for viewport control.
package camera

import "github.com/go-gl/mathgl/mgl64"

// Camera controls the viewport into the simulation world.
// The transform is a pure affine scale+translate; there is no rotation.
type Camera struct {
	// Pan is the camera center in world coordinates
	Pan mgl64.Vec2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// New creates a camera centered on the viewport with 1:1 zoom.
func New(viewportW, viewportH, minZoom, maxZoom float64) *Camera {
	return &Camera{
		Pan:       mgl64.Vec2{viewportW / 2, viewportH / 2},
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   minZoom,
		MaxZoom:   maxZoom,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		(p.X()-c.Pan.X())*c.Zoom + c.ViewportW/2,
		(p.Y()-c.Pan.Y())*c.Zoom + c.ViewportH/2,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		(p.X()-c.ViewportW/2)/c.Zoom + c.Pan.X(),
		(p.Y()-c.ViewportH/2)/c.Zoom + c.Pan.Y(),
	}
}

// Drag moves the camera by the given pointer delta in screen pixels.
// The camera moves opposite to the pointer, so the world appears to
// follow the drag.
func (c *Camera) Drag(dx, dy float64) {
	c.Pan = c.Pan.Sub(mgl64.Vec2{dx / c.Zoom, dy / c.Zoom})
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Resize updates viewport dimensions and recenters the pan on the new
// viewport center. Render caches keyed on the old viewport must be
// cleared by the caller.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.Pan = mgl64.Vec2{viewportW / 2, viewportH / 2}
}

// Reset returns the camera to the viewport center at 1:1 zoom.
func (c *Camera) Reset() {
	c.Pan = mgl64.Vec2{c.ViewportW / 2, c.ViewportH / 2}
	c.Zoom = 1.0
}

// IsVisible returns true if a point at p with the given screen-space
// margin could be visible (conservative check for culling).
func (c *Camera) IsVisible(p mgl64.Vec2, margin float64) bool {
	s := c.WorldToScreen(p)
	return s.X() >= -margin && s.X() <= c.ViewportW+margin &&
		s.Y() >= -margin && s.Y() <= c.ViewportH+margin
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
