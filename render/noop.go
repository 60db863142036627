package render

import "github.com/go-gl/mathgl/mgl64"

// Discard is a Renderer that draws nothing. Headless runs use it so the
// controller's cache bookkeeping still works without a window.
type Discard struct{}

type discardSurface struct{}

func (discardSurface) Width() float64  { return 0 }
func (discardSurface) Height() float64 { return 0 }

func (Discard) DrawCircle(mgl64.Vec2, float64, Color)           {}
func (Discard) DrawPolyline([]mgl64.Vec2, bool, Color, float64) {}
func (Discard) DrawRect(Rect, Color)                            {}
func (Discard) Blit(Surface, float64, float64)                  {}
func (Discard) TextToSurface(string, Color) Surface             { return discardSurface{} }
func (Discard) Free(Surface)                                    {}
