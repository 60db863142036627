// Package rendertest provides a recording Renderer for tests.
package rendertest

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/render"
)

// Surface is a fake surface sized from its text length.
type Surface struct {
	Text string
	W, H float64
}

func (s *Surface) Width() float64  { return s.W }
func (s *Surface) Height() float64 { return s.H }

// Circle records one DrawCircle call.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
	Col    render.Color
}

// Polyline records one DrawPolyline call.
type Polyline struct {
	Points []mgl64.Vec2
	Closed bool
	Col    render.Color
	Width  float64
}

// Blit records one Blit call.
type Blit struct {
	Surface render.Surface
	X, Y    float64
}

// Recorder implements render.Renderer and records every call.
type Recorder struct {
	Circles   []Circle
	Polylines []Polyline
	Rects     []render.Rect
	Blits     []Blit
	Texts     []string
	Freed     int
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

// Reset clears all recorded calls.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

func (r *Recorder) DrawCircle(center mgl64.Vec2, radius float64, col render.Color) {
	r.Circles = append(r.Circles, Circle{Center: center, Radius: radius, Col: col})
}

func (r *Recorder) DrawPolyline(points []mgl64.Vec2, closed bool, col render.Color, width float64) {
	pts := make([]mgl64.Vec2, len(points))
	copy(pts, points)
	r.Polylines = append(r.Polylines, Polyline{Points: pts, Closed: closed, Col: col, Width: width})
}

func (r *Recorder) DrawRect(rect render.Rect, col render.Color) {
	r.Rects = append(r.Rects, rect)
}

func (r *Recorder) Blit(s render.Surface, x, y float64) {
	r.Blits = append(r.Blits, Blit{Surface: s, X: x, Y: y})
}

func (r *Recorder) TextToSurface(text string, col render.Color) render.Surface {
	r.Texts = append(r.Texts, text)
	// 7px per rune approximates a 14pt monospace line
	return &Surface{Text: text, W: float64(7 * len(text)), H: 14}
}

func (r *Recorder) Free(s render.Surface) {
	r.Freed++
}
