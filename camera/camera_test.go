package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNew(t *testing.T) {
	cam := New(1200, 800, 0.05, 5.0)

	// Should be centered on the viewport
	if cam.Pan.X() != 600 || cam.Pan.Y() != 400 {
		t.Errorf("expected pan (600, 400), got (%f, %f)", cam.Pan.X(), cam.Pan.Y())
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1200, 800, 0.05, 5.0)

	// Pan center should map to screen center
	s := cam.WorldToScreen(cam.Pan)
	if math.Abs(s.X()-600) > 0.01 || math.Abs(s.Y()-400) > 0.01 {
		t.Errorf("expected screen center (600, 400), got (%f, %f)", s.X(), s.Y())
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1200, 800, 0.05, 5.0)

	zooms := []float64{0.05, 0.3, 1.0, 2.7, 5.0}
	pans := []mgl64.Vec2{
		{600, 400},
		{-12345.6, 9876.5},
		{0.001, -0.001},
	}
	points := []mgl64.Vec2{
		{600, 400},   // center
		{0, 0},       // corner
		{1199, 799},  // far corner
		{333.3, 77.7},
	}

	for _, zoom := range zooms {
		for _, pan := range pans {
			cam.SetZoom(zoom)
			cam.Pan = pan
			for _, p := range points {
				w := cam.ScreenToWorld(p)
				s := cam.WorldToScreen(w)
				if math.Abs(s.X()-p.X()) > 1e-6 || math.Abs(s.Y()-p.Y()) > 1e-6 {
					t.Errorf("zoom=%v pan=%v: roundtrip (%v) -> (%v) -> (%v)",
						zoom, pan, p, w, s)
				}
			}
		}
	}
}

func TestDragMovesOppositeToPointer(t *testing.T) {
	cam := New(1200, 800, 0.05, 5.0)
	cam.SetZoom(2.0)

	start := cam.Pan
	cam.Drag(100, -50)

	// Screen delta converts to world delta via 1/zoom, subtracted from pan
	if math.Abs(cam.Pan.X()-(start.X()-50)) > 1e-9 {
		t.Errorf("expected pan.x %f, got %f", start.X()-50, cam.Pan.X())
	}
	if math.Abs(cam.Pan.Y()-(start.Y()+25)) > 1e-9 {
		t.Errorf("expected pan.y %f, got %f", start.Y()+25, cam.Pan.Y())
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1200, 800, 0.05, 5.0)

	cam.SetZoom(0.001)
	if cam.Zoom != 0.05 {
		t.Errorf("expected zoom clamped to 0.05, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0)
	if cam.Zoom != 5.0 {
		t.Errorf("expected zoom clamped to 5.0, got %f", cam.Zoom)
	}

	cam.SetZoom(1.0)
	for i := 0; i < 100; i++ {
		cam.ZoomBy(1.1)
	}
	if cam.Zoom != 5.0 {
		t.Errorf("repeated ZoomBy should saturate at 5.0, got %f", cam.Zoom)
	}
}

func TestResizeRecentersPan(t *testing.T) {
	cam := New(1200, 800, 0.05, 5.0)
	cam.Pan = mgl64.Vec2{-5000, 321}
	cam.SetZoom(3.0)

	cam.Resize(1600, 900)

	if cam.ViewportW != 1600 || cam.ViewportH != 900 {
		t.Errorf("expected viewport 1600x900, got %fx%f", cam.ViewportW, cam.ViewportH)
	}
	if cam.Pan.X() != 800 || cam.Pan.Y() != 450 {
		t.Errorf("expected pan recentered to (800, 450), got (%f, %f)", cam.Pan.X(), cam.Pan.Y())
	}
	// Zoom is untouched by resize
	if cam.Zoom != 3.0 {
		t.Errorf("expected zoom 3.0 after resize, got %f", cam.Zoom)
	}
}

func TestReset(t *testing.T) {
	cam := New(1200, 800, 0.05, 5.0)
	cam.Pan = mgl64.Vec2{42, 43}
	cam.Zoom = 2.5

	cam.Reset()

	if cam.Pan.X() != 600 || cam.Pan.Y() != 400 {
		t.Errorf("expected pan (600, 400), got (%f, %f)", cam.Pan.X(), cam.Pan.Y())
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1200, 800, 0.05, 5.0)

	if !cam.IsVisible(cam.Pan, 0) {
		t.Error("camera center should be visible")
	}
	if cam.IsVisible(mgl64.Vec2{1e6, 1e6}, 600) {
		t.Error("far point should not be visible")
	}
	// A point just offscreen becomes visible with a large enough margin
	just := cam.ScreenToWorld(mgl64.Vec2{-100, 400})
	if cam.IsVisible(just, 0) {
		t.Error("offscreen point should not be visible with zero margin")
	}
	if !cam.IsVisible(just, 200) {
		t.Error("offscreen point should be visible with 200px margin")
	}
}
