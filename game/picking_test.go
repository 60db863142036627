package game

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/render"
	"github.com/pthm-cable/orrery/scene"
)

// pickScene builds a star with two planets at known world positions.
func pickScene() *scene.Scene {
	s := scene.New(rand.New(rand.NewSource(1)))
	star := s.AddStar("star", mgl64.Vec2{600, 400}, 5, render.RGB(255, 255, 0), nil)
	a := s.AddPlanet(star, "a", scene.Elements{SemiMajorAxis: 50}, 3, render.RGB(200, 0, 0), 0, nil)
	b := s.AddPlanet(star, "b", scene.Elements{SemiMajorAxis: 80}, 20, render.RGB(0, 200, 0), 0, nil)
	a.Pos = mgl64.Vec2{650, 400}
	b.Pos = mgl64.Vec2{680, 400}
	return s
}

func TestPickHitsBodyUnderPointer(t *testing.T) {
	s := pickScene()
	cam := camera.New(1200, 800, 0.05, 5)

	idx, ok := Pick(s.Bodies(), cam, mgl64.Vec2{650, 400})
	if !ok || s.Bodies()[idx].Name != "a" {
		t.Fatalf("picked %v (ok=%v), want a", idx, ok)
	}
}

func TestPickMissesEmptySpace(t *testing.T) {
	s := pickScene()
	cam := camera.New(1200, 800, 0.05, 5)

	if idx, ok := Pick(s.Bodies(), cam, mgl64.Vec2{100, 700}); ok {
		t.Fatalf("picked %d in empty space", idx)
	}
}

func TestPickMinimumRadius(t *testing.T) {
	s := pickScene()
	cam := camera.New(1200, 800, 0.05, 5)

	// Planet a is 3px but still clickable out to 10px. Probe vertically so
	// the miss case does not wander into planet b's reach.
	idx, ok := Pick(s.Bodies(), cam, mgl64.Vec2{650, 400 + 9})
	if !ok || s.Bodies()[idx].Name != "a" {
		t.Fatalf("picked %v (ok=%v) inside the 10px floor, want a", idx, ok)
	}
	if _, ok := Pick(s.Bodies(), cam, mgl64.Vec2{650, 400 + 11}); ok {
		t.Error("hit past the pick radius")
	}
}

func TestPickRadiusScalesWithZoom(t *testing.T) {
	s := pickScene()
	cam := camera.New(1200, 800, 0.05, 5)
	cam.SetZoom(2)

	// Planet b: 20px body, pick radius 40 at zoom 2. Its screen position
	// moves with the projection, so aim relative to that.
	screen := cam.WorldToScreen(s.Bodies()[2].Pos)

	idx, ok := Pick(s.Bodies(), cam, screen.Add(mgl64.Vec2{39, 0}))
	if !ok || s.Bodies()[idx].Name != "b" {
		t.Fatalf("picked %v (ok=%v) at zoomed radius, want b", idx, ok)
	}
	if _, ok := Pick(s.Bodies(), cam, screen.Add(mgl64.Vec2{41, 0})); ok {
		t.Error("hit past the zoomed pick radius")
	}
}

func TestPickFirstInInsertionOrderWins(t *testing.T) {
	s := pickScene()
	cam := camera.New(1200, 800, 0.05, 5)

	// a's 10px floor reaches out to x=660 and b's 20px radius reaches back
	// to x=660. Probe the overlap point: the earlier body wins.
	idx, ok := Pick(s.Bodies(), cam, mgl64.Vec2{660, 400})
	if !ok || s.Bodies()[idx].Name != "a" {
		t.Fatalf("picked %v (ok=%v) in the overlap, want the earlier body a", idx, ok)
	}
}
