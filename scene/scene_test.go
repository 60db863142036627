package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/render"
)

func testScene() (*Scene, *Body) {
	s := New(rand.New(rand.NewSource(1)))
	star := s.AddStar("Sol", mgl64.Vec2{600, 400}, 5, render.RGB(255, 255, 190), nil)
	return s, star
}

func TestAddStarIsRoot(t *testing.T) {
	s, star := testScene()

	if !star.IsRoot() {
		t.Error("star should be the root")
	}
	if star.SemiMajorAxis != 0 || star.Eccentricity != 0 || star.BaseSpeed != 0 {
		t.Errorf("root elements must be zero, got a=%v e=%v w=%v",
			star.SemiMajorAxis, star.Eccentricity, star.BaseSpeed)
	}
	if s.Root() != star {
		t.Error("Root() should return the star")
	}
}

func TestAddPlanetInitialState(t *testing.T) {
	s, star := testScene()
	p := s.AddPlanet(star, "Terra", Elements{SemiMajorAxis: 100, Eccentricity: 0.3, BaseSpeed: 0.01},
		3, render.RGB(50, 100, 200), 1, nil)

	if p.Parent != star {
		t.Error("planet parent should be the star")
	}
	if p.MeanAnomaly < 0 || p.MeanAnomaly >= 2*math.Pi {
		t.Errorf("initial mean anomaly %v out of [0,2pi)", p.MeanAnomaly)
	}
	if math.Abs(p.OneMinusE2-(1-0.09)) > 1e-12 {
		t.Errorf("expected 1-e^2 = 0.91, got %v", p.OneMinusE2)
	}
	// Position starts at the parent until the first engine step
	if p.Pos != star.Pos {
		t.Errorf("planet should start at parent position, got %v", p.Pos)
	}
}

func TestRandomPhaseIsSeeded(t *testing.T) {
	build := func(seed int64) float64 {
		s := New(rand.New(rand.NewSource(seed)))
		star := s.AddStar("Sol", mgl64.Vec2{}, 5, render.Color{}, nil)
		p := s.AddPlanet(star, "Terra", Elements{SemiMajorAxis: 100}, 3, render.Color{}, 1, nil)
		return p.MeanAnomaly
	}

	if build(7) != build(7) {
		t.Error("same seed should reproduce the same initial anomaly")
	}
	if build(7) == build(8) {
		t.Error("different seeds should give different initial anomalies")
	}
}

func TestMoonMinimumOrbit(t *testing.T) {
	s, star := testScene()
	planet := s.AddPlanet(star, "Ares", Elements{SemiMajorAxis: 200}, 8, render.Color{}, 1, nil)

	// Nominal axis below 2x parent radius gets raised to exactly 2x
	m := s.AddMoon(planet, "Fobos", Elements{SemiMajorAxis: 3}, 1, render.Color{}, 1, nil)
	if m.SemiMajorAxis != 16 {
		t.Errorf("expected moon axis raised to 16, got %v", m.SemiMajorAxis)
	}

	// Above the minimum the nominal axis is kept
	m2 := s.AddMoon(planet, "Deimos", Elements{SemiMajorAxis: 40}, 1, render.Color{}, 1, nil)
	if m2.SemiMajorAxis != 40 {
		t.Errorf("expected moon axis kept at 40, got %v", m2.SemiMajorAxis)
	}

	// The rule does not apply under the root star
	m3 := s.AddMoon(star, "Stray", Elements{SemiMajorAxis: 3}, 1, render.Color{}, 1, nil)
	if m3.SemiMajorAxis != 3 {
		t.Errorf("expected axis 3 under root parent, got %v", m3.SemiMajorAxis)
	}
}

func TestCountsAndTraversalOrder(t *testing.T) {
	s, star := testScene()
	p1 := s.AddPlanet(star, "A", Elements{SemiMajorAxis: 50}, 2, render.Color{}, 1, nil)
	m1 := s.AddMoon(p1, "A1", Elements{SemiMajorAxis: 10}, 1, render.Color{}, 1, nil)
	p2 := s.AddPlanet(star, "B", Elements{SemiMajorAxis: 80}, 2, render.Color{}, 1, nil)

	if s.Stars() != 1 || s.Planets() != 2 || s.Moons() != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/2/1", s.Stars(), s.Planets(), s.Moons())
	}

	want := []*Body{star, p1, m1, p2}
	got := s.Bodies()
	if len(got) != len(want) {
		t.Fatalf("expected %d bodies, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("body %d: insertion order not preserved", i)
		}
	}

	// Insertion order is parent-before-child
	for i, b := range got {
		if b.Parent == nil {
			continue
		}
		found := false
		for j := 0; j < i; j++ {
			if got[j] == b.Parent {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s appears before its parent", b.Name)
		}
	}
}

func TestSemiMinorAxis(t *testing.T) {
	s, star := testScene()
	p := s.AddPlanet(star, "E", Elements{SemiMajorAxis: 100, Eccentricity: 0.6}, 2, render.Color{}, 1, nil)

	want := 100 * math.Sqrt(1-0.36)
	if math.Abs(p.SemiMinorAxis()-want) > 1e-12 {
		t.Errorf("semi-minor axis = %v, want %v", p.SemiMinorAxis(), want)
	}
}
