// Package scene owns the celestial body tree: one root star, planets as its
// children, moons as planet children.
package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/render"
)

// Scene is the body ownership tree, flattened into insertion order.
//
// Insertion order is the draw and pick iteration order, and because every
// constructor requires the parent to already be in the scene, it is also a
// topological (parent-before-child) order for the orbit engine.
type Scene struct {
	bodies []*Body
	rng    *rand.Rand

	stars   int
	planets int
	moons   int
}

// New creates an empty scene. The rng seeds each body's initial mean
// anomaly, so tests can reproduce exact starting angles.
func New(rng *rand.Rand) *Scene {
	return &Scene{rng: rng}
}

// AddStar adds the root star at a fixed world position.
func (s *Scene) AddStar(name string, pos mgl64.Vec2, radius float64, col render.Color, facts []Fact) *Body {
	star := &Body{
		Name:       name,
		Class:      ClassStar,
		Radius:     radius,
		Color:      col,
		OneMinusE2: 1.0,
		Pos:        pos,
		Facts:      facts,
	}
	s.bodies = append(s.bodies, star)
	s.stars++
	return star
}

// Elements holds the orbital parameters a constructor needs for a
// non-root body.
type Elements struct {
	SemiMajorAxis float64
	Eccentricity  float64
	BaseSpeed     float64
}

// AddPlanet adds a planet orbiting parent (normally the root star).
func (s *Scene) AddPlanet(parent *Body, name string, el Elements, radius float64, col render.Color, mass float64, facts []Fact) *Body {
	p := s.addOrbiting(parent, name, ClassPlanet, el, radius, col, mass, facts)
	s.planets++
	return p
}

// AddMoon adds a moon orbiting parent. When the parent is itself an
// orbiting body, the moon's semi-major axis is raised to at least twice
// the parent's drawn radius so the orbit clears the parent's disk.
func (s *Scene) AddMoon(parent *Body, name string, el Elements, radius float64, col render.Color, mass float64, facts []Fact) *Body {
	if !parent.IsRoot() {
		if min := 2 * parent.Radius; el.SemiMajorAxis < min {
			el.SemiMajorAxis = min
		}
	}
	m := s.addOrbiting(parent, name, ClassMoon, el, radius, col, mass, facts)
	s.moons++
	return m
}

func (s *Scene) addOrbiting(parent *Body, name string, class Class, el Elements, radius float64, col render.Color, mass float64, facts []Fact) *Body {
	b := &Body{
		Name:          name,
		Class:         class,
		Mass:          mass,
		Radius:        radius,
		Color:         col,
		SemiMajorAxis: el.SemiMajorAxis,
		Eccentricity:  el.Eccentricity,
		MeanAnomaly:   s.rng.Float64() * 2 * math.Pi,
		BaseSpeed:     el.BaseSpeed,
		OneMinusE2:    1 - el.Eccentricity*el.Eccentricity,
		Parent:        parent,
		Pos:           parent.Pos,
	}
	s.bodies = append(s.bodies, b)
	return b
}

// Bodies returns all bodies in insertion order. The slice is shared;
// callers must not reorder it.
func (s *Scene) Bodies() []*Body {
	return s.bodies
}

// Root returns the root star, or nil for an empty scene.
func (s *Scene) Root() *Body {
	if len(s.bodies) == 0 {
		return nil
	}
	return s.bodies[0]
}

// Stars returns the number of stars in the scene.
func (s *Scene) Stars() int { return s.stars }

// Planets returns the number of planets in the scene.
func (s *Scene) Planets() int { return s.planets }

// Moons returns the number of moons in the scene.
func (s *Scene) Moons() int { return s.moons }
