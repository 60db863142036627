package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/render"
)

// Class identifies the kind of a celestial body.
type Class uint8

const (
	ClassStar Class = iota
	ClassPlanet
	ClassMoon
)

// Fact is one labeled line of body trivia shown in the facts overlay.
// Facts keep the order they were declared in the catalog.
type Fact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Body is one celestial body on a planar Keplerian orbit around its parent.
//
// The root star has SemiMajorAxis=0, Eccentricity=0, BaseSpeed=0 and an
// externally fixed position; every other body's position is recomputed each
// step solely from its own elements and its parent's current position.
type Body struct {
	Name  string
	Class Class
	Mass  float64

	// Radius is the drawn radius in world pixels, not the physical radius.
	Radius float64
	Color  render.Color

	// Keplerian elements. Periapsis lies along the local +x axis; there is
	// no inclination or argument-of-periapsis parameter.
	SemiMajorAxis float64 // a, world pixels
	Eccentricity  float64 // e in [0,1)
	MeanAnomaly   float64 // M in [0,2pi)
	BaseSpeed     float64 // mean anomaly advance per tick at time factor 1

	// OneMinusE2 is the precomputed 1-e^2.
	OneMinusE2 float64

	// Parent is a non-owning back-reference; nil for the root star.
	// Ownership lives in the Scene's insertion-ordered body list.
	Parent *Body

	// Pos is the current world position, written by the orbit engine.
	Pos mgl64.Vec2

	Facts []Fact
}

// IsRoot reports whether the body is the scene's root star.
func (b *Body) IsRoot() bool {
	return b.Parent == nil
}

// SemiMinorAxis returns b = a*sqrt(1-e^2).
func (b *Body) SemiMinorAxis() float64 {
	return b.SemiMajorAxis * math.Sqrt(b.OneMinusE2)
}
