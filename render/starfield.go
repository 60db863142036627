package render

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/orrery/camera"
)

// starfield parallax: background stars shift at a small fraction of the
// camera pan so the scene reads as the nearer layer.
const starfieldParallax = 0.05

// bgStar is one background star in screen-tile coordinates.
type bgStar struct {
	pos        mgl64.Vec2
	radius     float64
	brightness float64
}

// Starfield is a deterministic procedural star background. Positions come
// from the seeded rng and brightness from simplex noise, so a fixed seed
// reproduces the exact field.
type Starfield struct {
	stars []bgStar
	w, h  float64
}

// NewStarfield scatters count stars over a w x h tile.
func NewStarfield(seed int64, count int, w, h float64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	noise := opensimplex.New(seed)

	f := &Starfield{w: w, h: h, stars: make([]bgStar, 0, count)}
	for i := 0; i < count; i++ {
		x := rng.Float64() * w
		y := rng.Float64() * h
		// Noise in [-1,1] mapped to brightness [0.15, 1]
		n := noise.Eval2(x*0.01, y*0.01)
		b := 0.575 + 0.425*n
		if b < 0.15 {
			b = 0.15
		}
		radius := 1.0
		if rng.Float64() < 0.1 {
			radius = 1.5
		}
		f.stars = append(f.stars, bgStar{pos: mgl64.Vec2{x, y}, radius: radius, brightness: b})
	}
	return f
}

// Stars returns the number of generated stars.
func (f *Starfield) Stars() int {
	return len(f.stars)
}

// Draw renders the field with parallax against the camera pan, wrapping
// the tile across the viewport.
func (f *Starfield) Draw(r Renderer, cam *camera.Camera) {
	offX := cam.Pan.X() * starfieldParallax
	offY := cam.Pan.Y() * starfieldParallax

	for _, s := range f.stars {
		x := wrap(s.pos.X()-offX, f.w)
		y := wrap(s.pos.Y()-offY, f.h)
		if x > cam.ViewportW || y > cam.ViewportH {
			continue
		}
		v := uint8(255 * s.brightness)
		r.DrawCircle(mgl64.Vec2{x, y}, s.radius, Color{R: v, G: v, B: v, A: 255})
	}
}

// wrap reduces x to [0, size) with a positive remainder.
func wrap(x, size float64) float64 {
	x = math.Mod(x, size)
	if x < 0 {
		x += size
	}
	return x
}
