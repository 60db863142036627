package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/scene"
)

// Time factor bounds and the multiplicative adjustment step.
const (
	MinTimeFactor     = 0.01
	MaxTimeFactor     = 100.0
	DefaultTimeFactor = 1.0
)

// Context carries the per-step simulation state. It is passed explicitly
// into Step so the engine stays pure and testable; nothing here is global.
type Context struct {
	TimeFactor float64
	Paused     bool
}

// NewContext returns a running context at the default time factor.
func NewContext() Context {
	return Context{TimeFactor: DefaultTimeFactor}
}

// Scale multiplies the time factor by f, clamped to [MinTimeFactor,
// MaxTimeFactor].
func (c *Context) Scale(f float64) {
	c.TimeFactor = math.Min(math.Max(c.TimeFactor*f, MinTimeFactor), MaxTimeFactor)
}

// Step advances every non-root body by one tick, in the scene's insertion
// order. Insertion order is parent-before-child (see scene.Scene), so each
// body reads its parent's already-updated position for this tick. The root
// star is never touched.
//
// When ctx.Paused is set nothing moves: anomalies and positions are frozen.
func Step(s *scene.Scene, ctx Context) {
	if ctx.Paused {
		return
	}
	for _, b := range s.Bodies() {
		if b.IsRoot() {
			continue
		}
		advance(b, ctx.TimeFactor)
	}
}

// advance moves one body along its orbit and resolves its world position
// from its parent's current position.
func advance(b *scene.Body, timeFactor float64) {
	b.MeanAnomaly = wrapAngle(b.MeanAnomaly + b.BaseSpeed*timeFactor)

	e := b.Eccentricity
	ecc := SolveKepler(b.MeanAnomaly, e)
	nu := TrueAnomaly(ecc, e)
	r := OrbitRadius(b.SemiMajorAxis, b.OneMinusE2, e, nu)

	b.Pos = b.Parent.Pos.Add(mgl64.Vec2{r * math.Cos(nu), r * math.Sin(nu)})
}
