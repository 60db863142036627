package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/camera"
)

// pathKey is the camera state an orbit path was projected at. A path stays
// valid while the camera remains within the epsilons of its key.
type pathKey struct {
	zoom         float64
	panX, panY   float64
	viewW, viewH float64
	built        bool
}

// OrbitPath caches a body's orbit polyline projected into camera space.
//
// Only orbits around the root star are cached: they are large, expensive to
// resample every frame, and their focus never moves. Satellite orbits are
// cheap and their focus moves every tick, so callers draw those fresh via
// ProjectEllipse instead. Intentional asymmetry.
type OrbitPath struct {
	samples     int
	zoomEps     float64
	panEps      float64
	points      []mgl64.Vec2
	bounds      Rect
	key         pathKey
	strokeWidth float64

	// Rebuilds counts cache misses; frames served from cache do not bump it.
	Rebuilds int
}

// NewOrbitPath creates an empty (invalid) orbit path cache.
func NewOrbitPath(samples int, zoomEps, panEps float64) *OrbitPath {
	return &OrbitPath{samples: samples, zoomEps: zoomEps, panEps: panEps}
}

// Valid reports whether the cached projection can be reused for the given
// camera state.
func (p *OrbitPath) Valid(cam *camera.Camera) bool {
	return p.key.built &&
		math.Abs(cam.Zoom-p.key.zoom) < p.zoomEps &&
		cam.ViewportW == p.key.viewW &&
		cam.ViewportH == p.key.viewH &&
		math.Abs(cam.Pan.X()-p.key.panX) < p.panEps &&
		math.Abs(cam.Pan.Y()-p.key.panY) < p.panEps
}

// Refresh revalidates the cache, rebuilding the projected polyline if the
// camera moved past any threshold since the last build.
func (p *OrbitPath) Refresh(semiMajorAxis, oneMinusE2 float64, focus mgl64.Vec2, cam *camera.Camera) {
	if p.Valid(cam) {
		return
	}
	p.key = pathKey{
		zoom:  cam.Zoom,
		panX:  cam.Pan.X(),
		panY:  cam.Pan.Y(),
		viewW: cam.ViewportW,
		viewH: cam.ViewportH,
		built: true,
	}
	p.points = ProjectEllipse(semiMajorAxis, oneMinusE2, focus, cam, p.samples, p.points[:0])
	p.bounds = boundsOf(p.points, cam.ViewportW, cam.ViewportH)
	p.strokeWidth = orbitLineWidth(semiMajorAxis)
	p.Rebuilds++
}

// Invalidate discards the cached projection.
func (p *OrbitPath) Invalidate() {
	p.key = pathKey{}
	p.points = p.points[:0]
}

// Bounds returns the projected bounding rectangle of the last build,
// clamped to at least 1px and at most the viewport.
func (p *OrbitPath) Bounds() Rect {
	return p.bounds
}

// Draw blits the cached polyline. Callers must Refresh first.
func (p *OrbitPath) Draw(r Renderer) {
	if !p.key.built {
		return
	}
	r.DrawPolyline(p.points, true, orbitColor, p.strokeWidth)
}

// ProjectEllipse samples the ellipse x=a*cos(t), y=b*sin(t) centered on
// focus at `samples` evenly spaced parametric angles and projects each
// point with the camera. The result appends to dst and is a closed loop
// (last sample meets the first).
func ProjectEllipse(semiMajorAxis, oneMinusE2 float64, focus mgl64.Vec2, cam *camera.Camera, samples int, dst []mgl64.Vec2) []mgl64.Vec2 {
	b := semiMajorAxis * math.Sqrt(oneMinusE2)
	for t := 0; t < samples; t++ {
		theta := 2 * math.Pi * float64(t) / float64(samples-1)
		world := focus.Add(mgl64.Vec2{semiMajorAxis * math.Cos(theta), b * math.Sin(theta)})
		dst = append(dst, cam.WorldToScreen(world))
	}
	return dst
}

// DrawEllipse projects and draws an orbit in one pass, uncached. Used for
// satellite orbits whose focus moves every tick.
func DrawEllipse(r Renderer, semiMajorAxis, oneMinusE2 float64, focus mgl64.Vec2, cam *camera.Camera, samples int) {
	pts := ProjectEllipse(semiMajorAxis, oneMinusE2, focus, cam, samples, nil)
	r.DrawPolyline(pts, true, orbitColor, 1)
}

// boundsOf computes the axis-aligned bounding box of projected points,
// clamped to >=1px and to the viewport dimensions.
func boundsOf(pts []mgl64.Vec2, viewW, viewH float64) Rect {
	if len(pts) == 0 {
		return Rect{W: 1, H: 1}
	}
	minX, maxX := pts[0].X(), pts[0].X()
	minY, maxY := pts[0].Y(), pts[0].Y()
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X())
		maxX = math.Max(maxX, p.X())
		minY = math.Min(minY, p.Y())
		maxY = math.Max(maxY, p.Y())
	}
	w := math.Min(math.Max(maxX-minX, 1), viewW)
	h := math.Min(math.Max(maxY-minY, 1), viewH)
	return Rect{X: minX, Y: minY, W: w, H: h}
}
