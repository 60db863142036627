// Package game owns the frame loop state: scene, camera, caches,
// selection, and the simulation context, wired together by input events.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/orbit"
	"github.com/pthm-cable/orrery/render"
	"github.com/pthm-cable/orrery/scene"
)

// bodyVisual holds the per-body render caches, parallel to the scene's
// body list. Only star children carry an orbit path cache.
type bodyVisual struct {
	orbit   *render.OrbitPath
	overlay *render.FactsOverlay
	label   render.Surface
}

// Game is the complete controller state. All mutation happens on the
// frame-loop goroutine; there is no concurrent access.
type Game struct {
	cfg     *config.Config
	catalog *scene.Catalog
	rng     *rand.Rand
	seed    int64

	scene   *scene.Scene
	cam     *camera.Camera
	ctx     orbit.Context
	r       render.Renderer
	field   *render.Starfield
	visuals []bodyVisual

	selected int // index into scene.Bodies(); -1 = none
	dragging bool
	pointer  mgl64.Vec2
	lastDrag mgl64.Vec2

	showPanel bool
	tick      int64
}

// New builds a game from the catalog. The seed fixes the initial mean
// anomalies and the starfield, so a run is reproducible.
func New(cfg *config.Config, cat *scene.Catalog, r render.Renderer, seed int64) *Game {
	g := &Game{
		cfg:      cfg,
		catalog:  cat,
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		cam:      camera.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height), cfg.Camera.MinZoom, cfg.Camera.MaxZoom),
		ctx:      orbit.Context{TimeFactor: cfg.Simulation.TimeFactor},
		r:        r,
		selected: -1,
	}
	g.field = render.NewStarfield(seed, cfg.Render.StarfieldCount, g.cam.ViewportW, g.cam.ViewportH)
	g.buildScene()
	return g
}

// conversion assembles the catalog unit conversion from config.
func (g *Game) conversion() scene.Conversion {
	return scene.Conversion{
		DistanceScale:   g.cfg.Scale.Distance,
		StarRadiusPx:    g.cfg.Scale.StarRadiusPx,
		BaseFrames:      g.cfg.Simulation.BaseFrames,
		ReferencePeriod: g.cfg.Simulation.ReferencePeriod,
	}
}

// buildScene constructs the scene and its parallel visuals slice.
func (g *Game) buildScene() {
	center := mgl64.Vec2{g.cam.ViewportW / 2, g.cam.ViewportH / 2}
	g.scene = scene.Build(g.catalog, g.conversion(), g.rng, center)

	bodies := g.scene.Bodies()
	g.visuals = make([]bodyVisual, len(bodies))
	for i, b := range bodies {
		v := &g.visuals[i]
		v.overlay = &render.FactsOverlay{}
		if b.Parent != nil && b.Parent.IsRoot() {
			v.orbit = render.NewOrbitPath(g.cfg.Render.OrbitSamples, g.cfg.Render.ZoomEpsilon, g.cfg.Render.PanEpsilon)
		}
	}

	slog.Info("scene built",
		"stars", g.scene.Stars(),
		"planets", g.scene.Planets(),
		"moons", g.scene.Moons(),
	)
}

// Apply processes one input event. Events mutate camera, selection, and
// simulation state only; the scene itself moves in Step.
func (g *Game) Apply(ev Event) {
	switch e := ev.(type) {
	case Resize:
		g.cam.Resize(e.W, e.H)
		g.ClearCaches()

	case KeyDown:
		g.applyKey(e.Key)

	case PointerDown:
		if e.Button != ButtonPrimary {
			return
		}
		// A press starts a drag whether or not it lands on a body
		g.dragging = true
		g.lastDrag = e.Pos
		g.pointer = e.Pos
		if idx, ok := Pick(g.scene.Bodies(), g.cam, e.Pos); ok {
			if idx == g.selected {
				g.selected = -1
			} else {
				g.selected = idx
			}
		} else {
			g.selected = -1
		}

	case PointerUp:
		if e.Button == ButtonPrimary {
			g.dragging = false
		}

	case PointerMove:
		g.pointer = e.Pos
		if g.dragging {
			d := e.Pos.Sub(g.lastDrag)
			g.cam.Drag(d.X(), d.Y())
			g.lastDrag = e.Pos
		}
	}
}

func (g *Game) applyKey(k Key) {
	switch k {
	case KeyPause:
		g.ctx.Paused = !g.ctx.Paused
	case KeySpeedUp:
		g.ctx.Scale(g.cfg.Simulation.TimeFactorStep)
	case KeySpeedDown:
		g.ctx.Scale(1 / g.cfg.Simulation.TimeFactorStep)
	case KeyZoomIn:
		g.cam.ZoomBy(g.cfg.Camera.ZoomStep)
	case KeyZoomOut:
		g.cam.ZoomBy(1 / g.cfg.Camera.ZoomStep)
	case KeyReset:
		g.Reset()
	case KeyTogglePanel:
		g.showPanel = !g.showPanel
	}
}

// Step advances the simulation by one tick unless paused.
func (g *Game) Step() {
	orbit.Step(g.scene, g.ctx)
	g.tick++
}

// Reset rebuilds the scene from the catalog with fresh random phases and
// returns the camera, selection, time scale, and caches to their initial
// state.
func (g *Game) Reset() {
	g.ClearCaches()
	g.buildScene()
	g.cam.Reset()
	g.ctx = orbit.Context{TimeFactor: g.cfg.Simulation.TimeFactor}
	g.selected = -1
	g.dragging = false
	slog.Info("scene reset", "seed", g.seed, "tick", g.tick)
}

// ClearCaches discards every orbit path, fact overlay, and label. Used on
// viewport resize and scene reset.
func (g *Game) ClearCaches() {
	for i := range g.visuals {
		v := &g.visuals[i]
		if v.orbit != nil {
			v.orbit.Invalidate()
		}
		v.overlay.Free(g.r)
		if v.label != nil {
			g.r.Free(v.label)
			v.label = nil
		}
	}
}

// Selected returns the selected body, or nil.
func (g *Game) Selected() *scene.Body {
	if g.selected < 0 {
		return nil
	}
	return g.scene.Bodies()[g.selected]
}

// Scene returns the current scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Camera returns the camera.
func (g *Game) Camera() *camera.Camera { return g.cam }

// Context returns the current simulation context.
func (g *Game) Context() orbit.Context { return g.ctx }

// SetTimeFactor sets the time factor directly (controls panel slider),
// clamped to the engine bounds.
func (g *Game) SetTimeFactor(f float64) {
	g.ctx.TimeFactor = f
	g.ctx.Scale(1)
}

// SetPaused sets the pause flag directly (controls panel checkbox).
func (g *Game) SetPaused(p bool) {
	g.ctx.Paused = p
}

// OrbitRebuilds returns the cumulative orbit path cache misses across all
// bodies, for telemetry.
func (g *Game) OrbitRebuilds() int {
	total := 0
	for i := range g.visuals {
		if g.visuals[i].orbit != nil {
			total += g.visuals[i].orbit.Rebuilds
		}
	}
	return total
}

// PanelVisible reports whether the controls panel is open.
func (g *Game) PanelVisible() bool { return g.showPanel }

// Tick returns the number of simulation steps taken.
func (g *Game) Tick() int64 { return g.tick }
