package game

import (
	"fmt"
	"math"

	"github.com/pthm-cable/orrery/render"
	"github.com/pthm-cable/orrery/scene"
)

// label placement offsets, in screen pixels.
const (
	labelAboveGap = 15.0
	labelBelowGap = 5.0
)

var labelColor = render.Color{R: 255, G: 255, B: 255, A: 255}

// Draw renders the world through the renderer capability: starfield,
// orbit paths, body disks, labels, and the selected body's fact overlay.
// HUD and panels are drawn separately by the ui package.
func (g *Game) Draw() {
	g.field.Draw(g.r, g.cam)

	cullMargin := 0.5 * math.Max(g.cam.ViewportW, g.cam.ViewportH)

	for i, b := range g.scene.Bodies() {
		if !g.cam.IsVisible(b.Pos, cullMargin) {
			continue
		}
		g.drawOrbit(i, b)
		g.drawBody(i, b)
	}

	if sel := g.Selected(); sel != nil {
		g.drawFacts(sel)
	}
}

// drawOrbit draws the body's orbit ellipse. Orbits around the root star
// go through the per-body cache; satellite orbits are resampled fresh
// every frame because their focus moves every tick.
func (g *Game) drawOrbit(i int, b *scene.Body) {
	if b.IsRoot() {
		return
	}
	if v := &g.visuals[i]; v.orbit != nil {
		v.orbit.Refresh(b.SemiMajorAxis, b.OneMinusE2, b.Parent.Pos, g.cam)
		v.orbit.Draw(g.r)
		return
	}
	render.DrawEllipse(g.r, b.SemiMajorAxis, b.OneMinusE2, b.Parent.Pos, g.cam, g.cfg.Render.OrbitSamples)
}

// drawBody draws the body's disk and, when large enough on screen, its
// name label.
func (g *Game) drawBody(i int, b *scene.Body) {
	pos := g.cam.WorldToScreen(b.Pos)
	radius := b.Radius * g.cam.Zoom

	g.r.DrawCircle(pos, math.Max(radius, 1), b.Color)

	if b.Name == "" || radius <= 1 {
		return
	}
	v := &g.visuals[i]
	if v.label == nil {
		v.label = g.r.TextToSurface(b.Name, labelColor)
	}
	// Label above the body in the top half of the screen, below otherwise
	offsetY := radius + labelBelowGap
	if pos.Y() < g.cam.ViewportH/2 {
		offsetY = -radius - labelAboveGap
	}
	g.r.Blit(v.label, pos.X()-v.label.Width()/2, pos.Y()+offsetY)
}

// drawFacts lazily builds and draws the selected body's fact overlay next
// to the pointer.
func (g *Game) drawFacts(b *scene.Body) {
	if len(b.Facts) == 0 {
		return
	}
	v := &g.visuals[g.selected]
	if !v.overlay.Built() {
		v.overlay.Ensure(g.r, factLines(b.Facts))
	}
	v.overlay.Draw(g.r, g.pointer.X(), g.pointer.Y(), g.cam.ViewportW, g.cam.ViewportH)
}

// factLines flattens facts to "Label: Value" lines in catalog order.
func factLines(facts []scene.Fact) []string {
	lines := make([]string, 0, len(facts))
	for _, f := range facts {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, f.Value))
	}
	return lines
}
