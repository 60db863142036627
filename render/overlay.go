package render

// Facts overlay layout constants, in screen pixels.
const (
	overlayPadding    = 12.0
	overlayLineHeight = 20.0
	overlayPointerGap = 20.0
)

var overlayBackground = Color{R: 0, G: 0, B: 0, A: 128}

// FactsOverlay is the rendered fact panel for one body. It is built lazily
// on first demand and reused until a wholesale cache clear; camera motion
// never invalidates it.
type FactsOverlay struct {
	lines []Surface
	w, h  float64

	// Builds counts how many times the panel was rasterized.
	Builds int
}

// Built reports whether the panel has been rasterized.
func (o *FactsOverlay) Built() bool {
	return o.lines != nil
}

// Ensure rasterizes the panel once from "Label: Value" lines. Later calls
// are no-ops regardless of the input.
func (o *FactsOverlay) Ensure(r Renderer, lines []string) {
	if o.Built() || len(lines) == 0 {
		return
	}
	maxWidth := 0.0
	for _, line := range lines {
		s := r.TextToSurface(line, Color{R: 255, G: 255, B: 255, A: 255})
		o.lines = append(o.lines, s)
		if s.Width() > maxWidth {
			maxWidth = s.Width()
		}
	}
	o.w = maxWidth + 2*overlayPadding
	o.h = float64(len(lines))*overlayLineHeight + 2*overlayPadding
	o.Builds++
}

// Free releases the rasterized lines back to the renderer.
func (o *FactsOverlay) Free(r Renderer) {
	for _, s := range o.lines {
		r.Free(s)
	}
	o.lines = nil
	o.w, o.h = 0, 0
}

// Draw places the panel next to the pointer, flipping to the other side
// when it would overflow the viewport.
func (o *FactsOverlay) Draw(r Renderer, pointerX, pointerY, viewW, viewH float64) {
	if !o.Built() {
		return
	}
	x := pointerX + overlayPointerGap
	y := pointerY + overlayPointerGap
	if x+o.w > viewW {
		x = pointerX - o.w - overlayPointerGap
	}
	if y+o.h > viewH {
		y = pointerY - o.h - overlayPointerGap
	}

	r.DrawRect(Rect{X: x, Y: y, W: o.w, H: o.h}, overlayBackground)
	for i, s := range o.lines {
		r.Blit(s, x+overlayPadding, y+overlayPadding+float64(i)*overlayLineHeight)
	}
}
