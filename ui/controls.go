package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsState is what the panel displays and may change. The caller
// applies any changes after Draw returns.
type ControlsState struct {
	TimeFactor    float64
	MinTimeFactor float64
	MaxTimeFactor float64
	Paused        bool
}

// ControlsPanel renders the simulation controls panel.
type ControlsPanel struct {
	x, y  float32
	width float32
}

// NewControlsPanel creates a controls panel at a fixed screen position.
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Draw renders the panel and returns the possibly edited state.
func (c *ControlsPanel) Draw(state ControlsState) ControlsState {
	const panelHeight = 120
	padding := float32(10)
	x := c.x + padding
	y := c.y + padding

	rl.DrawRectangleRounded(
		rl.Rectangle{X: c.x, Y: c.y, Width: c.width, Height: panelHeight},
		0.1, 6, rl.Color{R: 20, G: 20, B: 30, A: 220},
	)

	rl.DrawText("Simulation", int32(x), int32(y), 16, rl.White)
	y += 24

	rl.DrawText("Time factor", int32(x), int32(y), 14, rl.Gray)
	y += 18
	state.TimeFactor = float64(gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: c.width - 2*padding - 60, Height: 20},
		"", "",
		float32(state.TimeFactor), float32(state.MinTimeFactor), float32(state.MaxTimeFactor),
	))
	rl.DrawText(fmt.Sprintf("%.2fx", state.TimeFactor), int32(x+c.width-2*padding-50), int32(y+2), 16, rl.LightGray)
	y += 30

	state.Paused = gui.CheckBox(
		rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Paused", state.Paused,
	)

	return state
}
