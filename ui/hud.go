// Package ui renders the heads-up display and the controls panel directly
// with raylib. It sits outside the render capability on purpose: HUD text
// is screen-fixed chrome, not world content.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	PlanetCount  int
	MoonCount    int
	Tick         int64
	TimeFactor   float64
	Zoom         float64
	FPS          int32
	FrameMsP50   float64
	FrameMsP90   float64
	Paused       bool
	SelectedName string
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Planets: %d | Moons: %d", data.PlanetCount, data.MoonCount),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %.2fx | Zoom: %.2fx | FPS: %d", data.Tick, data.TimeFactor, data.Zoom, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	// Frame-time window stats appear once the first telemetry window fills
	if data.FrameMsP90 > 0 {
		rl.DrawText(
			fmt.Sprintf("Frame: %.2fms p50 | %.2fms p90", data.FrameMsP50, data.FrameMsP90),
			10, 75, 16, rl.LightGray,
		)
	}

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	if data.SelectedName != "" {
		statusText += " | Selected: " + data.SelectedName
	}
	rl.DrawText(statusText, 10, 95, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(data HUDData) {
	const legend = "Drag: pan | I/O: zoom | +/-: speed | Space: pause | R: reset | Tab: panel | Click: facts"
	rl.DrawText(legend, 10, data.ScreenHeight-25, 14, rl.Gray)
}
