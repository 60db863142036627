// Package telemetry aggregates per-frame measurements into fixed-size
// windows and writes them out as CSV for offline analysis.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one frame window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	TimeFactor      float64 `csv:"time_factor"`

	// Scene size at window end
	PlanetCount int `csv:"planets"`
	MoonCount   int `csv:"moons"`

	// Frame time distribution over the window, in milliseconds
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsStd  float64 `csv:"frame_ms_std"`
	FrameMsP10  float64 `csv:"frame_ms_p10"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP90  float64 `csv:"frame_ms_p90"`

	// Orbit path cache misses during the window
	OrbitRebuilds int `csv:"orbit_rebuilds"`
}

// ComputeFrameStats calculates the mean, standard deviation, and
// percentiles of frame times. Returns zeros for an empty window.
func ComputeFrameStats(frameMs []float64) (mean, std, p10, p50, p90 float64) {
	if len(frameMs) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.MeanStdDev(frameMs, nil)
	if len(frameMs) == 1 {
		std = 0 // MeanStdDev returns NaN for a single sample
	}

	sorted := make([]float64, len(frameMs))
	copy(sorted, frameMs)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"time_factor", s.TimeFactor,
		"planets", s.PlanetCount,
		"moons", s.MoonCount,
		"frame_ms_mean", s.FrameMsMean,
		"frame_ms_std", s.FrameMsStd,
		"frame_ms_p10", s.FrameMsP10,
		"frame_ms_p50", s.FrameMsP50,
		"frame_ms_p90", s.FrameMsP90,
		"orbit_rebuilds", s.OrbitRebuilds,
	)
}
