package telemetry

// Collector buffers per-frame measurements until a window fills.
type Collector struct {
	windowFrames int

	frameMs       []float64
	rebuilds      int
	windowStart   int64
	lastRebuilds  int
	haveLastCount bool
}

// NewCollector creates a collector that emits one window every
// windowFrames frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{
		windowFrames: windowFrames,
		frameMs:      make([]float64, 0, windowFrames),
	}
}

// RecordFrame adds one frame's duration and the running orbit-rebuild
// total. Rebuild counts arrive cumulative; the collector differences them.
func (c *Collector) RecordFrame(frameMs float64, totalRebuilds int) {
	if c.haveLastCount {
		c.rebuilds += totalRebuilds - c.lastRebuilds
	}
	c.lastRebuilds = totalRebuilds
	c.haveLastCount = true
	c.frameMs = append(c.frameMs, frameMs)
}

// Ready reports whether a full window has accumulated.
func (c *Collector) Ready() bool {
	return len(c.frameMs) >= c.windowFrames
}

// Flush drains the window into a WindowStats record and starts the next
// window at endTick.
func (c *Collector) Flush(endTick int64, timeFactor float64, planets, moons int) WindowStats {
	mean, std, p10, p50, p90 := ComputeFrameStats(c.frameMs)
	s := WindowStats{
		WindowStartTick: c.windowStart,
		WindowEndTick:   endTick,
		TimeFactor:      timeFactor,
		PlanetCount:     planets,
		MoonCount:       moons,
		FrameMsMean:     mean,
		FrameMsStd:      std,
		FrameMsP10:      p10,
		FrameMsP50:      p50,
		FrameMsP90:      p90,
		OrbitRebuilds:   c.rebuilds,
	}

	c.frameMs = c.frameMs[:0]
	c.rebuilds = 0
	c.windowStart = endTick
	return s
}
