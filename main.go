package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/game"
	"github.com/pthm-cable/orrery/render"
	"github.com/pthm-cable/orrery/scene"
	"github.com/pthm-cable/orrery/telemetry"
	"github.com/pthm-cable/orrery/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	catalogPath := flag.String("catalog", "", "Path to a catalog YAML (empty = embedded solar system)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	cat, err := scene.LoadCatalog(*catalogPath)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to set up output", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
		os.Exit(1)
	}

	if *headless {
		runHeadless(cfg, cat, out, rngSeed, *maxTicks, *logStats)
		return
	}
	runWindowed(cfg, cat, out, rngSeed, *maxTicks, *logStats)
}

// runHeadless steps the simulation without a window, emitting telemetry
// windows as they fill.
func runHeadless(cfg *config.Config, cat *scene.Catalog, out *telemetry.OutputManager, seed, maxTicks int64, logStats bool) {
	g := game.New(cfg, cat, render.Discard{}, seed)
	collector := telemetry.NewCollector(cfg.Telemetry.WindowFrames)

	slog.Info("starting headless run", "seed", seed, "max_ticks", maxTicks)

	for {
		start := time.Now()
		g.Step()
		frameMs := float64(time.Since(start)) / float64(time.Millisecond)

		collector.RecordFrame(frameMs, g.OrbitRebuilds())
		if collector.Ready() {
			flushStats(g, collector, out, logStats)
		}

		if maxTicks > 0 && g.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}
}

// runWindowed runs the interactive raylib loop.
func runWindowed(cfg *config.Config, cat *scene.Catalog, out *telemetry.OutputManager, seed, maxTicks int64, logStats bool) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Orrery")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	r := render.NewRaylib()
	g := game.New(cfg, cat, r, seed)
	collector := telemetry.NewCollector(cfg.Telemetry.WindowFrames)
	hud := ui.NewHUD()
	panel := ui.NewControlsPanel(10, 130, 260)

	slog.Info("starting interactive run", "seed", seed)

	var lastStats telemetry.WindowStats
	for !rl.WindowShouldClose() {
		for _, ev := range game.PollEvents() {
			g.Apply(ev)
		}
		g.Step()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		g.Draw()
		drawChrome(cfg, g, hud, panel, lastStats)
		rl.EndDrawing()

		collector.RecordFrame(float64(rl.GetFrameTime())*1000, g.OrbitRebuilds())
		if collector.Ready() {
			lastStats = flushStats(g, collector, out, logStats)
		}

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
}

// drawChrome draws the HUD and, when open, the controls panel on top of
// the scene.
func drawChrome(cfg *config.Config, g *game.Game, hud *ui.HUD, panel *ui.ControlsPanel, stats telemetry.WindowStats) {
	data := ui.HUDData{
		Title:        "Orrery",
		PlanetCount:  g.Scene().Planets(),
		MoonCount:    g.Scene().Moons(),
		Tick:         g.Tick(),
		TimeFactor:   g.Context().TimeFactor,
		Zoom:         g.Camera().Zoom,
		FPS:          rl.GetFPS(),
		FrameMsP50:   stats.FrameMsP50,
		FrameMsP90:   stats.FrameMsP90,
		Paused:       g.Context().Paused,
		ScreenHeight: int32(g.Camera().ViewportH),
	}
	if sel := g.Selected(); sel != nil {
		data.SelectedName = sel.Name
	}
	hud.Draw(data)
	hud.DrawControls(data)

	if !g.PanelVisible() {
		return
	}
	state := panel.Draw(ui.ControlsState{
		TimeFactor:    g.Context().TimeFactor,
		MinTimeFactor: cfg.Simulation.MinTimeFactor,
		MaxTimeFactor: cfg.Simulation.MaxTimeFactor,
		Paused:        g.Context().Paused,
	})
	g.SetTimeFactor(state.TimeFactor)
	g.SetPaused(state.Paused)
}

func flushStats(g *game.Game, c *telemetry.Collector, out *telemetry.OutputManager, logStats bool) telemetry.WindowStats {
	stats := c.Flush(g.Tick(), g.Context().TimeFactor, g.Scene().Planets(), g.Scene().Moons())
	if logStats {
		stats.LogStats()
	}
	if err := out.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	return stats
}
