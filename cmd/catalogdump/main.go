// catalogdump prints a catalog converted to world units: pixel radii,
// pixel orbit radii, and per-tick angular speeds. Useful for sanity
// checking a hand-edited catalog before loading it interactively.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	catalogPath := flag.String("catalog", "", "Path to a catalog YAML (empty = embedded solar system)")
	flag.Parse()

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

	conv := scene.Conversion{
		DistanceScale:   cfg.Scale.Distance,
		StarRadiusPx:    cfg.Scale.StarRadiusPx,
		BaseFrames:      cfg.Simulation.BaseFrames,
		ReferencePeriod: cfg.Simulation.ReferencePeriod,
	}

	fmt.Printf("%-12s %-8s %10s %12s %14s\n", "name", "class", "radius_px", "orbit_px", "speed_rad_tick")
	fmt.Printf("%-12s %-8s %10.2f %12s %14s\n", cat.Star.Name, "star", conv.StarRadiusPx, "-", "-")

	for i := range cat.Planets {
		p := &cat.Planets[i]
		fmt.Printf("%-12s %-8s %10.2f %12.2f %14.6g\n",
			p.Name, "planet",
			scene.PlanetRadiusPx(p.Radius),
			p.OrbitRadius*conv.DistanceScale,
			conv.AngularSpeed(p.OrbitalPeriod),
		)
		for j := range p.Moons {
			m := &p.Moons[j]
			fmt.Printf("%-12s %-8s %10.2f %12.2f %14.6g\n",
				"  "+m.Name, "moon",
				scene.MoonRadiusPx(m.Radius),
				m.OrbitRadius*conv.DistanceScale,
				conv.AngularSpeed(m.OrbitalPeriod),
			)
		}
	}
}
