package scene

import (
	_ "embed"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/orrery/render"
)

//go:embed solar.yaml
var solarYAML []byte

// moonColor is the shared draw color for all moons.
var moonColor = render.RGB(200, 200, 200)

// Record is one catalog entry in real units: km for radii and orbit
// radii, days for the orbital period. A negative period means a
// retrograde orbit.
type Record struct {
	Name          string   `yaml:"name"`
	Mass          float64  `yaml:"mass"`
	Radius        float64  `yaml:"radius"`
	OrbitRadius   float64  `yaml:"orbit_radius"`
	OrbitalPeriod float64  `yaml:"orbital_period"`
	Eccentricity  float64  `yaml:"eccentricity"`
	Color         [3]uint8 `yaml:"color"`
	Facts         []Fact   `yaml:"facts"`
	Moons         []Record `yaml:"moons"`
}

// Catalog is the static configuration of the whole system. It is consumed
// once per scene construction; the scene does not keep it.
type Catalog struct {
	Star    Record   `yaml:"star"`
	Planets []Record `yaml:"planets"`
}

// DefaultCatalog parses the embedded solar system catalog.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(solarYAML)
}

// LoadCatalog reads a catalog from a YAML file, or returns the embedded
// default if path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	cat := &Catalog{}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks the caller contract the orbit engine assumes: every
// orbiting record has 0 <= e < 1 and a positive orbit radius.
func (c *Catalog) Validate() error {
	if c.Star.Name == "" {
		return fmt.Errorf("catalog: star has no name")
	}
	for i := range c.Planets {
		p := &c.Planets[i]
		if err := validateOrbiting(p); err != nil {
			return err
		}
		for j := range p.Moons {
			if err := validateOrbiting(&p.Moons[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateOrbiting(r *Record) error {
	if r.Name == "" {
		return fmt.Errorf("catalog: body has no name")
	}
	if r.Eccentricity < 0 || r.Eccentricity >= 1 {
		return fmt.Errorf("catalog: %s: eccentricity %v out of [0,1)", r.Name, r.Eccentricity)
	}
	if r.OrbitRadius <= 0 {
		return fmt.Errorf("catalog: %s: orbit radius must be positive, got %v", r.Name, r.OrbitRadius)
	}
	return nil
}

// Conversion turns real catalog units into world pixels and per-tick
// angular speeds.
type Conversion struct {
	DistanceScale   float64 // world pixels per km of orbit radius
	StarRadiusPx    float64 // fixed drawn radius for the root star
	BaseFrames      float64 // ticks per reference orbit at time factor 1
	ReferencePeriod float64 // days
}

// AngularSpeed derives the per-tick mean anomaly advance from an orbital
// period in days. A zero or near-zero period yields speed 0 (the body does
// not orbit) rather than dividing by zero; negative periods orbit
// retrograde.
func (c Conversion) AngularSpeed(periodDays float64) float64 {
	abs := math.Abs(periodDays)
	if abs < 1e-9 {
		return 0
	}
	base := 2 * math.Pi / c.BaseFrames
	speed := base * c.ReferencePeriod / abs
	if periodDays < 0 {
		return -speed
	}
	return speed
}

// PlanetRadiusPx maps a physical radius in km to a log-scaled pixel radius.
func PlanetRadiusPx(km float64) float64 {
	return math.Max(1, 1+8*math.Log10(km/1000))
}

// MoonRadiusPx maps a moon's physical radius in km to a pixel radius on a
// gentler log scale than planets.
func MoonRadiusPx(km float64) float64 {
	return math.Max(0.5, 0.5+5*math.Log10(km/1000))
}

// Build constructs a scene from the catalog with the star at center.
// Initial mean anomalies come from rng, so a fixed seed reproduces the
// exact starting configuration.
func Build(cat *Catalog, conv Conversion, rng *rand.Rand, center mgl64.Vec2) *Scene {
	s := New(rng)

	starCol := render.RGB(cat.Star.Color[0], cat.Star.Color[1], cat.Star.Color[2])
	star := s.AddStar(cat.Star.Name, center, conv.StarRadiusPx, starCol, cat.Star.Facts)

	for i := range cat.Planets {
		rec := &cat.Planets[i]
		planet := s.AddPlanet(star, rec.Name, Elements{
			SemiMajorAxis: rec.OrbitRadius * conv.DistanceScale,
			Eccentricity:  rec.Eccentricity,
			BaseSpeed:     conv.AngularSpeed(rec.OrbitalPeriod),
		}, PlanetRadiusPx(rec.Radius), render.RGB(rec.Color[0], rec.Color[1], rec.Color[2]), rec.Mass, rec.Facts)

		for j := range rec.Moons {
			mrec := &rec.Moons[j]
			s.AddMoon(planet, mrec.Name, Elements{
				SemiMajorAxis: mrec.OrbitRadius * conv.DistanceScale,
				Eccentricity:  mrec.Eccentricity,
				BaseSpeed:     conv.AngularSpeed(mrec.OrbitalPeriod),
			}, MoonRadiusPx(mrec.Radius), moonColor, mrec.Mass, mrec.Facts)
		}
	}

	return s
}
