// Package orbit advances the scene's bodies along their Keplerian orbits.
package orbit

import "math"

// keplerIterations is the fixed iteration count for the Kepler solve.
// There is no convergence check: five fixed-point passes are a bounded
// approximation that is plenty for the eccentricities in the catalog but
// degrades as e approaches 1. Known limitation, kept deliberately.
const keplerIterations = 5

// SolveKepler solves M = E - e*sin(E) for the eccentric anomaly E by
// fixed-point iteration starting at E = M. Deterministic: identical
// (M, e) inputs yield bit-identical results.
func SolveKepler(meanAnomaly, eccentricity float64) float64 {
	e := meanAnomaly
	for i := 0; i < keplerIterations; i++ {
		e = meanAnomaly + eccentricity*math.Sin(e)
	}
	return e
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly, the
// angle from periapsis as seen from the focus.
func TrueAnomaly(eccentricAnomaly, eccentricity float64) float64 {
	return 2 * math.Atan2(
		math.Sqrt(1+eccentricity)*math.Sin(eccentricAnomaly/2),
		math.Sqrt(1-eccentricity)*math.Cos(eccentricAnomaly/2),
	)
}

// OrbitRadius returns the focus distance at the given true anomaly for an
// ellipse with semi-major axis a and precomputed 1-e^2.
func OrbitRadius(semiMajorAxis, oneMinusE2, eccentricity, trueAnomaly float64) float64 {
	return semiMajorAxis * oneMinusE2 / (1 + eccentricity*math.Cos(trueAnomaly))
}

// wrapAngle reduces an angle to [0, 2pi). Go's math.Mod keeps the sign of
// the dividend, so negative inputs need the extra turn.
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
