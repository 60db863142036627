package orbit

import (
	"math"
	"testing"
)

func TestSolveKeplerCircular(t *testing.T) {
	// With e=0 the equation is E = M exactly
	for _, m := range []float64{0, 0.5, math.Pi, 5.9} {
		if got := SolveKepler(m, 0); got != m {
			t.Errorf("SolveKepler(%v, 0) = %v, want %v", m, got, m)
		}
	}
}

func TestSolveKeplerSatisfiesEquation(t *testing.T) {
	// After five iterations M = E - e*sin(E) should hold to good accuracy
	// for moderate eccentricities.
	tests := []struct {
		m, e float64
	}{
		{0.3, 0.1},
		{1.0, 0.2056}, // Mercury
		{2.5, 0.0934}, // Mars
		{4.0, 0.3},
	}
	for _, tt := range tests {
		ecc := SolveKepler(tt.m, tt.e)
		back := ecc - tt.e*math.Sin(ecc)
		if math.Abs(back-tt.m) > 1e-4 {
			t.Errorf("M=%v e=%v: residual %v too large", tt.m, tt.e, math.Abs(back-tt.m))
		}
	}
}

func TestSolveKeplerDeterministic(t *testing.T) {
	// Identical inputs must produce bit-identical output: the solve runs a
	// fixed iteration count with no convergence branching.
	inputs := []struct{ m, e float64 }{
		{0.123456789, 0.5},
		{3.0, 0.85}, // Sedna-grade eccentricity
		{6.28, 0.999},
	}
	for _, in := range inputs {
		a := SolveKepler(in.m, in.e)
		b := SolveKepler(in.m, in.e)
		if a != b {
			t.Errorf("SolveKepler(%v, %v) not deterministic: %v != %v", in.m, in.e, a, b)
		}
	}
}

func TestTrueAnomalyCircular(t *testing.T) {
	// For e=0 the true anomaly equals the eccentric anomaly (mod 2pi sign)
	for _, ecc := range []float64{0, 0.7, math.Pi / 2, math.Pi} {
		nu := TrueAnomaly(ecc, 0)
		if math.Abs(nu-ecc) > 1e-12 {
			t.Errorf("TrueAnomaly(%v, 0) = %v, want %v", ecc, nu, ecc)
		}
	}
}

func TestTrueAnomalyOpposition(t *testing.T) {
	// At E = pi the body sits at apoapsis: nu = pi for any e < 1
	for _, e := range []float64{0, 0.2, 0.6, 0.9} {
		nu := TrueAnomaly(math.Pi, e)
		if math.Abs(nu-math.Pi) > 1e-12 {
			t.Errorf("e=%v: TrueAnomaly(pi) = %v, want pi", e, nu)
		}
	}
}

func TestOrbitRadiusBounds(t *testing.T) {
	// r must stay within [a(1-e), a(1+e)] across the full orbit
	a := 100.0
	for _, e := range []float64{0, 0.1, 0.4, 0.8} {
		oneMinusE2 := 1 - e*e
		for nu := 0.0; nu < 2*math.Pi; nu += 0.01 {
			r := OrbitRadius(a, oneMinusE2, e, nu)
			if r < a*(1-e)-1e-9 || r > a*(1+e)+1e-9 {
				t.Fatalf("e=%v nu=%v: r=%v outside [%v, %v]", e, nu, r, a*(1-e), a*(1+e))
			}
		}
	}
}

func TestOrbitRadiusExtremes(t *testing.T) {
	a, e := 100.0, 0.25
	oneMinusE2 := 1 - e*e

	// Periapsis at nu=0
	if r := OrbitRadius(a, oneMinusE2, e, 0); math.Abs(r-a*(1-e)) > 1e-9 {
		t.Errorf("periapsis r=%v, want %v", r, a*(1-e))
	}
	// Apoapsis at nu=pi
	if r := OrbitRadius(a, oneMinusE2, e, math.Pi); math.Abs(r-a*(1+e)) > 1e-9 {
		t.Errorf("apoapsis r=%v, want %v", r, a*(1+e))
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{-4 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := wrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("wrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
