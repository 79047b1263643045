package orbitals

import (
	"math"
	"testing"
)

func TestAngles(t *testing.T) {
	for i := 0.0; i < 360; i += 0.5 {
		if back := Rad2deg(Deg2rad(i)); !floatEqual(back, i, 1e-9) {
			t.Fatalf("incorrect conversion for %3.2f: %f", i, back)
		}
	}
	for deg, expPi := range map[float64]float64{0: 0, 30: 1 / 6., 90: 1 / 2., 180: 1, 270: 3 / 2., 360: 0} {
		if !floatEqual(Deg2rad(deg)/math.Pi, expPi, 1e-10) {
			t.Fatalf("%f deg = %f pi rad", deg, Deg2rad(deg)/math.Pi)
		}
	}
	if !floatEqual(Rad2deg(Deg2rad(-359.)), 1, 1e-9) {
		t.Fatal("incorrect conversion for -359")
	}
	if !floatEqual(Rad2deg(Deg2rad(-180.)), 180, 1e-9) {
		t.Fatal("incorrect conversion for -180")
	}
	if !floatEqual(Deg2rad(Rad2deg(-5*math.Pi/3)), math.Pi/3, 1e-9) {
		t.Fatal("incorrect conversion for -5pi/3")
	}
}

func TestAnglesWrapManyTurns(t *testing.T) {
	for deg, exp := range map[float64]float64{-750: 330, 1110: 30, -1e3: 80, 725: 5} {
		if got := Rad2deg(Deg2rad(deg)); !floatEqual(got, exp, 1e-9) {
			t.Fatalf("%g deg wrapped to %g instead of %g", deg, got, exp)
		}
		if r := Deg2rad(deg); r < 0 || r >= 2*math.Pi {
			t.Fatalf("%g deg = %g rad, out of [0, 2pi)", deg, r)
		}
	}
	for rad, exp := range map[float64]float64{-7 * math.Pi / 2: 90, 5 * math.Pi: 180, -math.Pi / 2: 270} {
		if got := Rad2deg(rad); !floatEqual(got, exp, 1e-9) {
			t.Fatalf("%g rad = %g deg instead of %g", rad, got, exp)
		}
	}
	// Polar construction accepts any number of turns.
	if v := FromPolar(2, -750); !v.Equals(FromPolar(2, 330), 1e-12) {
		t.Fatalf("FromPolar(2, -750) = %s", v)
	}
}

func TestIsFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if isFinite(v) {
			t.Fatalf("%f is finite", v)
		}
	}
	if !isFinite(0) || !isFinite(-1e300) {
		t.Fatal("finite values are not finite")
	}
}

func TestUnits(t *testing.T) {
	for _, tc := range []struct {
		got, exp float64
	}{
		{Grams(500), 0.5},
		{Tonnes(3), 3e3},
		{Kilotonnes(2), 2e6},
		{Kilonewtons(845), 845e3},
		{Meganewtons(7.6), 7.6e6},
		{Kilometers(6371), 6.371e6},
		{Minutes(1000), 6e4},
		{Hours(2), 7200},
		{Days(1), 86400},
	} {
		if !floatEqual(tc.got, tc.exp, 1e-9*tc.exp) {
			t.Fatalf("%g != %g", tc.got, tc.exp)
		}
	}
}
