package orbitals

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	deg2rad = math.Pi / 180
	// g0 is the standard gravity in m/s^2, used to convert specific impulse to mass flow.
	g0 = 9.80665
)

// floatEqual returns whether a and b are equal within tol.
func floatEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// isFinite returns false for NaN and infinities.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// wrap returns x modulo period, in [0, period).
func wrap(x, period float64) float64 {
	x = math.Mod(x, period)
	if x < 0 {
		x += period
	}
	if x >= period {
		return 0
	}
	return x
}

// Deg2rad converts any angle in degrees to radians in [0, 2π).
func Deg2rad(a float64) float64 {
	return wrap(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts any angle in radians to degrees in [0, 360).
func Rad2deg(a float64) float64 {
	return wrap(a/deg2rad, 360)
}
