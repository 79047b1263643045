package orbitals

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector is a 2D vector. All operations return new values.
type Vector r2.Vec

var (
	// Zero is the null vector.
	Zero = Vector{}
	// UnitX is the unit vector along OX.
	UnitX = Vector{X: 1}
	// UnitY is the unit vector along OY.
	UnitY = Vector{Y: 1}
)

// NewVector returns a new vector.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromPolar returns the vector of the provided length and angle (in degrees) from OX.
func FromPolar(radius, angle float64) Vector {
	s, c := math.Sincos(Deg2rad(angle))
	return Vector{X: radius * c, Y: radius * s}
}

// Add returns v+u.
func (v Vector) Add(u Vector) Vector {
	return Vector(r2.Add(r2.Vec(v), r2.Vec(u)))
}

// Sub returns v-u.
func (v Vector) Sub(u Vector) Vector {
	return Vector(r2.Sub(r2.Vec(v), r2.Vec(u)))
}

// Scale returns k*v.
func (v Vector) Scale(k float64) Vector {
	return Vector(r2.Scale(k, r2.Vec(v)))
}

// Div returns v/k. Dividing by zero returns the zero vector.
func (v Vector) Div(k float64) Vector {
	if k == 0 {
		return Zero
	}
	return v.Scale(1 / k)
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return v.Scale(-1)
}

// Dot returns the inner product.
func (v Vector) Dot(u Vector) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(u))
}

// Length returns the Euclidean norm.
func (v Vector) Length() float64 {
	return r2.Norm(r2.Vec(v))
}

// Angle returns the angle from OX in radians, in (-π, π].
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleDeg returns the angle from OX in degrees.
func (v Vector) AngleDeg() float64 {
	return v.Angle() / deg2rad
}

// Normalize returns the unit vector colinear to v, or the zero vector if v has no length.
// NOTE: r2.Unit returns NaNs for the zero vector, hence the check.
func (v Vector) Normalize() Vector {
	if v.Length() == 0 {
		return Zero
	}
	return Vector(r2.Unit(r2.Vec(v)))
}

// Rotate returns v rotated by the angle the axis makes with OX.
func (v Vector) Rotate(axis Vector) Vector {
	return Vector(r2.Rotate(r2.Vec(v), axis.Angle(), r2.Vec{}))
}

// Equals returns whether both vectors are equal within the provided absolute tolerance.
func (v Vector) Equals(u Vector, tol float64) bool {
	return floatEqual(v.X, u.X, tol) && floatEqual(v.Y, u.Y, tol)
}

// IsFinite returns false if any component is NaN or infinite.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// String implements the Stringer interface.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// PolarString returns the vector as "(length ^ heading°)", the heading in [0, 360).
func (v Vector) PolarString() string {
	return fmt.Sprintf("(%g ^ %g)", v.Length(), Rad2deg(v.Angle()))
}
