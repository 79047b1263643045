package orbitals

import (
	"fmt"
	"math"
	"strings"
)

// CelestialObject defines a celestial object. Distances in meters, masses in kilograms.
type CelestialObject struct {
	Name   string
	Radius float64
	Mass   float64
	a      float64 // Semi-major axis around the parent
	parent string
}

// GM returns μ for the default gravitational constant.
func (c CelestialObject) GM() float64 {
	return DefaultG * c.Mass
}

// Parent returns the object this one orbits, and false for the Sun.
func (c CelestialObject) Parent() (CelestialObject, bool) {
	if c.parent == "" {
		return CelestialObject{}, false
	}
	p, err := CelestialObjectFromString(c.parent)
	return p, err == nil
}

// CircularSpeed returns the speed of a circular orbit at r meters from the center of this object.
func (c CelestialObject) CircularSpeed(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(c.GM() / r)
}

// Body returns a new free falling body of this object, at the origin.
func (c CelestialObject) Body() *Body {
	return NewBody(c.Name, c.Mass, c.Radius)
}

// StaticBody returns a new static body of this object, at the origin.
func (c CelestialObject) StaticBody() *Body {
	return NewStaticBody(c.Name, c.Mass, c.Radius)
}

// OrbitingBody returns a body of this object on a circular orbit around the provided central
// body, at its mean distance, on the +Y axis and moving towards +X.
func (c CelestialObject) OrbitingBody(center *Body) *Body {
	b := c.Body()
	centerObj := CelestialObject{Mass: center.Mass}
	b.Position = center.Position.Add(Vector{Y: c.a})
	b.Velocity = center.Velocity.Add(Vector{X: centerObj.CircularSpeed(c.a)})
	return b
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.Mass == b.Mass && c.a == b.a
}

// NewEarth returns a static Earth at the origin.
func NewEarth() *Body {
	return Earth.StaticBody()
}

// NewMoon returns the Moon on its orbit around the provided Earth body.
func NewMoon(earth *Body) *Body {
	b := Moon.Body()
	b.Position = earth.Position.Add(Vector{Y: 4.05696e8})
	b.Velocity = earth.Velocity.Add(Vector{X: 1.023e3})
	return b
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined celestial object '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 6.957e8, 1.98847e30, 0, ""}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6.0518e6, 4.8675e24, 1.08208601e11, "Sun"}

// Earth is home.
var Earth = CelestialObject{"Earth", 6.371e6, 5.97219e24, 1.49598023e11, "Sun"}

// Moon is where we went.
var Moon = CelestialObject{"Moon", 1.73814e6, 7.342e22, 3.844e8, "Earth"}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3.39619e6, 6.4171e23, 2.279392825616e11, "Sun"}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 7.1492e7, 1.8982e27, 7.78298361e11, "Sun"}
