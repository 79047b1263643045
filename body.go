package orbitals

import (
	"fmt"
	"math"
)

// Body is a simulated point mass. All quantities are in SI units.
type Body struct {
	Name         string
	Mass         float64 // kg, decreases under burns and stage separations
	Position     Vector  // m
	Velocity     Vector  // m/s
	Force        Vector  // N, accumulated during a step
	Acceleration Vector  // m/s^2
	radius       float64 // m
	controller   Controller
	events       []ControlEvent
	posHist      *History
	velHist      *History
	forceHist    *History
	accHist      *History
}

// NewBody returns a new free falling body, i.e. with a gravity controller attached.
func NewBody(name string, mass, radius float64) *Body {
	if !(mass > 0) || math.IsInf(mass, 0) {
		panic(fmt.Errorf("body %s: mass must be positive and finite, got %g", name, mass))
	}
	if !(radius >= 0) || math.IsInf(radius, 0) {
		panic(fmt.Errorf("body %s: radius must be non-negative and finite, got %g", name, radius))
	}
	b := &Body{
		Name:      name,
		Mass:      mass,
		radius:    radius,
		posHist:   NewHistory(name, "Position"),
		velHist:   NewHistory(name, "V"),
		forceHist: NewHistory(name, "F"),
		accHist:   NewHistory(name, "a"),
	}
	NewGravityController().Attach(b)
	return b
}

// NewStaticBody returns a body whose position never changes.
func NewStaticBody(name string, mass, radius float64) *Body {
	b := NewBody(name, mass, radius)
	b.MakeStatic()
	return b
}

// NewSpacecraft returns a body which executes its control events, on top of gravity.
func NewSpacecraft(name string, mass, radius float64) *Body {
	b := NewBody(name, mass, radius)
	NewDynamicController().Attach(b)
	return b
}

// MakeStatic freezes this body in place.
func (b *Body) MakeStatic() {
	NewStaticController().Attach(b)
}

// Radius returns the radius of the body (m).
func (b *Body) Radius() float64 {
	return b.radius
}

// IsStatic returns whether the active controller keeps this body in place.
func (b *Body) IsStatic() bool {
	return b.controller.Kind() == Static
}

// anchor returns the body this one is ultimately stuck to, following the colliders of
// collided controllers, or the body itself.
func (b *Body) anchor() *Body {
	for {
		c, ok := b.controller.(*CollidedController)
		if !ok {
			return b
		}
		b = c.collider
	}
}

// Controller returns the active controller.
func (b *Body) Controller() Controller {
	return b.controller
}

// AffectedByForces returns whether the active controller integrates forces.
func (b *Body) AffectedByForces() bool {
	return b.controller.AffectedByForces()
}

// AddEvent appends a control event. Events are applied in the order they are added,
// and only when a dynamic controller is in the chain.
func (b *Body) AddEvent(e ControlEvent) {
	if e == nil {
		panic(fmt.Errorf("body %s: nil control event", b.Name))
	}
	b.events = append(b.events, e)
}

// Events returns the control events of this body.
func (b *Body) Events() []ControlEvent {
	return b.events
}

// PositionHistory returns the recorded positions.
func (b *Body) PositionHistory() *History {
	return b.posHist
}

// VelocityHistory returns the recorded velocities.
func (b *Body) VelocityHistory() *History {
	return b.velHist
}

// ForceHistory returns the recorded total forces.
func (b *Body) ForceHistory() *History {
	return b.forceHist
}

// AccelerationHistory returns the recorded accelerations.
func (b *Body) AccelerationHistory() *History {
	return b.accHist
}

// String implements the Stringer interface.
func (b *Body) String() string {
	return fmt.Sprintf("%s (m=%gkg, r=%gm, %s) R=%s V=%s", b.Name, b.Mass, b.radius, b.controller.Kind(), b.Position, b.Velocity)
}

func (b *Body) record(t float64) {
	b.posHist.Put(t, b.Position)
	b.velHist.Put(t, b.Velocity)
	b.forceHist.Put(t, b.Force)
	b.accHist.Put(t, b.Acceleration)
}
