package orbitals

import (
	"fmt"
	"math"
)

// ControlEvent is a scripted effect on a spacecraft, active over [start, end).
type ControlEvent interface {
	// Window returns the time window of this event in seconds.
	Window() (start, end float64)
	// Active returns whether the event was active at the last applied step.
	Active() bool
	// Apply detects the window edges and applies the event if it is active at ctx.T.
	Apply(ctx *Context, b *Body) error
	String() string
}

// window tracks whether an event is active and detects the transitions.
type window struct {
	start, end float64
	active     bool
}

func newWindow(start, end float64) window {
	if math.IsNaN(start) || math.IsNaN(end) {
		panic("event window bounds cannot be NaN")
	}
	if end <= start {
		panic(fmt.Errorf("event window must end after it starts, got [%g, %g)", start, end))
	}
	return window{start: start, end: end}
}

// Window implements the ControlEvent interface.
func (w *window) Window() (start, end float64) {
	return w.start, w.end
}

// Active implements the ControlEvent interface.
func (w *window) Active() bool {
	return w.active
}

func (w *window) duration() float64 {
	return w.end - w.start
}

// edge updates the state at time t and returns the transitions which happened.
func (w *window) edge(t float64) (started, ended bool) {
	in := w.start <= t && t < w.end
	started = in && !w.active
	ended = !in && w.active
	w.active = in
	return
}

// Burn is an engine burn which adds a constant thrust and linearly consumes its fuel over its window.
type Burn struct {
	window
	thrust    Vector  // N
	fuel      float64 // kg
	remaining float64 // kg
}

// NewBurn returns a new burn of the given thrust vector (N), burning fuel (kg) over [start, end) (s).
func NewBurn(thrust Vector, fuel, start, end float64) *Burn {
	if !thrust.IsFinite() {
		panic("burn thrust must be finite")
	}
	if !(fuel >= 0) || math.IsInf(fuel, 0) {
		panic(fmt.Errorf("burn fuel mass must be non-negative and finite, got %g", fuel))
	}
	return &Burn{newWindow(start, end), thrust, fuel, fuel}
}

// Thrust returns the thrust vector.
func (e *Burn) Thrust() Vector {
	return e.thrust
}

// Fuel returns the total fuel mass of this burn.
func (e *Burn) Fuel() float64 {
	return e.fuel
}

// Remaining returns the fuel mass not burnt yet.
func (e *Burn) Remaining() float64 {
	return e.remaining
}

// String implements the ControlEvent interface.
func (e *Burn) String() string {
	return fmt.Sprintf("burn %s N, %g kg over [%g, %g)", e.thrust.PolarString(), e.fuel, e.start, e.end)
}

// Apply implements the ControlEvent interface.
func (e *Burn) Apply(ctx *Context, b *Body) error {
	started, ended := e.edge(ctx.T)
	if started {
		ctx.infof("%s: ignition, thrust %s N", b.Name, e.thrust.PolarString())
	}
	if ended {
		ctx.infof("%s: engine shutdown, %g kg of fuel left", b.Name, e.remaining)
	}
	if !e.active {
		return nil
	}
	burned := e.fuel * ctx.Dt / e.duration()
	if burned > e.remaining {
		burned = e.remaining
	}
	if b.Mass-burned <= 0 {
		return fmt.Errorf("%w: burning %g kg would leave %s with %g kg", ErrNonPositiveMass, burned, b.Name, b.Mass-burned)
	}
	b.Mass -= burned
	e.remaining -= burned
	b.Force = b.Force.Add(e.thrust)
	ctx.tracef("%s: burned %g kg, mass %g kg", b.Name, burned, b.Mass)
	return nil
}

// StageSeparation drops a fixed mass once, at the first step of its window.
type StageSeparation struct {
	window
	label     string
	mass      float64 // kg
	separated bool
}

// NewStageSeparation returns a new separation of the named stage of the given mass (kg).
func NewStageSeparation(label string, mass, start, end float64) *StageSeparation {
	if !(mass >= 0) || math.IsInf(mass, 0) {
		panic(fmt.Errorf("stage %s: mass must be non-negative and finite, got %g", label, mass))
	}
	return &StageSeparation{window: newWindow(start, end), label: label, mass: mass}
}

// Label returns the name of the dropped stage.
func (e *StageSeparation) Label() string {
	return e.label
}

// Mass returns the dropped mass.
func (e *StageSeparation) Mass() float64 {
	return e.mass
}

// Separated returns whether the stage was dropped.
func (e *StageSeparation) Separated() bool {
	return e.separated
}

// String implements the ControlEvent interface.
func (e *StageSeparation) String() string {
	return fmt.Sprintf("separation of %s (%g kg) over [%g, %g)", e.label, e.mass, e.start, e.end)
}

// Apply implements the ControlEvent interface.
func (e *StageSeparation) Apply(ctx *Context, b *Body) error {
	if _, ended := e.edge(ctx.T); ended {
		ctx.infof("%s: %s separation window closed", b.Name, e.label)
	}
	if !e.active || e.separated {
		return nil
	}
	if b.Mass-e.mass <= 0 {
		return fmt.Errorf("%w: dropping %s (%g kg) from %s (%g kg)", ErrNonPositiveMass, e.label, e.mass, b.Name, b.Mass)
	}
	b.Mass -= e.mass
	e.separated = true
	ctx.infof("%s: %s separated, mass %g kg", b.Name, e.label, b.Mass)
	return nil
}
