package orbitals

import (
	"fmt"
	"math"
)

// TimeRange defines the simulated time span and how it is divided into steps.
// The step is always (end-begin)/iterations.
type TimeRange struct {
	begin, end float64 // s
	step       float64 // s
	iterations int
}

// NewTimeRange returns a range from zero to duration seconds, in a single iteration.
func NewTimeRange(duration float64) TimeRange {
	return NewTimeRangeBetween(0, duration)
}

// NewTimeRangeBetween returns a range from begin to end seconds, in a single iteration.
func NewTimeRangeBetween(begin, end float64) TimeRange {
	return TimeRange{begin: begin, end: end, step: end - begin, iterations: 1}
}

// WithIterations sets the number of iterations and derives the step from it.
func (r TimeRange) WithIterations(iterations int) TimeRange {
	r.iterations = iterations
	if iterations > 0 {
		r.step = r.Duration() / float64(iterations)
	} else {
		r.step = 0
	}
	return r
}

// WithTimeStep sets the step and derives the number of iterations from it.
func (r TimeRange) WithTimeStep(step float64) TimeRange {
	r.step = step
	if step > 0 && isFinite(step) {
		r.iterations = int(math.Round(r.Duration() / step))
	} else {
		r.iterations = 0
	}
	return r
}

// BeginTime returns the start of the range (s).
func (r TimeRange) BeginTime() float64 {
	return r.begin
}

// EndTime returns the end of the range (s).
func (r TimeRange) EndTime() float64 {
	return r.end
}

// Duration returns end-begin (s).
func (r TimeRange) Duration() float64 {
	return r.end - r.begin
}

// TimeStep returns the step (s).
func (r TimeRange) TimeStep() float64 {
	return r.step
}

// Iterations returns the number of steps.
func (r TimeRange) Iterations() int {
	return r.iterations
}

// TimeAt returns the time at the start of iteration i.
func (r TimeRange) TimeAt(i int) float64 {
	return r.begin + float64(i)*r.step
}

// Validate returns an error wrapping ErrInvalidTimeRange if this range cannot be simulated.
func (r TimeRange) Validate() error {
	switch {
	case !isFinite(r.begin) || !isFinite(r.end):
		return fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidTimeRange, r.begin, r.end)
	case r.end <= r.begin:
		return fmt.Errorf("%w: end %gs is not after begin %gs", ErrInvalidTimeRange, r.end, r.begin)
	case r.iterations < 1:
		return fmt.Errorf("%w: %d iterations", ErrInvalidTimeRange, r.iterations)
	case !(r.step > 0) || !isFinite(r.step):
		return fmt.Errorf("%w: step of %gs", ErrInvalidTimeRange, r.step)
	case !floatEqual(float64(r.iterations)*r.step, r.Duration(), 1e-9*r.Duration()):
		return fmt.Errorf("%w: duration %gs is not a multiple of the %gs step", ErrInvalidTimeRange, r.Duration(), r.step)
	}
	return nil
}

// String implements the Stringer interface.
func (r TimeRange) String() string {
	return fmt.Sprintf("[%gs, %gs] in %d steps of %gs", r.begin, r.end, r.iterations, r.step)
}
