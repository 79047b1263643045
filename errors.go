package orbitals

import (
	"errors"
	"fmt"
)

// Configuration and runtime errors.
var (
	// ErrInvalidTimeRange is returned for a time range with no iterations, a non-positive step
	// or an end time which is not after the begin time.
	ErrInvalidTimeRange = errors.New("orbitals: invalid time range")
	// ErrInvalidHistoryInterval is returned when the history interval is lower than one.
	ErrInvalidHistoryInterval = errors.New("orbitals: history interval must be at least 1")
	// ErrInvalidConstants is returned for a non-positive or non-finite gravitational constant.
	ErrInvalidConstants = errors.New("orbitals: invalid physics constants")
	// ErrNoBodies is returned when running a solver without any body.
	ErrNoBodies = errors.New("orbitals: no bodies to simulate")
	// ErrDuplicateBody is returned when adding the same body twice.
	ErrDuplicateBody = errors.New("orbitals: body already added")
	// ErrNonPositiveMass is returned when a body would end up with zero or negative mass.
	ErrNonPositiveMass = errors.New("orbitals: non-positive mass")
	// ErrAlreadyRun is returned when Run is called a second time on the same solver.
	ErrAlreadyRun = errors.New("orbitals: solver already ran")
)

// StepError wraps an error which aborted a run with where it happened.
type StepError struct {
	Iteration int
	Time      float64
	Body      string
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("iteration %d (t=%gs) body %s: %s", e.Iteration, e.Time, e.Body, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
