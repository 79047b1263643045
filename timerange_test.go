package orbitals

import (
	"errors"
	"testing"
)

func TestTimeRangeInverse(t *testing.T) {
	for _, duration := range []float64{1, 10, 3600, Minutes(1000), Days(3)} {
		for _, n := range []int{1, 3, 7, 100, 10000} {
			r := NewTimeRange(duration).WithIterations(n)
			if r.TimeStep() != duration/float64(n) {
				t.Fatalf("step of %g in %d = %g", duration, n, r.TimeStep())
			}
			back := NewTimeRange(duration).WithTimeStep(r.TimeStep())
			if back.Iterations() != n {
				t.Fatalf("%g / %g = %d iterations instead of %d", duration, r.TimeStep(), back.Iterations(), n)
			}
			if err := back.Validate(); err != nil {
				t.Fatalf("%s: %s", back, err)
			}
		}
	}
	r := NewTimeRange(6000).WithTimeStep(60)
	if r.Iterations() != 100 || r.TimeStep() != 60 {
		t.Fatalf("invalid range %s", r)
	}
}

func TestTimeRangeTimes(t *testing.T) {
	r := NewTimeRangeBetween(100, 200).WithIterations(4)
	if r.BeginTime() != 100 || r.EndTime() != 200 || r.Duration() != 100 {
		t.Fatalf("invalid bounds %s", r)
	}
	for i, exp := range []float64{100, 125, 150, 175} {
		if r.TimeAt(i) != exp {
			t.Fatalf("t(%d) = %g != %g", i, r.TimeAt(i), exp)
		}
	}
}

func TestTimeRangeValidate(t *testing.T) {
	for _, r := range []TimeRange{
		NewTimeRange(10).WithIterations(0),
		NewTimeRange(10).WithIterations(-4),
		NewTimeRange(10).WithTimeStep(0),
		NewTimeRange(10).WithTimeStep(-1),
		NewTimeRange(10).WithTimeStep(7), // not a multiple
		NewTimeRange(0).WithIterations(10),
		NewTimeRange(-5).WithIterations(10),
		NewTimeRangeBetween(20, 10).WithIterations(10),
	} {
		if err := r.Validate(); !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("%s: expected an invalid range error, got %v", r, err)
		}
	}
	if err := NewTimeRange(1).Validate(); err != nil {
		t.Fatalf("default range is invalid: %s", err)
	}
}
