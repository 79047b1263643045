package orbitals

import (
	"testing"

	kitlog "github.com/go-kit/log"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// newQuietSolver returns a solver which does not print its status.
func newQuietSolver(t *testing.T, conf SolverConfig) *Solver {
	s, err := NewSolver(conf)
	if err != nil {
		t.Fatalf("could not create solver: %s", err)
	}
	s.SetLogger(kitlog.NewNopLogger())
	return s
}

func testContext(t, dt float64) *Context {
	return &Context{T: t, Dt: dt, PutIntoHistory: true, Log: NewLog()}
}
