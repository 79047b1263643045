package orbitals

import (
	"fmt"
	"os"
	"time"

	"github.com/dgravesa/go-parallel/parallel"
	kitlog "github.com/go-kit/log"
	"github.com/soniakeys/meeus/v3/julian"
)

/* Handles the time stepping of all bodies. */

// Solver integrates a set of bodies over a time range.
type Solver struct {
	bodies  []*Body
	times   []float64
	conf    SolverConfig
	log     *Log
	logger  kitlog.Logger
	rows    []interaction // one per body, reused across steps
	ran     bool
	stepped int
}

// interaction is what the interaction pass found for one body.
type interaction struct {
	force    Vector
	collider *Body // nil unless a collision was detected
	offset   Vector
}

// NewSolver returns a new solver, or an error if the configuration is invalid.
func NewSolver(conf SolverConfig) (*Solver, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if conf.Epoch.Location() != time.UTC {
		conf.Epoch = conf.Epoch.UTC()
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return &Solver{conf: conf, log: NewLog(), logger: kitlog.With(klog, "subsys", "solver")}, nil
}

// SetLogger sets the logger used for run status reports.
func (s *Solver) SetLogger(logger kitlog.Logger) {
	s.logger = logger
}

// AddBody adds a body to the simulation. Bodies are processed in insertion order.
func (s *Solver) AddBody(b *Body) error {
	if b == nil {
		panic("cannot add a nil body")
	}
	for _, o := range s.bodies {
		if o == b {
			return fmt.Errorf("%w: %s", ErrDuplicateBody, b.Name)
		}
	}
	s.bodies = append(s.bodies, b)
	return nil
}

// Bodies returns the simulated bodies in insertion order.
func (s *Solver) Bodies() []*Body {
	return s.bodies
}

// Body returns the first body of the given name.
func (s *Solver) Body(name string) (*Body, bool) {
	for _, b := range s.bodies {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// Config returns the configuration.
func (s *Solver) Config() SolverConfig {
	return s.conf
}

// TimeRange returns the simulated range.
func (s *Solver) TimeRange() TimeRange {
	return s.conf.Range
}

// HistoryInterval returns the recording interval in iterations.
func (s *Solver) HistoryInterval() int {
	return s.conf.HistoryInterval
}

// Log returns the simulation log.
func (s *Solver) Log() *Log {
	return s.log
}

// Times returns the time axis of the recorded history (s).
func (s *Solver) Times() []float64 {
	return s.times
}

// Epochs returns the time axis of the recorded history as dates from the configured epoch.
func (s *Solver) Epochs() []time.Time {
	dts := make([]time.Time, len(s.times))
	for i, t := range s.times {
		dts[i] = s.conf.Epoch.Add(time.Duration((t - s.conf.Range.BeginTime()) * float64(time.Second)))
	}
	return dts
}

// JulianDates returns the time axis of the recorded history as Julian dates.
func (s *Solver) JulianDates() []float64 {
	dts := s.Epochs()
	jds := make([]float64, len(dts))
	for i, dt := range dts {
		jds[i] = julian.TimeToJD(dt)
	}
	return jds
}

// Iterations returns the number of steps done so far.
func (s *Solver) Iterations() int {
	return s.stepped
}

// Run performs all the iterations of the time range. Any error aborts the run.
func (s *Solver) Run() error {
	if s.ran {
		return ErrAlreadyRun
	}
	if len(s.bodies) == 0 {
		return ErrNoBodies
	}
	s.ran = true
	r := s.conf.Range
	s.logger.Log("level", "info", "status", "started", "bodies", len(s.bodies), "range", r, "history", s.conf.HistoryInterval, "workers", s.conf.Workers)
	start := time.Now()
	for i := s.stepped; i < r.Iterations(); i++ {
		if err := s.Step(); err != nil {
			s.logger.Log("level", "critical", "status", "aborted", "err", err)
			return err
		}
	}
	s.logger.Log("level", "notice", "status", "finished", "duration", time.Since(start), "records", len(s.times), "collisions", len(s.log.Filter(LevelError)))
	return nil
}

// Step performs the next iteration only.
func (s *Solver) Step() error {
	i := s.stepped
	if i >= s.conf.Range.Iterations() {
		return fmt.Errorf("%w: all %d iterations are done", ErrInvalidTimeRange, i)
	}
	ctx := &Context{
		T:              s.conf.Range.TimeAt(i),
		Dt:             s.conf.Range.TimeStep(),
		Iteration:      i,
		PutIntoHistory: i%s.conf.HistoryInterval == 0,
		Log:            s.log,
	}
	if err := s.beginStep(ctx); err != nil {
		return err
	}
	if err := s.runStep(ctx); err != nil {
		return err
	}
	if err := s.endStep(ctx); err != nil {
		return err
	}
	s.stepped++
	return nil
}

func (s *Solver) fail(ctx *Context, b *Body, err error) error {
	return &StepError{Iteration: ctx.Iteration, Time: ctx.T, Body: b.Name, Err: err}
}

func (s *Solver) beginStep(ctx *Context) error {
	for _, b := range s.bodies {
		if err := b.controller.BeginStep(ctx); err != nil {
			return s.fail(ctx, b, err)
		}
	}
	return nil
}

// runStep is the interaction pass: gravity and collisions between every ordered pair.
func (s *Solver) runStep(ctx *Context) error {
	if len(s.rows) != len(s.bodies) {
		s.rows = make([]interaction, len(s.bodies))
	}
	if s.conf.Workers > 1 {
		parallel.WithNumGoroutines(s.conf.Workers).For(len(s.bodies), func(i, _ int) {
			s.rows[i] = s.interact(i)
		})
	} else {
		for i := range s.bodies {
			s.rows[i] = s.interact(i)
		}
	}
	// Rows only read shared state, so they are merged here in body order.
	for i, a := range s.bodies {
		row := s.rows[i]
		if row.collider == nil {
			a.Force = a.Force.Add(row.force)
			continue
		}
		if err := s.collide(ctx, a, row.collider, row.offset); err != nil {
			return s.fail(ctx, a, err)
		}
	}
	return nil
}

// interact computes the gravity on the i-th body from all the others, stopping at the first collision.
func (s *Solver) interact(i int) (row interaction) {
	a := s.bodies[i]
	if !a.AffectedByForces() {
		return
	}
	for _, b := range s.bodies {
		if a == b {
			continue
		}
		r := b.Position.Sub(a.Position)
		d := r.Length()
		if a.Mass < b.Mass && d <= a.radius+b.radius {
			if b.anchor() == a {
				// b already rides on a: they move as one.
				continue
			}
			return interaction{collider: b, offset: r.Negate()}
		}
		if d > 0 {
			row.force = row.force.Add(r.Scale(s.conf.Constants.G * a.Mass * b.Mass / (d * d * d)))
		}
	}
	return
}

// collide sticks a to b and restarts the step of a with its new controller.
func (s *Solver) collide(ctx *Context, a, b *Body, offset Vector) error {
	NewCollidedController(b, offset).Attach(a)
	if err := a.controller.BeginStep(ctx); err != nil {
		return err
	}
	ctx.errorf("%s collided with %s at %g m/s", a.Name, b.Name, a.Velocity.Sub(b.Velocity).Length())
	s.logger.Log("level", "critical", "subsys", "astro", "collided", a.Name, "with", b.Name, "t", ctx.T)
	return nil
}

func (s *Solver) endStep(ctx *Context) error {
	for _, b := range s.bodies {
		if err := b.controller.EndStep(ctx, false); err != nil {
			return s.fail(ctx, b, err)
		}
	}
	if ctx.PutIntoHistory {
		for _, b := range s.bodies {
			b.record(ctx.T)
		}
		s.times = append(s.times, ctx.T)
	}
	return nil
}
