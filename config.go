package orbitals

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

const (
	// DefaultG is the gravitational constant in m^3 kg^-1 s^-2.
	DefaultG = 6.67384e-11
)

// PhysicsConstants are the constants used by the solver.
type PhysicsConstants struct {
	G float64
}

// DefaultConstants returns the constants of this universe.
func DefaultConstants() PhysicsConstants {
	return PhysicsConstants{G: DefaultG}
}

// Validate returns an error wrapping ErrInvalidConstants if G cannot be used.
func (c PhysicsConstants) Validate() error {
	if !(c.G > 0) || math.IsInf(c.G, 0) {
		return fmt.Errorf("%w: G=%g", ErrInvalidConstants, c.G)
	}
	return nil
}

// SolverConfig is the configuration of a solver.
type SolverConfig struct {
	Range           TimeRange
	HistoryInterval int // Record every HistoryInterval-th iteration
	Constants       PhysicsConstants
	Workers         int       // Goroutines for the interaction pass, sequential if lower than 2
	Epoch           time.Time // Calendar date of the range begin time, optional
}

// NewSolverConfig returns the default configuration for the provided range.
func NewSolverConfig(r TimeRange) SolverConfig {
	return SolverConfig{Range: r, HistoryInterval: 1, Constants: DefaultConstants(), Workers: 1}
}

// Validate returns the first configuration error, if any.
func (c SolverConfig) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return err
	}
	if c.HistoryInterval < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHistoryInterval, c.HistoryInterval)
	}
	return c.Constants.Validate()
}

// SolverConfigFromViper reads the `simulation` section of the provided configuration.
// Durations are either numbers of seconds or Go duration strings (e.g. "1000m").
// The epoch is either a Julian date or a date.
func SolverConfigFromViper(v *viper.Viper) (SolverConfig, error) {
	v.SetDefault("simulation.begin", 0)
	v.SetDefault("simulation.history", 1)
	v.SetDefault("simulation.G", DefaultG)
	v.SetDefault("simulation.workers", 1)

	if !v.IsSet("simulation.duration") {
		return SolverConfig{}, fmt.Errorf("%w: simulation.duration is missing", ErrInvalidTimeRange)
	}
	begin := ReadSeconds(v, "simulation.begin")
	r := NewTimeRangeBetween(begin, begin+ReadSeconds(v, "simulation.duration"))
	switch {
	case v.IsSet("simulation.iterations"):
		r = r.WithIterations(v.GetInt("simulation.iterations"))
	case v.IsSet("simulation.step"):
		r = r.WithTimeStep(ReadSeconds(v, "simulation.step"))
	default:
		return SolverConfig{}, fmt.Errorf("%w: either simulation.iterations or simulation.step is required", ErrInvalidTimeRange)
	}

	conf := NewSolverConfig(r)
	conf.HistoryInterval = v.GetInt("simulation.history")
	conf.Constants.G = v.GetFloat64("simulation.G")
	conf.Workers = v.GetInt("simulation.workers")
	if v.IsSet("simulation.epoch") {
		epoch, err := ReadEpoch(v, "simulation.epoch")
		if err != nil {
			return SolverConfig{}, err
		}
		conf.Epoch = epoch
	}
	return conf, conf.Validate()
}

// ReadSeconds reads a number of seconds or a duration string.
func ReadSeconds(v *viper.Viper, key string) float64 {
	if _, isStr := v.Get(key).(string); isStr {
		return v.GetDuration(key).Seconds()
	}
	return v.GetFloat64(key)
}

// ReadEpoch reads a Julian date or a date.
func ReadEpoch(v *viper.Viper, key string) (time.Time, error) {
	switch val := v.Get(key).(type) {
	case string:
		dt, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return time.Time{}, fmt.Errorf("%s: %w", key, err)
		}
		return dt.UTC(), nil
	case time.Time:
		return val.UTC(), nil
	default:
		jde := v.GetFloat64(key)
		if jde == 0 {
			return time.Time{}, fmt.Errorf("%s: not a Julian date nor a date: %v", key, val)
		}
		return julian.JDToTime(jde), nil
	}
}
