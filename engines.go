package orbitals

import (
	"fmt"
	"strings"
)

// Engine defines a rocket engine by its thrust and specific impulse.
type Engine struct {
	Name   string
	Thrust float64 // N
	Isp    float64 // s
}

/* Available engines (vacuum figures unless noted) */
var (
	// Merlin1D is the SpaceX first stage engine (sea level).
	Merlin1D = Engine{"Merlin 1D", 845e3, 282}
	// MerlinVacuum is the SpaceX second stage engine.
	MerlinVacuum = Engine{"Merlin Vacuum", 981e3, 348}
	// RS25 is the Space Shuttle main engine.
	RS25 = Engine{"RS-25", 2279e3, 452.3}
	// RL10 is the Centaur upper stage engine.
	RL10 = Engine{"RL10", 110.1e3, 465.5}
)

// NewEngine returns a generic engine.
func NewEngine(name string, thrust, isp float64) Engine {
	if !(thrust > 0) || !(isp > 0) {
		panic(fmt.Errorf("engine %s: thrust and isp must be positive, got %g N and %g s", name, thrust, isp))
	}
	return Engine{name, thrust, isp}
}

// MassFlow returns the fuel consumed per second (kg/s).
func (e Engine) MassFlow() float64 {
	return e.Thrust / (e.Isp * g0)
}

// Cluster returns an engine equivalent to n of these firing together.
func (e Engine) Cluster(n int) Engine {
	if n < 1 {
		panic("engine cluster must have at least one engine")
	}
	return Engine{fmt.Sprintf("%d x %s", n, e.Name), e.Thrust * float64(n), e.Isp}
}

// Burn returns a burn of this engine pointed angle degrees from OX over [start, end).
func (e Engine) Burn(angle, start, end float64) *Burn {
	return NewBurn(FromPolar(e.Thrust, angle), e.MassFlow()*(end-start), start, end)
}

// String implements the Stringer interface.
func (e Engine) String() string {
	return fmt.Sprintf("%s (%g kN, Isp %gs)", e.Name, e.Thrust/1e3, e.Isp)
}

// EngineFromString returns the catalogued engine from its name.
func EngineFromString(name string) (Engine, error) {
	switch strings.ToLower(strings.Replace(name, " ", "", -1)) {
	case "merlin1d", "merlin":
		return Merlin1D, nil
	case "merlinvacuum", "mvac":
		return MerlinVacuum, nil
	case "rs-25", "rs25", "ssme":
		return RS25, nil
	case "rl10":
		return RL10, nil
	default:
		return Engine{}, fmt.Errorf("undefined engine '%s'", name)
	}
}
