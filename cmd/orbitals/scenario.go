package main

import (
	"fmt"
	"strings"

	"github.com/kapitanov/orbitals"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	kindBody       = "body"
	kindStatic     = "static"
	kindSpacecraft = "spacecraft"
)

// eventConf is a [[bodies.events]] entry.
type eventConf struct {
	Type   string  `mapstructure:"type"` // burn, engine or separation
	Thrust float64 `mapstructure:"thrust"`
	Angle  float64 `mapstructure:"angle"` // degrees from OX
	Fuel   float64 `mapstructure:"fuel"`
	Engine string  `mapstructure:"engine"`
	Count  int     `mapstructure:"count"`
	Label  string  `mapstructure:"label"`
	Mass   float64 `mapstructure:"mass"`
	Start  float64 `mapstructure:"start"`
	End    float64 `mapstructure:"end"`
}

func (e eventConf) event() (orbitals.ControlEvent, error) {
	if !(e.End > e.Start) {
		return nil, fmt.Errorf("%s event must end after it starts, got [%g, %g)", e.Type, e.Start, e.End)
	}
	switch strings.ToLower(e.Type) {
	case "burn":
		if e.Fuel < 0 {
			return nil, fmt.Errorf("burn fuel cannot be negative, got %g", e.Fuel)
		}
		return orbitals.NewBurn(orbitals.FromPolar(e.Thrust, e.Angle), e.Fuel, e.Start, e.End), nil
	case "engine":
		engine, err := orbitals.EngineFromString(e.Engine)
		if err != nil {
			return nil, err
		}
		if e.Count > 1 {
			engine = engine.Cluster(e.Count)
		}
		return engine.Burn(e.Angle, e.Start, e.End), nil
	case "separation":
		if e.Mass < 0 {
			return nil, fmt.Errorf("stage %s mass cannot be negative, got %g", e.Label, e.Mass)
		}
		return orbitals.NewStageSeparation(e.Label, e.Mass, e.Start, e.End), nil
	default:
		return nil, fmt.Errorf("unknown event type `%s`", e.Type)
	}
}

// bodyConf is a [[bodies]] entry.
type bodyConf struct {
	Name     string      `mapstructure:"name"`
	Object   string      `mapstructure:"object"` // celestial object providing mass and radius
	Kind     string      `mapstructure:"kind"`
	Mass     float64     `mapstructure:"mass"`
	Radius   float64     `mapstructure:"radius"`
	Position []float64   `mapstructure:"position"`
	Velocity []float64   `mapstructure:"velocity"`
	Orbit    string      `mapstructure:"orbit"` // name of a body to circle around, overrides the velocity
	Events   []eventConf `mapstructure:"events"`
}

func readVector(name, key string, v []float64) (orbitals.Vector, error) {
	switch len(v) {
	case 0:
		return orbitals.Zero, nil
	case 2:
		return orbitals.NewVector(v[0], v[1]), nil
	default:
		return orbitals.Zero, fmt.Errorf("body %s: %s must have two components, got %d", name, key, len(v))
	}
}

func (c bodyConf) body(previous []*orbitals.Body) (*orbitals.Body, error) {
	mass, radius := c.Mass, c.Radius
	if c.Object != "" {
		obj, err := orbitals.CelestialObjectFromString(c.Object)
		if err != nil {
			return nil, err
		}
		if mass == 0 {
			mass = obj.Mass
		}
		if radius == 0 {
			radius = obj.Radius
		}
		if c.Name == "" {
			c.Name = obj.Name
		}
	}
	if c.Name == "" {
		return nil, fmt.Errorf("body without name nor object")
	}
	if !(mass > 0) || radius < 0 {
		return nil, fmt.Errorf("body %s: invalid mass %g kg or radius %g m", c.Name, mass, radius)
	}

	var b *orbitals.Body
	switch strings.ToLower(c.Kind) {
	case "", kindBody:
		b = orbitals.NewBody(c.Name, mass, radius)
	case kindStatic:
		b = orbitals.NewStaticBody(c.Name, mass, radius)
	case kindSpacecraft:
		b = orbitals.NewSpacecraft(c.Name, mass, radius)
	default:
		return nil, fmt.Errorf("body %s: unknown kind `%s`", c.Name, c.Kind)
	}
	if len(c.Events) > 0 && b.Controller().Kind() != orbitals.Dynamic {
		return nil, fmt.Errorf("body %s: only spacecraft execute events", c.Name)
	}

	var err error
	if b.Position, err = readVector(c.Name, "position", c.Position); err != nil {
		return nil, err
	}
	if b.Velocity, err = readVector(c.Name, "velocity", c.Velocity); err != nil {
		return nil, err
	}
	if c.Orbit != "" {
		center := findBody(previous, c.Orbit)
		if center == nil {
			return nil, fmt.Errorf("body %s: cannot orbit `%s` which must be declared before", c.Name, c.Orbit)
		}
		// Circular orbit, counter clockwise.
		r := b.Position.Sub(center.Position)
		speed := orbitals.CelestialObject{Mass: center.Mass}.CircularSpeed(r.Length())
		b.Velocity = center.Velocity.Add(r.Normalize().Rotate(orbitals.UnitY).Scale(speed))
	}
	for i, ec := range c.Events {
		e, err := ec.event()
		if err != nil {
			return nil, fmt.Errorf("body %s: event #%d: %w", c.Name, i, err)
		}
		b.AddEvent(e)
	}
	return b, nil
}

func findBody(bodies []*orbitals.Body, name string) *orbitals.Body {
	for _, b := range bodies {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// readScenario reads the scenario file into a new viper instance.
func readScenario(path string) (*viper.Viper, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve scenario path '%s': %w", path, err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// loadScenario builds a solver with all the bodies of the scenario.
func loadScenario(v *viper.Viper) (*orbitals.Solver, error) {
	conf, err := orbitals.SolverConfigFromViper(v)
	if err != nil {
		return nil, err
	}
	solver, err := orbitals.NewSolver(conf)
	if err != nil {
		return nil, err
	}
	var bodies []bodyConf
	if err := v.UnmarshalKey("bodies", &bodies); err != nil {
		return nil, fmt.Errorf("bodies: %w", err)
	}
	if len(bodies) == 0 {
		return nil, orbitals.ErrNoBodies
	}
	for _, bc := range bodies {
		b, err := bc.body(solver.Bodies())
		if err != nil {
			return nil, err
		}
		if findBody(solver.Bodies(), b.Name) != nil {
			return nil, fmt.Errorf("%w: %s", orbitals.ErrDuplicateBody, b.Name)
		}
		if err := solver.AddBody(b); err != nil {
			return nil, err
		}
	}
	return solver, nil
}
