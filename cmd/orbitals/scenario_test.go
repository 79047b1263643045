package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kapitanov/orbitals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadFromString(t *testing.T, content string) (*orbitals.Solver, error) {
	t.Helper()
	v, err := readScenario(writeScenario(t, content))
	require.NoError(t, err)
	return loadScenario(v)
}

const header = `
[simulation]
duration = 100
iterations = 10
`

func TestLoadScenario(t *testing.T) {
	solver, err := loadFromString(t, header+`
[[bodies]]
object = "earth"
kind = "static"

[[bodies]]
name = "sat"
kind = "spacecraft"
mass = 1000
position = [0, 7e6]
orbit = "Earth"

  [[bodies.events]]
  type = "burn"
  thrust = 10
  angle = 90
  fuel = 5
  start = 0
  end = 50

  [[bodies.events]]
  type = "engine"
  engine = "rl10"
  count = 2
  angle = 0
  start = 50
  end = 51

  [[bodies.events]]
  type = "separation"
  label = "adapter"
  mass = 50
  start = 60
  end = 61
`)
	require.NoError(t, err)
	require.Len(t, solver.Bodies(), 2)
	assert.Equal(t, 10, solver.TimeRange().Iterations())
	assert.Equal(t, 10.0, solver.TimeRange().TimeStep())

	earth, ok := solver.Body("Earth")
	require.True(t, ok)
	assert.True(t, earth.IsStatic())
	assert.Equal(t, orbitals.Earth.Mass, earth.Mass)
	assert.Equal(t, orbitals.Earth.Radius, earth.Radius())

	sat, ok := solver.Body("sat")
	require.True(t, ok)
	assert.Equal(t, orbitals.Dynamic, sat.Controller().Kind())
	assert.InDelta(t, orbitals.Earth.CircularSpeed(7e6), sat.Velocity.Length(), 1e-6)
	assert.InDelta(t, 0, sat.Velocity.Dot(sat.Position), 1e-3)
	require.Len(t, sat.Events(), 3)

	burn, ok := sat.Events()[0].(*orbitals.Burn)
	require.True(t, ok)
	assert.True(t, burn.Thrust().Equals(orbitals.NewVector(0, 10), 1e-12))
	assert.Equal(t, 5.0, burn.Fuel())

	engine, ok := sat.Events()[1].(*orbitals.Burn)
	require.True(t, ok)
	assert.InDelta(t, 2*orbitals.RL10.Thrust, engine.Thrust().Length(), 1e-6)

	sep, ok := sat.Events()[2].(*orbitals.StageSeparation)
	require.True(t, ok)
	assert.Equal(t, "adapter", sep.Label())
	assert.Equal(t, 50.0, sep.Mass())
}

func TestLoadScenarioErrors(t *testing.T) {
	for name, bodies := range map[string]string{
		"no bodies":      "",
		"unknown object": "[[bodies]]\nobject = \"vesta\"",
		"no name":        "[[bodies]]\nmass = 1",
		"no mass":        "[[bodies]]\nname = \"a\"",
		"unknown kind":   "[[bodies]]\nname = \"a\"\nmass = 1\nkind = \"comet\"",
		"bad vector":     "[[bodies]]\nname = \"a\"\nmass = 1\nposition = [1, 2, 3]",
		"unknown center": "[[bodies]]\nname = \"a\"\nmass = 1\norbit = \"b\"",
		"duplicate":      "[[bodies]]\nname = \"a\"\nmass = 1\n[[bodies]]\nname = \"a\"\nmass = 2",
		"passive events": "[[bodies]]\nname = \"a\"\nmass = 1\n[[bodies.events]]\ntype = \"burn\"\nstart = 0\nend = 1",
		"unknown event":  "[[bodies]]\nname = \"a\"\nmass = 1\nkind = \"spacecraft\"\n[[bodies.events]]\ntype = \"warp\"\nstart = 0\nend = 1",
		"empty window":   "[[bodies]]\nname = \"a\"\nmass = 1\nkind = \"spacecraft\"\n[[bodies.events]]\ntype = \"burn\"\nstart = 1\nend = 1",
		"unknown engine": "[[bodies]]\nname = \"a\"\nmass = 1\nkind = \"spacecraft\"\n[[bodies.events]]\ntype = \"engine\"\nengine = \"raptor\"\nstart = 0\nend = 1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := loadFromString(t, header+bodies)
			assert.Error(t, err)
		})
	}

	_, err := loadFromString(t, "[[bodies]]\nname = \"a\"\nmass = 1")
	assert.ErrorIs(t, err, orbitals.ErrInvalidTimeRange)
	_, err = loadFromString(t, header)
	assert.ErrorIs(t, err, orbitals.ErrNoBodies)
}

func TestReadScenarioMissing(t *testing.T) {
	_, err := readScenario(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
