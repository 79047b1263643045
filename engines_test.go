package orbitals

import (
	"testing"
)

func TestEngineMassFlow(t *testing.T) {
	if mf := Merlin1D.MassFlow(); !floatEqual(mf, 305.55, 1e-2) {
		t.Fatalf("Merlin 1D mass flow %f kg/s", mf)
	}
	nine := Merlin1D.Cluster(9)
	if nine.Thrust != 9*Merlin1D.Thrust || nine.Isp != Merlin1D.Isp || !floatEqual(nine.MassFlow(), 9*Merlin1D.MassFlow(), 1e-9) {
		t.Fatalf("invalid cluster %s", nine)
	}
	burn := MerlinVacuum.Burn(90, 100, 110)
	if !burn.Thrust().Equals(NewVector(0, MerlinVacuum.Thrust), 1e-6) {
		t.Fatalf("burn thrust %s", burn.Thrust())
	}
	if !floatEqual(burn.Fuel(), 10*MerlinVacuum.MassFlow(), 1e-9) {
		t.Fatalf("burn fuel %f kg", burn.Fuel())
	}
	if start, end := burn.Window(); start != 100 || end != 110 {
		t.Fatalf("burn window [%g, %g)", start, end)
	}
}

func TestEngineFromString(t *testing.T) {
	for name, exp := range map[string]Engine{"Merlin 1D": Merlin1D, "MVAC": MerlinVacuum, "ssme": RS25, "RL10": RL10} {
		got, err := EngineFromString(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != exp {
			t.Fatalf("got %s for %s", got, name)
		}
	}
	if _, err := EngineFromString("Raptor"); err == nil {
		t.Fatal("Raptor is not catalogued")
	}
}

func TestEnginePanics(t *testing.T) {
	assertPanic(t, func() {
		NewEngine("broken", 0, 300)
	})
	assertPanic(t, func() {
		NewEngine("broken", 1e3, -1)
	})
	assertPanic(t, func() {
		RL10.Cluster(0)
	})
}
