package orbitals

import (
	"testing"
)

func TestCelestialObjectFromString(t *testing.T) {
	for _, object := range []CelestialObject{Sun, Venus, Earth, Moon, Mars, Jupiter} {
		got, err := CelestialObjectFromString(object.Name)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equals(object) {
			t.Fatalf("got %s for %s", got, object)
		}
	}
	if got, _ := CelestialObjectFromString("EARTH"); !got.Equals(Earth) {
		t.Fatal("name lookup is case sensitive")
	}
	if _, err := CelestialObjectFromString("Vesta"); err == nil {
		t.Fatal("Vesta is not defined")
	}
}

func TestCelestialObjectParent(t *testing.T) {
	if p, ok := Moon.Parent(); !ok || !p.Equals(Earth) {
		t.Fatal("the Moon does not orbit the Earth")
	}
	if p, ok := Mars.Parent(); !ok || !p.Equals(Sun) {
		t.Fatal("Mars does not orbit the Sun")
	}
	if _, ok := Sun.Parent(); ok {
		t.Fatal("the Sun has a parent")
	}
}

func TestCircularSpeed(t *testing.T) {
	if v := Earth.CircularSpeed(6.671e6); !floatEqual(v, 7729.6, 1) {
		t.Fatalf("LEO circular speed %f m/s", v)
	}
	if v := Earth.CircularSpeed(0); v != 0 {
		t.Fatalf("circular speed at the center %f m/s", v)
	}
	moon := Moon.OrbitingBody(NewBody("center", Earth.Mass, 0))
	if !floatEqual(moon.Position.Length(), 3.844e8, 1e-6) || !floatEqual(moon.Velocity.X, 1018.3, 1) {
		t.Fatalf("invalid orbiting body: %s", moon)
	}
}

func TestEarthMoon(t *testing.T) {
	earth := NewEarth()
	if !earth.IsStatic() || earth.Mass != Earth.Mass || earth.Radius() != Earth.Radius || earth.Name != "Earth" {
		t.Fatalf("invalid Earth: %s", earth)
	}
	moon := NewMoon(earth)
	if moon.Position != NewVector(0, 4.05696e8) || moon.Velocity != NewVector(1.023e3, 0) {
		t.Fatalf("invalid Moon: %s", moon)
	}
	if moon.Mass != Moon.Mass || moon.Controller().Kind() != Gravity {
		t.Fatalf("invalid Moon: %s", moon)
	}
}
