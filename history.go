package orbitals

import (
	"gonum.org/v1/gonum/floats"
)

// History is the append-only record of a vector quantity of a body over time.
// All slices have the same length.
type History struct {
	Owner     string    // Name of the owning body
	Quantity  string    // Name of the quantity, e.g. "Position"
	T         []float64 // Time (s)
	X         []float64
	Y         []float64
	Magnitude []float64
}

// NewHistory returns an empty history.
func NewHistory(owner, quantity string) *History {
	return &History{Owner: owner, Quantity: quantity}
}

// Put records the value v at time t.
func (h *History) Put(t float64, v Vector) {
	h.T = append(h.T, t)
	h.X = append(h.X, v.X)
	h.Y = append(h.Y, v.Y)
	h.Magnitude = append(h.Magnitude, v.Length())
}

// Len returns the number of samples.
func (h *History) Len() int {
	return len(h.T)
}

// At returns the i-th sample as a vector.
func (h *History) At(i int) Vector {
	return Vector{X: h.X[i], Y: h.Y[i]}
}

// Last returns the latest sample and false if nothing was recorded yet.
func (h *History) Last() (Vector, bool) {
	if len(h.T) == 0 {
		return Zero, false
	}
	return h.At(len(h.T) - 1), true
}

// MinMagnitude returns the smallest recorded magnitude, or zero if empty.
func (h *History) MinMagnitude() float64 {
	if len(h.Magnitude) == 0 {
		return 0
	}
	return floats.Min(h.Magnitude)
}

// MaxMagnitude returns the largest recorded magnitude, or zero if empty.
func (h *History) MaxMagnitude() float64 {
	if len(h.Magnitude) == 0 {
		return 0
	}
	return floats.Max(h.Magnitude)
}

// DistancesFrom returns the distance of each sample from the provided point.
func (h *History) DistancesFrom(p Vector) []float64 {
	d := make([]float64, len(h.T))
	for i := range h.T {
		d[i] = h.At(i).Sub(p).Length()
	}
	return d
}

// Subsample returns the indices of every step-th sample starting at from, as the
// trajectory animations and velocity quivers read them.
func (h *History) Subsample(from, step int) []int {
	if step < 1 {
		step = 1
	}
	if from < 0 {
		from = 0
	}
	var idx []int
	for i := from; i < len(h.T); i++ {
		if i%step == 0 {
			idx = append(idx, i)
		}
	}
	return idx
}
