package orbitals

// Helpers to convert human friendly quantities into the SI units used everywhere else.

// Grams returns the mass in kg.
func Grams(x float64) float64 { return x * 1e-3 }

// Tonnes returns the mass in kg.
func Tonnes(x float64) float64 { return x * 1e3 }

// Kilotonnes returns the mass in kg.
func Kilotonnes(x float64) float64 { return x * 1e6 }

// Kilonewtons returns the force in N.
func Kilonewtons(x float64) float64 { return x * 1e3 }

// Meganewtons returns the force in N.
func Meganewtons(x float64) float64 { return x * 1e6 }

// Kilometers returns the distance in m.
func Kilometers(x float64) float64 { return x * 1e3 }

// Minutes returns the duration in s.
func Minutes(x float64) float64 { return x * 60 }

// Hours returns the duration in s.
func Hours(x float64) float64 { return Minutes(x * 60) }

// Days returns the duration in s.
func Days(x float64) float64 { return Hours(x * 24) }
