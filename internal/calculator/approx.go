package calculator

import "math"

// Tolerance bounds the error allowed when comparing floats.
type Tolerance struct {
	Rel float64 `json:"rel"`
	Abs float64 `json:"abs"`
}

// DefaultTolerance is a relative error of one part in a million with a
// tiny absolute floor for results near zero.
var DefaultTolerance = Tolerance{Rel: 1e-6, Abs: 1e-12}

// ApproxEqual reports whether got is within tol of want.
// Infinities equal only themselves and NaN equals nothing.
func ApproxEqual(got, want float64, tol Tolerance) bool {
	if got == want {
		return true
	}
	if math.IsNaN(got) || math.IsNaN(want) || math.IsInf(got, 0) || math.IsInf(want, 0) {
		return false
	}
	return math.Abs(got-want) <= math.Max(tol.Rel*math.Abs(want), tol.Abs)
}

// Equal compares two integers exactly and anything else with ApproxEqual.
func Equal(a, b Value, tol Tolerance) bool {
	if a.IsInt() && b.IsInt() {
		return a.i == b.i
	}
	return ApproxEqual(a.Float64(), b.Float64(), tol)
}
