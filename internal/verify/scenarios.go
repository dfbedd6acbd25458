package verify

import (
	"math"

	"github.com/pengelbrecht/sum/internal/calculator"
)

// Scenario is a literal addition with a known answer.
type Scenario struct {
	Name string
	A, B calculator.Value
	Want calculator.Value
	// Approx compares with a tolerance instead of exact equality.
	Approx bool
}

// Scenarios returns the reference additions every build must satisfy.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "two positive integers", A: calculator.Int(2), B: calculator.Int(3), Want: calculator.Int(5)},
		{Name: "two negative integers", A: calculator.Int(-4), B: calculator.Int(-7), Want: calculator.Int(-11)},
		{Name: "mixed signs", A: calculator.Int(-3), B: calculator.Int(10), Want: calculator.Int(7)},
		{Name: "two floats", A: calculator.Float(1.5), B: calculator.Float(2.5), Want: calculator.Float(4.0), Approx: true},
		{Name: "integer and float", A: calculator.Int(2), B: calculator.Float(3.5), Want: calculator.Float(5.5), Approx: true},
	}
}

// DefaultSamples are the operands the property checks range over.
func DefaultSamples() []calculator.Value {
	return []calculator.Value{
		calculator.Int(0),
		calculator.Int(1),
		calculator.Int(-1),
		calculator.Int(2),
		calculator.Int(-7),
		calculator.Int(10),
		calculator.Int(1<<53 + 1),
		calculator.Int(math.MaxInt64),
		calculator.Int(math.MinInt64),
		calculator.Float(0),
		calculator.Float(0.1),
		calculator.Float(1.5),
		calculator.Float(-3.5),
		calculator.Float(1e300),
	}
}
