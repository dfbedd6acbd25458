// Package calculator provides the sum operation over integer and
// floating-point values.
package calculator

// Number is the set of native numeric types Add accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns the sum of a and b.
func Add[T Number](a, b T) T {
	return a + b
}

// Sum returns the sum of a and b. Two integers add exactly; if either
// operand is a float, the integer side is converted and the result is a float.
func Sum(a, b Value) Value {
	if a.kind == KindInt && b.kind == KindInt {
		return Int(Add(a.i, b.i))
	}
	return Float(Add(a.Float64(), b.Float64()))
}
