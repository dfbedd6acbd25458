package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies how a Value is represented.
type Kind int

const (
	// KindInt is an exact 64-bit integer.
	KindInt Kind = iota
	// KindFloat is a float64 approximation.
	KindFloat
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidNumber is returned when an operand is not a number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrOutOfRange is returned when an operand does not fit int64 or float64.
	ErrOutOfRange = errors.New("number out of range")
)

// Value is an immutable number that is either an exact integer or a float.
// The zero Value is the integer 0.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a floating-point Value.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Kind reports the representation of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsInt reports whether v is an exact integer.
func (v Value) IsInt() bool {
	return v.kind == KindInt
}

// Int64 returns v as an int64, truncating floats toward zero.
func (v Value) Int64() int64 {
	if v.kind == KindInt {
		return v.i
	}
	return int64(v.f)
}

// Float64 returns v as a float64.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// String formats integers in base 10 and floats in their shortest form,
// always keeping a decimal point or exponent so 4.0 never prints as 4.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	s := strconv.FormatFloat(v.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// MarshalJSON encodes integers as JSON integers and floats as JSON numbers
// with a fractional part. NaN and infinities have no JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindFloat && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
		return nil, fmt.Errorf("unsupported float value %s", v)
	}
	return []byte(v.String()), nil
}

// Parse reads a numeric operand. Integer literals (decimal, or with a
// 0x/0o/0b prefix) yield an int Value; everything else ParseFloat accepts
// yields a float Value.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("parse %q: %w", s, ErrInvalidNumber)
	}

	i, err := strconv.ParseInt(s, intBase(s), 64)
	if err == nil {
		return Int(i), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return Value{}, fmt.Errorf("parse %q: %w", s, ErrOutOfRange)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("parse %q: %w", s, ErrOutOfRange)
		}
		return Value{}, fmt.Errorf("parse %q: %w", s, ErrInvalidNumber)
	}
	return Float(f), nil
}

// intBase returns 0 (prefix-detected) for 0x/0o/0b literals and 10 otherwise,
// so a leading zero is never read as octal.
func intBase(s string) int {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			return 0
		}
	}
	return 10
}
