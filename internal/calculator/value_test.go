package calculator

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input    string
		expected Value
	}{
		{"2", Int(2)},
		{"-4", Int(-4)},
		{"+10", Int(10)},
		{" 7 ", Int(7)},
		{"010", Int(10)},
		{"0x1f", Int(31)},
		{"-0b101", Int(-5)},
		{"0o17", Int(15)},
		{"9223372036854775807", Int(math.MaxInt64)},
		{"1.5", Float(1.5)},
		{"-3.5", Float(-3.5)},
		{"4.0", Float(4)},
		{"1e3", Float(1000)},
		{".5", Float(0.5)},
		{"inf", Float(math.Inf(1))},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("Parse(%q) = %s (%s), want %s (%s)", tc.input, got, got.Kind(), tc.expected, tc.expected.Kind())
			}
		})
	}
}

func TestParseNaN(t *testing.T) {
	got, err := Parse("NaN")
	if err != nil {
		t.Fatalf("Parse(NaN): %v", err)
	}
	if got.IsInt() || !math.IsNaN(got.Float64()) {
		t.Errorf("expected float NaN, got %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"", ErrInvalidNumber},
		{"   ", ErrInvalidNumber},
		{"abc", ErrInvalidNumber},
		{"1.2.3", ErrInvalidNumber},
		{"0x", ErrInvalidNumber},
		{"1_000", ErrInvalidNumber},
		{"9223372036854775808", ErrOutOfRange},
		{"-9223372036854775809", ErrOutOfRange},
		{"1e400", ErrOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Parse(tc.input)
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tc.input, err, tc.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		value    Value
		expected string
	}{
		{Int(5), "5"},
		{Int(-11), "-11"},
		{Float(4), "4.0"},
		{Float(5.5), "5.5"},
		{Float(-0.25), "-0.25"},
		{Float(1e21), "1e+21"},
		{Float(math.Inf(-1)), "-Inf"},
		{Float(math.NaN()), "NaN"},
	}

	for _, tc := range cases {
		if got := tc.value.String(); got != tc.expected {
			t.Errorf("String() = %q, want %q", got, tc.expected)
		}
	}
}

func TestValueZeroIsInteger(t *testing.T) {
	var v Value
	if !v.IsInt() || v.Int64() != 0 {
		t.Errorf("expected zero Value to be int 0, got %s (%s)", v, v.Kind())
	}
}

func TestValueMarshalJSON(t *testing.T) {
	payload := map[string]Value{"sum": Int(7), "approx": Float(4)}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"approx":4.0,"sum":7}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}

	if _, err := json.Marshal(Float(math.Inf(1))); err == nil {
		t.Errorf("expected error marshaling +Inf")
	}
}
