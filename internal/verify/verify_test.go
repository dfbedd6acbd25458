package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pengelbrecht/sum/internal/calculator"
)

func TestScenariosMatchReference(t *testing.T) {
	type literal struct {
		A, B, Want string
		Approx     bool
	}
	want := []literal{
		{"2", "3", "5", false},
		{"-4", "-7", "-11", false},
		{"-3", "10", "7", false},
		{"1.5", "2.5", "4.0", true},
		{"2", "3.5", "5.5", true},
	}

	var got []literal
	for _, sc := range Scenarios() {
		got = append(got, literal{sc.A.String(), sc.B.String(), sc.Want.String(), sc.Approx})
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scenarios mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAllPass(t *testing.T) {
	results, err := NewRunner().Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	type outcome struct {
		Name   string
		Kind   string
		Passed bool
	}
	want := []outcome{
		{"two positive integers", KindScenario, true},
		{"two negative integers", KindScenario, true},
		{"mixed signs", KindScenario, true},
		{"two floats", KindScenario, true},
		{"integer and float", KindScenario, true},
		{"commutativity", KindProperty, true},
		{"identity", KindProperty, true},
		{"integer exactness", KindProperty, true},
		{"type coercion", KindProperty, true},
	}

	var got []outcome
	for _, res := range results {
		got = append(got, outcome{res.Name, res.Kind, res.Passed})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}

	passed, failed := Summary(results)
	if passed != len(want) || failed != 0 {
		t.Errorf("Summary = %d passed, %d failed", passed, failed)
	}
}

func TestRunScenarioDetail(t *testing.T) {
	r := NewRunner()
	res := r.runScenario(Scenario{
		Name: "two floats",
		A:    calculator.Float(1.5),
		B:    calculator.Float(2.5),
		Want: calculator.Float(4),
	})
	if !res.Passed {
		t.Fatalf("expected pass, got %+v", res)
	}
	if res.Detail != "1.5 + 2.5 = 4.0" {
		t.Errorf("detail = %q", res.Detail)
	}
}

func TestRunScenarioFailures(t *testing.T) {
	r := NewRunner()
	cases := []struct {
		name string
		sc   Scenario
	}{
		{"wrong value", Scenario{A: calculator.Int(2), B: calculator.Int(2), Want: calculator.Int(5)}},
		{"wrong kind", Scenario{A: calculator.Int(2), B: calculator.Float(3), Want: calculator.Int(5)}},
		{"outside tolerance", Scenario{A: calculator.Float(0.1), B: calculator.Float(0.2), Want: calculator.Float(0.31), Approx: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := r.runScenario(tc.sc)
			if res.Passed {
				t.Fatalf("expected failure, got %+v", res)
			}
			if res.Detail == "" {
				t.Errorf("expected detail on failure")
			}
		})
	}
}

func TestWithToleranceLoosens(t *testing.T) {
	sc := Scenario{A: calculator.Float(0.1), B: calculator.Float(0.2), Want: calculator.Float(0.31), Approx: true}

	strict := NewRunner().runScenario(sc)
	loose := NewRunner(WithTolerance(calculator.Tolerance{Rel: 0.1})).runScenario(sc)
	if strict.Passed || !loose.Passed {
		t.Errorf("expected strict fail and loose pass, got strict=%v loose=%v", strict.Passed, loose.Passed)
	}
}

func TestPropertiesSkipOverflow(t *testing.T) {
	if msg := checkIntegerExact(calculator.Int(1<<62), calculator.Int(1<<62)); msg != "" {
		t.Errorf("expected overflowing pair to be skipped, got %q", msg)
	}
}

func TestIdentityHandlesNaN(t *testing.T) {
	samples := []calculator.Value{calculator.Float(0), mustParse(t, "nan")}
	results, err := NewRunner(WithSamples(samples)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, failed := Summary(results); failed != 0 {
		t.Errorf("expected all checks to pass with NaN samples, got %+v", results)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewRunner().Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func mustParse(t *testing.T, s string) calculator.Value {
	t.Helper()
	v, err := calculator.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}
