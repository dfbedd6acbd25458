// Package verify checks the sum operation against its reference scenarios
// and algebraic properties. The same checks back the test suite and the
// `sum check` command.
package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"

	"github.com/pengelbrecht/sum/internal/calculator"
)

// Result kinds.
const (
	KindScenario = "scenario"
	KindProperty = "property"
)

// ErrChecksFailed is returned by callers when at least one check failed.
var ErrChecksFailed = errors.New("checks failed")

// Result is the outcome of a single check.
type Result struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Runner executes scenario and property checks.
type Runner struct {
	tol     calculator.Tolerance
	logger  *slog.Logger
	samples []calculator.Value
}

// Option configures a Runner.
type Option func(*Runner)

// WithTolerance sets the tolerance for approximate scenarios.
func WithTolerance(tol calculator.Tolerance) Option {
	return func(r *Runner) {
		r.tol = tol
	}
}

// WithLogger sets the logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithSamples replaces the operands used by property checks.
func WithSamples(samples []calculator.Value) Option {
	return func(r *Runner) {
		r.samples = samples
	}
}

// NewRunner creates a runner with default tolerance and samples.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		tol:     calculator.DefaultTolerance,
		logger:  slog.Default(),
		samples: DefaultSamples(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type property struct {
	name  string
	check func(a, b calculator.Value) string
}

// Run executes all scenarios, then all properties. It stops early when ctx
// is cancelled and returns the results gathered so far with ctx.Err().
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var results []Result

	for _, sc := range Scenarios() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.runScenario(sc)
		r.logger.Debug("check", "kind", res.Kind, "name", res.Name, "passed", res.Passed)
		results = append(results, res)
	}

	for _, p := range r.properties() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.runProperty(p)
		r.logger.Debug("check", "kind", res.Kind, "name", res.Name, "passed", res.Passed)
		results = append(results, res)
	}

	return results, nil
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	for _, res := range results {
		if res.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

func (r *Runner) runScenario(sc Scenario) Result {
	res := Result{Name: sc.Name, Kind: KindScenario}
	got := calculator.Sum(sc.A, sc.B)

	switch {
	case got.Kind() != sc.Want.Kind():
		res.Detail = fmt.Sprintf("%s + %s = %s (%s), want %s", sc.A, sc.B, got, got.Kind(), sc.Want.Kind())
	case sc.Approx && !calculator.Equal(got, sc.Want, r.tol):
		res.Detail = fmt.Sprintf("%s + %s = %s, want ≈ %s", sc.A, sc.B, got, sc.Want)
	case !sc.Approx && !identical(got, sc.Want):
		res.Detail = fmt.Sprintf("%s + %s = %s, want %s", sc.A, sc.B, got, sc.Want)
	default:
		res.Passed = true
		res.Detail = fmt.Sprintf("%s + %s = %s", sc.A, sc.B, got)
	}
	return res
}

func (r *Runner) runProperty(p property) Result {
	res := Result{Name: p.name, Kind: KindProperty, Passed: true}
	for _, a := range r.samples {
		for _, b := range r.samples {
			if msg := p.check(a, b); msg != "" {
				res.Passed = false
				res.Detail = msg
				return res
			}
		}
	}
	res.Detail = fmt.Sprintf("%d operand pairs", len(r.samples)*len(r.samples))
	return res
}

func (r *Runner) properties() []property {
	return []property{
		{name: "commutativity", check: checkCommutative},
		{name: "identity", check: checkIdentity},
		{name: "integer exactness", check: checkIntegerExact},
		{name: "type coercion", check: checkCoercion},
	}
}

func checkCommutative(a, b calculator.Value) string {
	ab, ba := calculator.Sum(a, b), calculator.Sum(b, a)
	if !identical(ab, ba) {
		return fmt.Sprintf("%s + %s = %s but %s + %s = %s", a, b, ab, b, a, ba)
	}
	return ""
}

func checkIdentity(a, _ calculator.Value) string {
	zero := calculator.Int(0)
	if !a.IsInt() {
		zero = calculator.Float(0)
	}
	if got := calculator.Sum(a, zero); !identical(got, a) {
		return fmt.Sprintf("%s + 0 = %s", a, got)
	}
	return ""
}

// checkIntegerExact compares int sums against arbitrary precision. Pairs
// whose true sum leaves the int64 range wrap by design and are skipped.
func checkIntegerExact(a, b calculator.Value) string {
	if !a.IsInt() || !b.IsInt() {
		return ""
	}
	want := new(big.Int).Add(big.NewInt(a.Int64()), big.NewInt(b.Int64()))
	if !want.IsInt64() {
		return ""
	}
	if got := calculator.Sum(a, b); got.Int64() != want.Int64() {
		return fmt.Sprintf("%s + %s = %s, want %s", a, b, got, want)
	}
	return ""
}

func checkCoercion(a, b calculator.Value) string {
	got := calculator.Sum(a, b)
	if wantInt := a.IsInt() && b.IsInt(); got.IsInt() != wantInt {
		return fmt.Sprintf("%s (%s) + %s (%s) produced %s", a, a.Kind(), b, b.Kind(), got.Kind())
	}
	return ""
}

// identical is exact equality that treats NaN as equal to itself.
func identical(a, b calculator.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if a.IsInt() {
		return a.Int64() == b.Int64()
	}
	x, y := a.Float64(), b.Float64()
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}
